package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/metadata"
)

func TestCompile_Elements(t *testing.T) {
	p, err := Compile("%Y/%m/%f_%n2.%e", 1)
	require.NoError(t, err)

	kinds := make([]Kind, 0, len(p.Elements()))
	for _, e := range p.Elements() {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []Kind{
		KindDate, KindLiteral, KindDate, KindLiteral, KindFileStem,
		KindLiteral, KindSequence, KindLiteral, KindFileExtension,
	}, kinds)
	assert.Equal(t, 'Y', p.Elements()[0].Field)
	assert.Equal(t, "/", p.Elements()[1].Text, "pattern literals keep separators")
	assert.Equal(t, 2, p.Elements()[6].Width)
	assert.Equal(t, "%Y/%m/%f_%n2.%e", p.Source())
	assert.True(t, p.HasSequence())
}

func TestCompile_AllTokens(t *testing.T) {
	for _, tok := range []string{"f", "e", "#", "a", "A", "b", "B", "m", "Y", "y", "d",
		"C", "M", "N", "r", "I", "F", "L", "l", "E", "s", "n", "n0", "n9", "%", "T[Exif.Image.Make]"} {
		t.Run(tok, func(t *testing.T) {
			_, err := Compile("x%"+tok, 1)
			assert.NoError(t, err)
		})
	}
}

func TestCompile_Tag(t *testing.T) {
	p, err := Compile("%T[Iptc.Application2.City]", 1)
	require.NoError(t, err)
	require.Len(t, p.Elements(), 1)

	e := p.Elements()[0]
	assert.Equal(t, KindTag, e.Kind)
	assert.Equal(t, "Iptc.Application2.City", e.Key)
	assert.Equal(t, metadata.NamespaceIptc, e.Namespace)
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
		offset  int
	}{
		{"empty", "", domain.ErrEmptyPattern, 0},
		{"absolute leading literal", "/etc/%f", domain.ErrAbsolutePattern, 0},
		{"unterminated tag", "%T[bad", domain.ErrUnclosedTag, 2},
		{"tag without bracket", "%Tbad", domain.ErrUnclosedTag, 2},
		{"tag at end", "abc%T", domain.ErrUnclosedTag, 5},
		{"trailing percent", "abc%", domain.ErrUnknownToken, 3},
		{"unknown token", "a%q", domain.ErrUnknownToken, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.pattern, 1)

			require.Error(t, err)
			assert.Nil(t, p, "no partial pattern is returned")
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrInvalidPattern)

			var se *SyntaxError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.offset, se.Offset)
			assert.Contains(t, err.Error(), domain.ErrMsgInvalidPattern)
		})
	}
}

func TestCompile_RelativeLeadingLiteralIsAccepted(t *testing.T) {
	_, err := Compile("out/%f", 1)
	assert.NoError(t, err)

	_, err = Compile("%f/etc", 1)
	assert.NoError(t, err, "only a leading literal is checked")
}

func TestCompile_WindowsRules(t *testing.T) {
	_, err := compile(`a<b%f`, 1, true)
	assert.ErrorIs(t, err, domain.ErrInvalidPattern)

	_, err = compile(`a<b%f`, 1, false)
	assert.NoError(t, err)

	_, err = compile(`\share\%f`, 1, true)
	assert.ErrorIs(t, err, domain.ErrAbsolutePattern)
}
