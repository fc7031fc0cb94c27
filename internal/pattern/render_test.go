package pattern

import (
	"path/filepath"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/metadata"
)

func sampleMetadata() *metadata.Static {
	return &metadata.Static{
		Path:     "/photos/2024/IMG_001.CR2",
		Exif:     true,
		Time:     time.Date(2024, time.March, 9, 14, 5, 0, 0, time.UTC),
		CamMake:  "Canon",
		CamModel: "EOS R5",
		LensName: "RF24-70mm F2.8 L IS USM",
		Stars:    3,
		ISOSpeed: 200,
		Aperture: 2.8,
		Focal:    35.4,
		Comp:     -1.0 / 3,
		Shutter:  1.0 / 250,
		Tags:     map[string]string{"Iptc.Application2.City": "Oslo", "Foo.Bar": "ignored"},
	}
}

func mustCompile(t *testing.T, s string, start int) *Pattern {
	t.Helper()
	p, err := Compile(s, start)
	require.NoError(t, err)
	return p
}

func TestRender_SequencePadding(t *testing.T) {
	p := mustCompile(t, "%f_%n2.%e", 5)
	md := sampleMetadata()

	assert.Equal(t, "IMG_001_05.CR2", p.Render(md, RenderParams{}))
	assert.Equal(t, "IMG_001_06.CR2", p.Render(md, RenderParams{}))
	assert.Equal(t, 7, p.Counter().Value())
}

func TestRender_SequenceAdvancesOncePerItem(t *testing.T) {
	p := mustCompile(t, "%n-%n3", 7)
	md := sampleMetadata()

	assert.Equal(t, "7-007", p.Render(md, RenderParams{}))
	assert.Equal(t, "8-008", p.Render(md, RenderParams{}))

	p.Reset(1)
	assert.Equal(t, "1-001", p.Render(md, RenderParams{}))
}

func TestRender_Deterministic(t *testing.T) {
	p := mustCompile(t, "%Y%m%d_%C_%f.%e", 1)
	md := sampleMetadata()

	first := p.Render(md, RenderParams{})
	assert.Equal(t, first, p.Render(md, RenderParams{}))
	assert.Equal(t, 1, p.Counter().Value(), "no sequence, no advance")
}

func TestRender_Fields(t *testing.T) {
	md := sampleMetadata()
	tests := []struct {
		pattern string
		want    string
	}{
		{"%a %A %b %B %m %Y %y %d", "Sat Saturday Mar March 03 2024 24 09"},
		{"%f", "IMG_001"},
		{"%e", "CR2"},
		{"%#", "001"},
		{"%C", "Canon EOS R5"},
		{"%M-%N", "Canon-EOS R5"},
		{"%r", "3"},
		{"%I", "200"},
		{"%l", "35"},
		{"%E", "-0.33"},
		{"%s", "1∕250"},
		{"%L", "RF24-70mm F2.8 L IS USM"},
		{"100%%", "100%"},
		{"%T[Iptc.Application2.City]", "Oslo"},
		{"x%T[Exif.Photo.ISOSpeedRatings]", "x"},
		{"x%T[Foo.Bar]", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			p := mustCompile(t, tt.pattern, 1)
			assert.Equal(t, tt.want, p.Fragment(md))
		})
	}
}

func TestRender_TrailingNumberWithoutDigits(t *testing.T) {
	md := &metadata.Static{Path: "/a/holiday.jpg"}
	p := mustCompile(t, "x%#", 1)
	assert.Equal(t, "x", p.Fragment(md))
}

func TestRender_FieldValuesNeverCarrySeparators(t *testing.T) {
	md := &metadata.Static{Path: "/a/b.jpg", CamMake: "AC/DC", CamModel: "x"}
	p := mustCompile(t, "%Y/%M", 1)

	out := p.Fragment(md)
	assert.Equal(t, "0001/AC∕DC", out)
}

func TestRender_Normalisation(t *testing.T) {
	md := sampleMetadata()

	t.Run("whitespace replaced by default", func(t *testing.T) {
		p := mustCompile(t, "%C %f.%e", 1)
		assert.Equal(t, "Canon_EOS_R5_IMG_001.CR2", p.Render(md, RenderParams{}))
	})

	t.Run("whitespace kept when allowed", func(t *testing.T) {
		p := mustCompile(t, "%C %f.%e", 1)
		assert.Equal(t, "Canon EOS R5 IMG_001.CR2", p.Render(md, RenderParams{AllowWhitespace: true}))
	})

	t.Run("name and extension folded independently", func(t *testing.T) {
		p := mustCompile(t, "%f-x.%e", 1)
		got := p.Render(md, RenderParams{NameCase: CaseLower, ExtCase: CaseUpper})
		assert.Equal(t, "img_001-x.CR2", got)

		got = p.Render(md, RenderParams{NameCase: CaseUpper, ExtCase: CaseLower})
		assert.Equal(t, "IMG_001-X.cr2", got)
	})

	t.Run("case folding leaves digits and punctuation alone", func(t *testing.T) {
		p := mustCompile(t, "a-1_%%(b).JPG", 1)
		assert.Equal(t, "A-1_%(B).jpg", p.Render(md, RenderParams{NameCase: CaseUpper, ExtCase: CaseLower}))
	})

	t.Run("case folding maps one rune at a time", func(t *testing.T) {
		p := mustCompile(t, "%M.jpg", 1)
		street := &metadata.Static{Path: "/in/a.jpg", Exif: true, CamMake: "Straße"}
		got := p.Render(street, RenderParams{NameCase: CaseUpper})
		assert.Equal(t, "STRAßE.jpg", got)
		assert.Equal(t, utf8.RuneCountInString("Straße.jpg"), utf8.RuneCountInString(got))

		assert.Equal(t, "straße.jpg", p.Render(street, RenderParams{NameCase: CaseLower}))
	})

	t.Run("base dir prefix", func(t *testing.T) {
		p := mustCompile(t, "%f.%e", 1)
		assert.Equal(t, filepath.Join("sorted", "IMG_001.CR2"), p.Render(md, RenderParams{BaseDir: "sorted"}))
		assert.Equal(t, "IMG_001.CR2", p.Render(md, RenderParams{BaseDir: "."}))
		assert.Equal(t, "IMG_001.CR2", p.Render(md, RenderParams{BaseDir: ""}))
	})
}

func TestPreview_DoesNotAdvance(t *testing.T) {
	p := mustCompile(t, "%f_%n", 3)
	md := sampleMetadata()

	assert.Equal(t, "IMG_001_3", p.Preview(md, RenderParams{}))
	assert.Equal(t, "IMG_001_3", p.Preview(md, RenderParams{}))
	assert.Equal(t, "IMG_001_3", p.Render(md, RenderParams{}))
	assert.Equal(t, "IMG_001_4", p.Preview(md, RenderParams{}))
}

func TestParseCaseMode(t *testing.T) {
	for in, want := range map[string]CaseMode{"off": CaseOff, "UPPER": CaseUpper, "lower": CaseLower} {
		got, err := ParseCaseMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseCaseMode("title")
	assert.Error(t, err)
	assert.Equal(t, "upper", CaseUpper.String())
}
