package metadata

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/domain"
)

func TestExiftoolTagName(t *testing.T) {
	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"Exif.Photo.ISOSpeedRatings", "EXIF:ISOSpeedRatings", true},
		{"Exif.Image.Make", "EXIF:Make", true},
		{"Iptc.Application2.City", "IPTC:City", true},
		{"Xmp.dc.title", "XMP-dc:title", true},
		{"Xmp.Rating", "XMP:Rating", true},
		{"MakerNote.Canon.Foo", "", false},
		{"Exif.", "", false},
		{"Exif", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ExiftoolTagName(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExiftoolLookup(t *testing.T) {
	t.Run("passes translated tag and trims output", func(t *testing.T) {
		var gotName string
		var gotArgs []string
		et := NewExiftool("exiftool-test")
		et.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			gotName = name
			gotArgs = args
			return []byte("Berlin\n"), nil
		}

		v, err := et.Lookup("/photos/a.jpg", "Iptc.Application2.City")

		require.NoError(t, err)
		assert.Equal(t, "Berlin", v)
		assert.Equal(t, "exiftool-test", gotName)
		assert.Equal(t, []string{"-s3", "-IPTC:City", "/photos/a.jpg"}, gotArgs)
	})

	t.Run("empty output is tag not found", func(t *testing.T) {
		et := NewExiftool("")
		et.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return []byte("  \n"), nil
		}

		_, err := et.Lookup("a.jpg", "Xmp.dc.title")

		assert.ErrorIs(t, err, domain.ErrTagNotFound)
	})

	t.Run("unknown namespace never runs the binary", func(t *testing.T) {
		et := NewExiftool("")
		et.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			t.Fatal("runner must not be called")
			return nil, nil
		}

		_, err := et.Lookup("a.jpg", "Foo.Bar")

		assert.ErrorIs(t, err, domain.ErrTagNotFound)
	})

	t.Run("runner failure is wrapped", func(t *testing.T) {
		boom := errors.New("exec: not found")
		et := NewExiftool("")
		et.Run = func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return nil, boom
		}

		_, err := et.Lookup("a.jpg", "Exif.Photo.FNumber")

		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), LogMsgExiftoolFailed)
	})
}
