package metadata

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"
	"github.com/spf13/afero"
)

// File is the Metadata of one file on disk. Core fields come from the
// embedded EXIF block; other tags are resolved through a TagLookup.
type File struct {
	path    string
	modTime time.Time
	x       *exif.Exif // nil when the file carries no readable EXIF block
	tags    TagLookup
}

var _ Metadata = (*File)(nil)

// Open reads the EXIF block of path. A file without EXIF still opens; only
// a missing or unreadable file is an error. tags may be nil.
func Open(fs afero.Fs, path string, tags TagLookup) (*File, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	f := &File{path: path, modTime: info.ModTime(), tags: tags}
	if info.IsDir() {
		return f, nil
	}

	r, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer r.Close()

	x, err := exif.Decode(r)
	if err != nil && (x == nil || exif.IsCriticalError(err)) {
		slog.Debug(LogMsgExifDecodeFailed, "path", path, "error", err)
		return f, nil
	}
	f.x = x
	return f, nil
}

// Thumbnail returns the JPEG preview embedded in the EXIF block of path.
func Thumbnail(fs afero.Fs, path string) ([]byte, error) {
	r, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	x, err := exif.Decode(r)
	if x == nil {
		return nil, err
	}
	return x.JpegThumbnail()
}

func (f *File) FileName() string { return f.path }

func (f *File) HasExif() bool { return f.x != nil }

// DateTime is the capture time, falling back to the modification time.
func (f *File) DateTime() time.Time {
	if f.x != nil {
		if t, err := f.x.DateTime(); err == nil {
			return t
		}
	}
	return f.modTime
}

func (f *File) Make() string  { return f.str(exif.Make) }
func (f *File) Model() string { return f.str(exif.Model) }
func (f *File) Lens() string  { return f.str(exif.LensModel) }

func (f *File) Rating() int {
	if f.tags == nil {
		return 0
	}
	v, err := f.tags.Lookup(f.path, KeyRating)
	if err != nil {
		return 0
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0
	}
	return n
}

func (f *File) ISO() int              { return f.integer(exif.ISOSpeedRatings) }
func (f *File) FNumber() float64      { return f.rational(exif.FNumber) }
func (f *File) FocalLength() float64  { return f.rational(exif.FocalLength) }
func (f *File) ExpComp() float64      { return f.rational(exif.ExposureBiasValue) }
func (f *File) ShutterSpeed() float64 { return f.rational(exif.ExposureTime) }

func (f *File) Dimensions() (int, int) {
	return f.integer(exif.PixelXDimension), f.integer(exif.PixelYDimension)
}

// Tag resolves Exif keys from the embedded block first, then falls back to
// the TagLookup. Keys with an unknown namespace never resolve.
func (f *File) Tag(key string) (string, bool) {
	ns := NamespaceOf(key)
	if ns == NamespaceNone {
		return "", false
	}
	if ns == NamespaceExif && f.x != nil {
		if t, err := f.x.Get(exif.FieldName(lastSegment(key))); err == nil {
			if v := tagString(t); v != "" {
				return v, true
			}
		}
	}
	if f.tags == nil {
		return "", false
	}
	v, err := f.tags.Lookup(f.path, key)
	if err != nil {
		slog.Debug(LogMsgTagLookupFailed, "path", f.path, "key", key, "error", err)
		return "", false
	}
	return v, v != ""
}

func (f *File) get(name exif.FieldName) *tiff.Tag {
	if f.x == nil {
		return nil
	}
	t, err := f.x.Get(name)
	if err != nil {
		return nil
	}
	return t
}

func (f *File) str(name exif.FieldName) string {
	t := f.get(name)
	if t == nil {
		return ""
	}
	return tagString(t)
}

func (f *File) integer(name exif.FieldName) int {
	t := f.get(name)
	if t == nil {
		return 0
	}
	v, err := t.Int(0)
	if err != nil {
		return 0
	}
	return v
}

func (f *File) rational(name exif.FieldName) float64 {
	t := f.get(name)
	if t == nil {
		return 0
	}
	num, den, err := t.Rat2(0)
	if err != nil || den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

func tagString(t *tiff.Tag) string {
	if t.Format() == tiff.StringVal {
		s, err := t.StringVal()
		if err != nil {
			return ""
		}
		return strings.TrimSpace(strings.TrimRight(s, "\x00"))
	}
	return strings.Trim(t.String(), `"`)
}
