package preview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"

	// Formats understood by ImageDecoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/afero"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/osse101/filecatalog/internal/metadata"
)

// ImageDecoder decodes common image formats. Files it cannot decode
// directly, such as camera raw files, fall back to their embedded EXIF
// thumbnail.
type ImageDecoder struct {
	fs     afero.Fs
	curves map[DisplayMode]*[256]uint8
}

var _ Decoder = (*ImageDecoder)(nil)

// NewImageDecoder reads files from fs, the host file system when nil.
func NewImageDecoder(fs afero.Fs) *ImageDecoder {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &ImageDecoder{
		fs: fs,
		curves: map[DisplayMode]*[256]uint8{
			DisplayLinear:      toneCurve(srgbToLinear),
			DisplayFilm:        toneCurve(filmCurve),
			DisplayShadowBoost: toneCurve(shadowBoost),
		},
	}
}

// Decode implements Decoder.
func (d *ImageDecoder) Decode(req Request) (*Entry, error) {
	img, err := d.decodeFile(req.Path)
	if err != nil {
		thumb, terr := metadata.Thumbnail(d.fs, req.Path)
		if terr != nil || len(thumb) == 0 {
			return nil, err
		}
		if img, _, err = image.Decode(bytes.NewReader(thumb)); err != nil {
			return nil, err
		}
		slog.Debug(LogMsgThumbnailFallback, "path", req.Path)
	}

	surface := fit(img, req.Width, req.Height)
	d.applyDisplay(surface, req.Display)

	e := &Entry{Path: req.Path, Surface: surface}
	if req.Histogram {
		e.Histogram = histogram(surface)
	}
	return e, nil
}

func (d *ImageDecoder) decodeFile(path string) (image.Image, error) {
	f, err := d.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%s: %s", path, ErrMsgUnknownFormat)
	}
	return img, err
}

// fit converts img to RGBA, scaling it down to fit w×h while keeping the
// aspect ratio. Non-positive w or h keep the full size.
func fit(img image.Image, w, h int) *image.RGBA {
	b := img.Bounds()
	dw, dh := b.Dx(), b.Dy()
	if w > 0 && h > 0 && (dw > w || dh > h) {
		scale := math.Min(float64(w)/float64(dw), float64(h)/float64(dh))
		dw = max(1, int(float64(dw)*scale))
		dh = max(1, int(float64(dh)*scale))
	}

	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	if dw == b.Dx() && dh == b.Dy() {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}
	return dst
}

func (d *ImageDecoder) applyDisplay(img *image.RGBA, mode DisplayMode) {
	switch mode {
	case DisplayEmbedded:
		return
	case DisplayClipping:
		markClipped(img)
		return
	}
	curve, ok := d.curves[mode]
	if !ok {
		return
	}
	p := img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		p[i] = curve[p[i]]
		p[i+1] = curve[p[i+1]]
		p[i+2] = curve[p[i+2]]
	}
}

// markClipped paints pixels with any clipped channel red.
func markClipped(img *image.RGBA) {
	p := img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		if p[i] >= clipThreshold || p[i+1] >= clipThreshold || p[i+2] >= clipThreshold {
			p[i], p[i+1], p[i+2] = 0xff, 0, 0
		}
	}
}

func toneCurve(f func(float64) float64) *[256]uint8 {
	var lut [256]uint8
	for i := range lut {
		v := f(float64(i) / 255)
		lut[i] = uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return &lut
}

func srgbToLinear(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// filmCurve is a smoothstep S-curve blended half way with the identity.
func filmCurve(v float64) float64 {
	return 0.5*v + 0.5*v*v*(3-2*v)
}

func shadowBoost(v float64) float64 {
	return math.Pow(v, 1/1.8)
}

func histogram(img *image.RGBA) [3][]uint32 {
	var h [3][]uint32
	for c := range h {
		h[c] = make([]uint32, histogramBins)
	}
	p := img.Pix
	for i := 0; i+3 < len(p); i += 4 {
		h[0][p[i]]++
		h[1][p[i+1]]++
		h[2][p[i+2]]++
	}
	return h
}
