// Package preview decodes catalog files into display surfaces and keeps the
// most recently used ones in a bounded cache.
package preview

import (
	"fmt"
	"image"
	"strings"
)

// DisplayMode selects how a preview surface is rendered.
type DisplayMode int

const (
	// DisplayEmbedded shows the image as decoded, typically the embedded JPEG.
	DisplayEmbedded DisplayMode = iota
	DisplayLinear
	DisplayFilm
	DisplayShadowBoost
	// DisplayClipping marks clipped highlights.
	DisplayClipping
)

var displayModeNames = []string{"embedded", "linear", "film", "shadow", "clip"}

func (m DisplayMode) String() string {
	if m >= 0 && int(m) < len(displayModeNames) {
		return displayModeNames[m]
	}
	return fmt.Sprintf("display(%d)", int(m))
}

// ParseDisplayMode accepts the names printed by String.
func ParseDisplayMode(s string) (DisplayMode, error) {
	for i, name := range displayModeNames {
		if strings.EqualFold(s, name) {
			return DisplayMode(i), nil
		}
	}
	return DisplayEmbedded, fmt.Errorf("unknown display mode %q", s)
}

// ViewMode is every rendering setting that changes decoded pixels. Width
// and Height are only meaningful with ZoomFit.
type ViewMode struct {
	Display   DisplayMode
	ZoomFit   bool
	CMS       bool
	Histogram bool
	Width     int
	Height    int
}

// Key identifies a cache entry.
type Key struct {
	Path string
	Mode ViewMode
}

// Entry is one decoded preview.
type Entry struct {
	Path    string
	Surface *image.RGBA
	// Histogram holds 256 bins per RGB channel; nil channels when the
	// histogram was not requested.
	Histogram [3][]uint32
}

// Size returns the surface dimensions, zero for an empty entry.
func (e *Entry) Size() (w, h int) {
	if e == nil || e.Surface == nil {
		return 0, 0
	}
	b := e.Surface.Bounds()
	return b.Dx(), b.Dy()
}
