package inspector

import (
	"image"
	"image/draw"

	"github.com/osse101/filecatalog/internal/preview"
	"github.com/osse101/filecatalog/internal/viewport"
)

// Frame is what an area paints: Image goes at (Placement.DstX,
// Placement.DstY) in the view.
type Frame struct {
	Image     *image.RGBA
	Placement viewport.Placement
	Highlight bool
	Info      string
	Histogram [3][]uint32
}

// Area shows one preview with its own cache, focus center and drag state.
type Area struct {
	loader *preview.Loader
	mode   preview.ViewMode

	active    bool
	current   *preview.Entry
	center    viewport.Point
	panner    viewport.Panner
	focusMask bool
	highlight bool
	info      string
}

// NewArea creates an inactive area loading previews through loader.
func NewArea(loader *preview.Loader) *Area {
	return &Area{loader: loader}
}

// SetMode sets the view mode used for subsequent loads.
func (a *Area) SetMode(m preview.ViewMode) { a.mode = m }

// Active reports whether the area is shown.
func (a *Area) Active() bool { return a.active }

// Current returns the displayed preview, nil when there is none.
func (a *Area) Current() *preview.Entry { return a.current }

// Center returns the focus point in image pixels.
func (a *Area) Center() viewport.Point { return a.center }

// SwitchImage displays path, or nothing when path is empty. With recenter
// the focus moves to the normalized point (nx, ny), or to the middle of
// the image when either coordinate is negative.
func (a *Area) SwitchImage(path string, recenter bool, nx, ny float64) {
	if !a.active {
		return
	}
	if path == "" {
		a.current = nil
		return
	}
	a.current = a.loader.Load(path, a.mode)
	if a.current == nil || !recenter {
		return
	}
	w, h := a.current.Size()
	if nx >= 0 && ny >= 0 {
		a.center = viewport.FromNormalized(nx, ny, viewport.Size{W: w, H: h})
	} else {
		a.center = viewport.Point{X: w / 2, Y: h / 2}
	}
}

// MouseMove moves the focus to the normalized point (nx, ny).
func (a *Area) MouseMove(nx, ny float64) {
	if !a.active {
		return
	}
	if a.current == nil {
		a.center = viewport.Point{}
		return
	}
	a.center = viewport.FromNormalized(nx, ny, a.size())
}

// Preload decodes path into the cache.
func (a *Area) Preload(path string) {
	a.loader.Preload(path, a.mode)
}

// Flush empties the cache of an active area.
func (a *Area) Flush() {
	if !a.active {
		return
	}
	a.loader.Cache().Clear()
	a.current = nil
}

// SetActive shows or hides the area. Hiding flushes the cache.
func (a *Area) SetActive(state bool) {
	if !state {
		a.Flush()
	}
	a.active = state
}

// SetHighlight marks the area as the one receiving image switches.
func (a *Area) SetHighlight(yes bool) { a.highlight = yes }

// SetFocusMask toggles the sharpness overlay.
func (a *Area) SetFocusMask(yes bool) { a.focusMask = yes }

// SetInfo sets the text drawn over the image; empty hides it.
func (a *Area) SetInfo(text string) { a.info = text }

// Draw computes the frame for a view of size view. Drawing activates the
// area. ok is false when there is no image to draw.
func (a *Area) Draw(view viewport.Size) (f Frame, ok bool) {
	a.active = true
	f = Frame{Highlight: a.highlight, Info: a.info}
	if a.current == nil {
		return f, false
	}

	f.Placement = viewport.Compute(a.center, a.size(), view)
	f.Histogram = a.current.Histogram
	f.Image = crop(a.current.Surface, f.Placement)
	if a.focusMask {
		applyFocusMask(f.Image)
	}
	return f, true
}

// Press handles a button press at (x, y) in a view of size view. For the
// primary button it starts a drag and returns the normalized image point
// under the pointer.
func (a *Area) Press(button int, x, y float64, view viewport.Size) (nx, ny float64, ok bool) {
	if !a.active {
		a.panner.Release()
		return 0, 0, false
	}
	if !a.panner.Press(button, x, y) || a.current == nil {
		return 0, 0, false
	}
	return viewport.PressPosition(x, y, a.size(), view)
}

// Drag continues a drag, returning the new normalized focus point.
func (a *Area) Drag(x, y float64) (nx, ny float64, ok bool) {
	if !a.active || a.current == nil {
		return 0, 0, false
	}
	return a.panner.Move(x, y, a.center, a.size())
}

// Release ends a drag.
func (a *Area) Release() { a.panner.Release() }

// Leave ends a drag when the pointer leaves the area.
func (a *Area) Leave() { a.panner.Leave() }

func (a *Area) size() viewport.Size {
	w, h := a.current.Size()
	return viewport.Size{W: w, H: h}
}

func crop(src *image.RGBA, p viewport.Placement) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, p.W, p.H))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(p.SrcX, p.SrcY), draw.Src)
	return dst
}
