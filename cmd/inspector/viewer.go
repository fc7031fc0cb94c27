package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/osse101/filecatalog/internal/inspector"
	"github.com/osse101/filecatalog/internal/viewport"
)

const (
	areaCount       = 2
	highlightStroke = 2
	overlayPadding  = 8
)

var (
	backgroundColor = color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	highlightColor  = color.NRGBA{R: 0x3d, G: 0x8e, B: 0xf0, A: 0xff}
)

// viewer paints the inspector areas side by side and feeds it pointer and
// keyboard input.
type viewer struct {
	widget.BaseWidget

	in      *inspector.Inspector
	entries []string
	pos     int
	onTitle func(string)

	dragging bool
	dragArea int
}

var (
	_ desktop.Mouseable = (*viewer)(nil)
	_ desktop.Hoverable = (*viewer)(nil)
)

func newViewer(in *inspector.Inspector, entries []string, onTitle func(string)) *viewer {
	v := &viewer{in: in, entries: entries, onTitle: onTitle}
	v.ExtendBaseWidget(v)
	return v
}

// show switches the active area to entry i.
func (v *viewer) show(i int) {
	if len(v.entries) == 0 {
		return
	}
	v.pos = max(0, min(i, len(v.entries)-1))
	path := v.entries[v.pos]
	v.in.SwitchImage(path)
	if v.onTitle != nil {
		v.onTitle(fmt.Sprintf("%s (%d/%d)", filepath.Base(path), v.pos+1, len(v.entries)))
	}
	v.Refresh()
}

func (v *viewer) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyRight, fyne.KeyDown, fyne.KeySpace, fyne.KeyPageDown:
		v.show(v.pos + 1)
	case fyne.KeyLeft, fyne.KeyUp, fyne.KeyBackspace, fyne.KeyPageUp:
		v.show(v.pos - 1)
	case fyne.KeyHome:
		v.show(0)
	case fyne.KeyEnd:
		v.show(len(v.entries) - 1)
	case fyne.KeyTab:
		if v.in.HandleKey(inspector.KeyTab, false) {
			v.Refresh()
		}
	}
}

func (v *viewer) typedRune(r rune) {
	if v.in.HandleKey(string(r), unicode.IsUpper(r)) {
		v.Refresh()
	}
}

// areaAt returns the area under x and x relative to that area.
func (v *viewer) areaAt(x float32) (int, float32) {
	w := v.areaWidth()
	i := min(int(x/w), v.in.NumActive()-1)
	return i, x - w*float32(i)
}

func (v *viewer) areaWidth() float32 {
	return v.Size().Width / float32(v.in.NumActive())
}

func (v *viewer) viewSize() viewport.Size {
	return viewport.Size{W: int(v.areaWidth()), H: int(v.Size().Height)}
}

func (v *viewer) MouseDown(ev *desktop.MouseEvent) {
	i, x := v.areaAt(ev.Position.X)
	nx, ny, ok := v.in.Area(i).Press(int(ev.Button), float64(x), float64(ev.Position.Y), v.viewSize())
	if !ok {
		return
	}
	v.dragging, v.dragArea = true, i
	v.in.SelectArea(i)
	v.in.Pressed(nx, ny)
	v.Refresh()
}

func (v *viewer) MouseUp(*desktop.MouseEvent) {
	v.release()
}

func (v *viewer) MouseIn(*desktop.MouseEvent) {}

func (v *viewer) MouseMoved(ev *desktop.MouseEvent) {
	if !v.dragging {
		return
	}
	_, x := v.areaAt(ev.Position.X)
	if nx, ny, ok := v.in.Area(v.dragArea).Drag(float64(x), float64(ev.Position.Y)); ok {
		v.in.MouseMove(nx, ny)
		v.Refresh()
	}
}

func (v *viewer) MouseOut() {
	for i := 0; i < v.in.NumActive(); i++ {
		v.in.Area(i).Leave()
	}
	v.release()
}

func (v *viewer) release() {
	if !v.dragging {
		return
	}
	v.dragging = false
	v.in.Area(v.dragArea).Release()
	v.in.Released()
	v.Refresh()
}

func (v *viewer) CreateRenderer() fyne.WidgetRenderer {
	r := &viewerRenderer{v: v, background: canvas.NewRectangle(backgroundColor)}
	r.objects = append(r.objects, r.background)
	for i := range r.areas {
		a := &r.areas[i]
		a.image = canvas.NewImageFromImage(nil)
		a.image.FillMode = canvas.ImageFillStretch
		a.image.ScaleMode = canvas.ImageScalePixels
		a.histogram = canvas.NewImageFromImage(nil)
		a.histogram.FillMode = canvas.ImageFillStretch
		a.border = canvas.NewRectangle(color.Transparent)
		a.border.StrokeColor = highlightColor
		a.border.StrokeWidth = highlightStroke
		a.info = widget.NewLabel("")
		r.objects = append(r.objects, a.image, a.histogram, a.border, a.info)
	}
	return r
}

type areaObjects struct {
	image     *canvas.Image
	histogram *canvas.Image
	border    *canvas.Rectangle
	info      *widget.Label
}

func (a *areaObjects) hide() {
	a.image.Hide()
	a.histogram.Hide()
	a.border.Hide()
	a.info.Hide()
}

type viewerRenderer struct {
	v          *viewer
	background *canvas.Rectangle
	areas      [areaCount]areaObjects
	objects    []fyne.CanvasObject
}

func (r *viewerRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.Refresh()
}

func (r *viewerRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *viewerRenderer) Refresh() {
	in := r.v.in
	view := r.v.viewSize()
	if view.W <= 0 || view.H <= 0 {
		return
	}
	in.SetViewSize(view)
	width := r.v.areaWidth()

	for i := range r.areas {
		objs := &r.areas[i]
		if i >= in.NumActive() {
			objs.hide()
			continue
		}
		origin := fyne.NewPos(width*float32(i), 0)
		frame, ok := in.Area(i).Draw(view)

		if ok {
			p := frame.Placement
			objs.image.Image = frame.Image
			objs.image.Move(origin.AddXY(float32(p.DstX), float32(p.DstY)))
			objs.image.Resize(fyne.NewSize(float32(p.W), float32(p.H)))
			objs.image.Show()
			objs.image.Refresh()
		} else {
			objs.image.Hide()
		}

		if hist := histogramImage(frame.Histogram); ok && hist != nil {
			objs.histogram.Image = hist
			objs.histogram.Resize(fyne.NewSize(histogramWidth, histogramHeight))
			objs.histogram.Move(origin.AddXY(width-histogramWidth-overlayPadding,
				float32(view.H)-histogramHeight-overlayPadding))
			objs.histogram.Show()
			objs.histogram.Refresh()
		} else {
			objs.histogram.Hide()
		}

		if frame.Highlight {
			objs.border.Move(origin)
			objs.border.Resize(fyne.NewSize(width, float32(view.H)))
			objs.border.Show()
		} else {
			objs.border.Hide()
		}

		if frame.Info != "" {
			objs.info.SetText(frame.Info)
			objs.info.Move(origin.AddXY(overlayPadding, overlayPadding))
			objs.info.Resize(objs.info.MinSize())
			objs.info.Show()
		} else {
			objs.info.Hide()
		}
	}
	canvas.Refresh(r.background)
}

func (r *viewerRenderer) Objects() []fyne.CanvasObject { return r.objects }

func (r *viewerRenderer) Destroy() {}
