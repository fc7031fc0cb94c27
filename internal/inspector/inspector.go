// Package inspector holds the logic of the full-size preview viewer: up to
// two side-by-side areas, display toggles that invalidate decoded previews,
// neighbour preloading and the info overlay. Painting is left to the host.
package inspector

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/metadata"
	"github.com/osse101/filecatalog/internal/preview"
	"github.com/osse101/filecatalog/internal/viewport"
)

// Options are the initial toggle states.
type Options struct {
	// Capacity is the number of previews each area keeps decoded.
	Capacity  int
	Display   preview.DisplayMode
	ZoomFit   bool
	CMS       bool
	Histogram bool
	ShowInfo  bool
}

// MetadataFunc reads the metadata shown in the info overlay.
type MetadataFunc func(path string) (metadata.Metadata, error)

// Inspector coordinates the areas.
type Inspector struct {
	areas     [maxAreas]*Area
	paths     [maxAreas]string
	index     [maxAreas]int
	active    int
	numActive int

	entries  []string
	capacity int
	view     viewport.Size
	metadata MetadataFunc

	display    preview.DisplayMode
	zoomFit    bool
	cms        bool
	histogram  bool
	showInfo   bool
	focusMask  bool
	split      bool
	tempZoom11 bool
}

// New builds an inspector whose areas decode with dec from fs.
func New(fs afero.Fs, dec preview.Decoder, md MetadataFunc, opts Options) *Inspector {
	capacity := max(opts.Capacity, 1)
	in := &Inspector{
		numActive: 1,
		capacity:  capacity,
		metadata:  md,
		display:   opts.Display,
		zoomFit:   opts.ZoomFit,
		cms:       opts.CMS,
		histogram: opts.Histogram,
		showInfo:  opts.ShowInfo,
	}
	for i := range in.areas {
		in.areas[i] = NewArea(preview.NewLoader(fs, preview.NewCache(capacity), dec))
		in.areas[i].SetMode(in.Mode())
	}
	return in
}

// Area returns area i (0 or 1).
func (in *Inspector) Area(i int) *Area { return in.areas[i] }

// ActiveArea returns the index of the area receiving image switches.
func (in *Inspector) ActiveArea() int { return in.active }

// NumActive returns 2 in split view, 1 otherwise.
func (in *Inspector) NumActive() int { return in.numActive }

// Path returns the image shown by area i.
func (in *Inspector) Path(i int) string { return in.paths[i] }

// Mode returns the view mode new previews are decoded with.
func (in *Inspector) Mode() preview.ViewMode {
	m := preview.ViewMode{
		Display:   in.display,
		ZoomFit:   in.zoomFit,
		CMS:       in.cms,
		Histogram: in.histogram,
	}
	if in.zoomFit {
		m.Width, m.Height = in.view.W, in.view.H
	}
	return m
}

// ZoomFit reports whether previews are scaled to the view.
func (in *Inspector) ZoomFit() bool { return in.zoomFit }

// ShowInfo reports whether the info overlay is on.
func (in *Inspector) ShowInfo() bool { return in.showInfo }

// SetEntries sets the browsable file list used for neighbour preloading.
func (in *Inspector) SetEntries(paths []string) {
	in.entries = append(in.entries[:0], paths...)
}

// SetActive shows or hides the visible areas.
func (in *Inspector) SetActive(state bool) {
	for i := 0; i < in.numActive; i++ {
		in.areas[i].SetActive(state)
	}
}

// IsActive reports whether the inspector is shown.
func (in *Inspector) IsActive() bool { return in.areas[0].Active() }

// SwitchImage shows path in the active area and preloads its neighbours:
// the next entry when more than one preview fits the cache, the previous
// one as well when more than two fit.
func (in *Inspector) SwitchImage(path string) {
	if !in.IsActive() {
		return
	}

	a := in.areas[in.active]
	in.paths[in.active] = path
	if in.showInfo {
		a.SetInfo(in.InfoText(path))
	}
	a.SwitchImage(path, false, -1, -1)
	slog.Debug(LogMsgSwitchImage, "path", path, "area", in.active)

	j := in.locate(path)
	if j < 0 {
		return
	}
	in.index[in.active] = j
	if in.capacity > 1 && j+1 < len(in.entries) {
		a.Preload(in.entries[j+1])
	}
	if in.capacity > 2 && j > 0 {
		a.Preload(in.entries[j-1])
	}
}

// locate finds path in the entry list, searching outward from the last
// index the active area showed.
func (in *Inspector) locate(path string) int {
	n := len(in.entries)
	if n == 0 {
		return -1
	}
	start := min(in.index[in.active], n-1)
	for lo, hi := start, start+1; lo >= 0 || hi < n; lo, hi = lo-1, hi+1 {
		if lo >= 0 && in.entries[lo] == path {
			return lo
		}
		if hi < n && in.entries[hi] == path {
			return hi
		}
	}
	return -1
}

// MouseMove moves the focus of every visible area.
func (in *Inspector) MouseMove(nx, ny float64) {
	for i := 0; i < in.numActive; i++ {
		in.areas[i].MouseMove(nx, ny)
	}
}

// Pressed is called when a drag starts at the normalized point (nx, ny).
// In zoom-fit mode the areas switch to 1:1 around that point until
// Released.
func (in *Inspector) Pressed(nx, ny float64) {
	if in.zoomFit {
		in.tempZoom11 = true
		in.setZoom(false, nx, ny)
	}
}

// Released ends a drag, restoring zoom-fit when Pressed left it.
func (in *Inspector) Released() {
	if in.tempZoom11 {
		in.tempZoom11 = false
		in.setZoom(true, -1, -1)
	}
}

// SetZoomFit switches between scaled-to-view and 1:1 previews.
func (in *Inspector) SetZoomFit(yes bool) {
	if yes != in.zoomFit {
		in.setZoom(yes, -1, -1)
	}
}

func (in *Inspector) setZoom(fit bool, nx, ny float64) {
	in.zoomFit = fit
	in.refresh(true, nx, ny)
}

// SetDisplayMode changes how previews are rendered.
func (in *Inspector) SetDisplayMode(m preview.DisplayMode) {
	if m != in.display {
		in.display = m
		in.refresh(false, -1, -1)
	}
}

// ToggleCMS flips colour management.
func (in *Inspector) ToggleCMS() {
	in.cms = !in.cms
	in.refresh(false, -1, -1)
}

// ToggleHistogram flips histogram computation.
func (in *Inspector) ToggleHistogram() {
	in.histogram = !in.histogram
	in.refresh(false, -1, -1)
}

// ToggleInfo flips the info overlay.
func (in *Inspector) ToggleInfo() {
	in.showInfo = !in.showInfo
	for i := 0; i < in.numActive; i++ {
		if in.showInfo {
			in.areas[i].SetInfo(in.InfoText(in.paths[i]))
		} else {
			in.areas[i].SetInfo("")
		}
	}
}

// ToggleFocusMask flips the sharpness overlay.
func (in *Inspector) ToggleFocusMask() {
	in.focusMask = !in.focusMask
	for i := 0; i < in.numActive; i++ {
		in.areas[i].SetFocusMask(in.focusMask)
	}
}

// ToggleSplit turns the second area on or off. Turning it on makes it the
// active one; it becomes visible on its first Draw.
func (in *Inspector) ToggleSplit() {
	in.split = !in.split
	in.areas[0].SetHighlight(false)
	in.areas[1].SetActive(false)
	if in.split {
		in.active = 1
		in.numActive = 2
		in.areas[1].SetHighlight(true)
		in.areas[1].SetFocusMask(in.focusMask)
	} else {
		in.active = 0
		in.numActive = 1
		in.areas[1].SetHighlight(false)
	}
}

// SelectArea makes area i the one receiving image switches.
func (in *Inspector) SelectArea(i int) {
	if i < 0 || i >= in.numActive {
		return
	}
	in.areas[in.active].SetHighlight(false)
	in.active = i
	in.areas[i].SetHighlight(true)
}

// SetViewSize records the view size. In zoom-fit mode a new size
// re-decodes the visible previews.
func (in *Inspector) SetViewSize(view viewport.Size) {
	if view == in.view {
		return
	}
	in.view = view
	if in.zoomFit {
		in.refresh(false, -1, -1)
	}
}

// refresh flushes every visible area and shows its image again with the
// current mode.
func (in *Inspector) refresh(recenter bool, nx, ny float64) {
	mode := in.Mode()
	slog.Debug(LogMsgModeChanged, "display", mode.Display.String(), "zoom_fit", mode.ZoomFit,
		"cms", mode.CMS, "histogram", mode.Histogram)
	for i := 0; i < in.numActive; i++ {
		a := in.areas[i]
		a.SetMode(mode)
		a.Flush()
		a.SwitchImage(in.paths[i], recenter, nx, ny)
	}
	for i := in.numActive; i < maxAreas; i++ {
		in.areas[i].SetMode(mode)
	}
}

// HandleKey applies a keyboard shortcut. key is the key name without
// modifiers; shift reports the shift modifier. It returns false for keys
// it does not handle.
func (in *Inspector) HandleKey(key string, shift bool) bool {
	if shift {
		switch key {
		case KeyFocusMask:
			in.ToggleFocusMask()
		case KeyInfo:
			in.ToggleInfo()
		default:
			return false
		}
		return true
	}

	switch key {
	case KeyHistogram:
		in.ToggleHistogram()
	case KeyCMS:
		in.ToggleCMS()
	case KeyZoom11:
		in.SetZoomFit(false)
	case KeyZoomFit:
		in.SetZoomFit(true)
	case KeyEmbedded:
		in.SetDisplayMode(preview.DisplayEmbedded)
	case KeyLinear:
		in.SetDisplayMode(preview.DisplayLinear)
	case KeyFilm:
		in.SetDisplayMode(preview.DisplayFilm)
	case KeyShadowBoost:
		in.SetDisplayMode(preview.DisplayShadowBoost)
	case KeyClipping:
		in.SetDisplayMode(preview.DisplayClipping)
	case KeySplit:
		in.ToggleSplit()
	case KeyTab:
		if !in.split {
			return false
		}
		in.SelectArea(1 - in.active)
	default:
		return false
	}
	return true
}

// InfoText describes the shot at path for the info overlay.
func (in *Inspector) InfoText(path string) string {
	if in.metadata == nil || path == "" {
		return MsgNoExif
	}
	md, err := in.metadata(path)
	if err != nil {
		slog.Debug(LogMsgMetadataFail, "path", path, "error", err)
		return MsgNoExif
	}
	return InfoText(path, md)
}

// InfoText formats camera, exposure, location and size of md.
func InfoText(path string, md metadata.Metadata) string {
	if !md.HasExif() {
		return MsgNoExif
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s + %s\n", md.Make(), md.Model(), md.Lens())
	fmt.Fprintf(&b, "f/%s  %ss  ISO %d  %.2fmm",
		metadata.ApertureString(md.FNumber()),
		metadata.ShutterString(md.ShutterSpeed()),
		md.ISO(),
		md.FocalLength())
	if ev := metadata.ExpCompString(md.ExpComp(), true); ev != "" {
		fmt.Fprintf(&b, "  %sEV", ev)
	}
	fmt.Fprintf(&b, "\n%s%c%s", filepath.Dir(path), filepath.Separator, filepath.Base(path))

	if w, h := md.Dimensions(); w > 0 && h > 0 {
		fmt.Fprintf(&b, "\n%.1f MP (%dx%d)", float64(w)*float64(h)/1e6, w, h)
	}
	return b.String()
}
