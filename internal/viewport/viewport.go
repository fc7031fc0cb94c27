// Package viewport maps a focus point in image space to the part of the
// image that fits a view, and turns pointer drags into new focus points.
package viewport

// Size is a width and height in pixels.
type Size struct {
	W, H int
}

// Point is a position in image pixels.
type Point struct {
	X, Y int
}

// Placement says which part of the image to draw where. The source
// rectangle starts at (SrcX, SrcY); it is drawn at (DstX, DstY) in the
// view with size W×H.
type Placement struct {
	SrcX, SrcY int
	DstX, DstY int
	W, H       int
}

// Compute places an image of size img, focused on center, in a view of
// size view. Each axis is handled on its own: an image narrower than the
// view is centred, otherwise the view pans around center without leaving
// the image.
func Compute(center Point, img, view Size) Placement {
	var p Placement
	p.SrcX, p.DstX, p.W = axis(center.X, img.W, view.W)
	p.SrcY, p.DstY, p.H = axis(center.Y, img.H, view.H)
	return p
}

func axis(center, img, view int) (src, dst, size int) {
	if img < view {
		dst = (view - img) / 2
	} else {
		// Clamp to the far edge first, then to zero.
		src = min(center+view/2, img) - view
		src = max(src, 0)
	}
	size = min(view-dst, img)
	return src, dst, size
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return max(0, min(v, 1))
}

// FromNormalized converts a normalized position to image pixels, clamping
// it to the image first.
func FromNormalized(x, y float64, img Size) Point {
	return Point{
		X: int(Clamp01(x) * float64(img.W)),
		Y: int(Clamp01(y) * float64(img.H)),
	}
}

// PressPosition maps a button press at (x, y) in a view of size view to
// normalized image coordinates, assuming the image is centred in the view.
func PressPosition(x, y float64, img, view Size) (nx, ny float64, ok bool) {
	if img.W <= 0 || img.H <= 0 {
		return 0, 0, false
	}
	ox := img.W/2 - view.W/2
	oy := img.H/2 - view.H/2
	return (x + float64(ox)) / float64(img.W), (y + float64(oy)) / float64(img.H), true
}
