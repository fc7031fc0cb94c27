package viewport

// Gain is how many image pixels one pointer pixel of drag moves the view.
const Gain = 4.0

// PrimaryButton is the button that starts a drag.
const PrimaryButton = 1

// Panner turns pointer drags into normalized focus points. The zero value
// is idle.
type Panner struct {
	active       bool
	prevX, prevY float64
}

// Press starts a drag at (x, y) when button is the primary button and
// cancels any drag otherwise. It reports whether a drag is active.
func (p *Panner) Press(button int, x, y float64) bool {
	if button != PrimaryButton {
		p.active = false
		return false
	}
	p.active = true
	p.prevX, p.prevY = x, y
	return true
}

// Move continues a drag. Given the current center and image size it
// returns the new normalized focus point; ok is false when no drag is
// active or the image is empty.
func (p *Panner) Move(x, y float64, center Point, img Size) (nx, ny float64, ok bool) {
	if !p.active {
		return 0, 0, false
	}
	dx, dy := x-p.prevX, y-p.prevY
	p.prevX, p.prevY = x, y
	if img.W <= 0 || img.H <= 0 {
		return 0, 0, false
	}
	nx = (float64(center.X) - dx*Gain) / float64(img.W)
	ny = (float64(center.Y) - dy*Gain) / float64(img.H)
	return nx, ny, true
}

// Release ends the drag.
func (p *Panner) Release() { p.active = false }

// Leave ends the drag when the pointer leaves the view.
func (p *Panner) Leave() { p.active = false }

// Active reports whether a drag is in progress.
func (p *Panner) Active() bool { return p.active }
