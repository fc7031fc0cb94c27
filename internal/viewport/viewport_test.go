package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	img := Size{W: 100, H: 100}
	view := Size{W: 50, H: 50}

	tests := []struct {
		name   string
		center Point
		img    Size
		view   Size
		want   Placement
	}{
		{
			name:   "near the top left edge",
			center: Point{X: 10, Y: 10},
			img:    img, view: view,
			want: Placement{SrcX: 0, SrcY: 0, W: 50, H: 50},
		},
		{
			name:   "near the bottom right edge",
			center: Point{X: 95, Y: 95},
			img:    img, view: view,
			want: Placement{SrcX: 50, SrcY: 50, W: 50, H: 50},
		},
		{
			name:   "middle",
			center: Point{X: 50, Y: 40},
			img:    img, view: view,
			want: Placement{SrcX: 25, SrcY: 15, W: 50, H: 50},
		},
		{
			name:   "center past the image",
			center: Point{X: 500, Y: -20},
			img:    img, view: view,
			want: Placement{SrcX: 50, SrcY: 0, W: 50, H: 50},
		},
		{
			name:   "image smaller than the view is centred",
			center: Point{X: 10, Y: 10},
			img:    Size{W: 30, H: 20},
			view:   Size{W: 50, H: 50},
			want:   Placement{DstX: 10, DstY: 15, W: 30, H: 20},
		},
		{
			name:   "axes are independent",
			center: Point{X: 80, Y: 0},
			img:    Size{W: 100, H: 20},
			view:   Size{W: 50, H: 50},
			want:   Placement{SrcX: 50, DstY: 15, W: 50, H: 20},
		},
		{
			name:   "exact fit",
			center: Point{X: 0, Y: 0},
			img:    view, view: view,
			want: Placement{W: 50, H: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.center, tt.img, tt.view))
		})
	}
}

func TestFromNormalized(t *testing.T) {
	img := Size{W: 200, H: 100}
	assert.Equal(t, Point{X: 100, Y: 25}, FromNormalized(0.5, 0.25, img))
	assert.Equal(t, Point{X: 0, Y: 100}, FromNormalized(-1, 3, img))
}

func TestPressPosition(t *testing.T) {
	x, y, ok := PressPosition(25, 25, Size{W: 100, H: 100}, Size{W: 50, H: 50})
	assert.True(t, ok)
	assert.InDelta(t, 0.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)

	_, _, ok = PressPosition(1, 1, Size{}, Size{W: 50, H: 50})
	assert.False(t, ok)
}

func TestPanner(t *testing.T) {
	var p Panner
	img := Size{W: 1000, H: 500}
	center := Point{X: 500, Y: 250}

	_, _, ok := p.Move(10, 10, center, img)
	assert.False(t, ok, "idle panner ignores motion")

	assert.True(t, p.Press(PrimaryButton, 100, 100))
	x, y, ok := p.Move(110, 95, center, img)
	assert.True(t, ok)
	assert.InDelta(t, (500.0-40)/1000, x, 1e-9)
	assert.InDelta(t, (250.0+20)/500, y, 1e-9)

	x, _, ok = p.Move(111, 95, Point{X: 460, Y: 270}, img)
	assert.True(t, ok)
	assert.InDelta(t, (460.0-4)/1000, x, 1e-9, "deltas are relative to the previous event")

	p.Release()
	assert.False(t, p.Active())

	p.Press(PrimaryButton, 0, 0)
	p.Leave()
	assert.False(t, p.Active())

	p.Press(PrimaryButton, 0, 0)
	assert.False(t, p.Press(3, 0, 0), "other buttons cancel the drag")
	assert.False(t, p.Active())
}
