package inspector

import "image"

// applyFocusMask paints in-focus pixels green. A pixel counts as in focus
// when the Laplacian of its luminance exceeds focusThreshold.
func applyFocusMask(img *image.RGBA) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 3 || h < 3 {
		return
	}

	lum := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			p := img.Pix[i : i+3 : i+3]
			lum[y*w+x] = (299*int(p[0]) + 587*int(p[1]) + 114*int(p[2])) / 1000
		}
	}

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			c := lum[y*w+x]
			lap := 4*c - lum[(y-1)*w+x] - lum[(y+1)*w+x] - lum[y*w+x-1] - lum[y*w+x+1]
			if lap < 0 {
				lap = -lap
			}
			if lap > focusThreshold {
				i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
				img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 0, 0xff, 0
			}
		}
	}
}
