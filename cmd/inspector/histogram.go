package main

import (
	"image"
	"image/color"
)

const (
	histogramWidth  = 256
	histogramHeight = 80
)

var histogramBackground = color.RGBA{A: 160}

// histogramImage plots the three channels additively, each scaled to the
// largest bin of any channel. It returns nil when no channel has data.
func histogramImage(hist [3][]uint32) *image.RGBA {
	var peak uint32
	for _, bins := range hist {
		for _, n := range bins {
			peak = max(peak, n)
		}
	}
	if peak == 0 {
		return nil
	}

	img := image.NewRGBA(image.Rect(0, 0, histogramWidth, histogramHeight))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+3] = histogramBackground.A
	}
	for ch, bins := range hist {
		for x := 0; x < len(bins) && x < histogramWidth; x++ {
			h := int(uint64(bins[x]) * histogramHeight / uint64(peak))
			for y := histogramHeight - h; y < histogramHeight; y++ {
				off := img.PixOffset(x, y)
				img.Pix[off+ch] = 255
				img.Pix[off+3] = 255
			}
		}
	}
	return img
}
