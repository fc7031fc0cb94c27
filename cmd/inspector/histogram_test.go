package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistogramImage_Empty(t *testing.T) {
	assert.Nil(t, histogramImage([3][]uint32{}))
	assert.Nil(t, histogramImage([3][]uint32{make([]uint32, 256)}))
}

func TestHistogramImage_ScalesToPeak(t *testing.T) {
	var hist [3][]uint32
	for ch := range hist {
		hist[ch] = make([]uint32, 256)
	}
	hist[0][10] = 100 // peak
	hist[2][10] = 50

	img := histogramImage(hist)
	require.NotNil(t, img)
	assert.Equal(t, histogramWidth, img.Bounds().Dx())

	top := img.RGBAAt(10, 0)
	assert.Equal(t, uint8(255), top.R)
	assert.Equal(t, uint8(0), top.B)

	bottom := img.RGBAAt(10, histogramHeight-1)
	assert.Equal(t, uint8(255), bottom.R)
	assert.Equal(t, uint8(255), bottom.B)
	assert.Equal(t, uint8(0), bottom.G)

	empty := img.RGBAAt(11, histogramHeight-1)
	assert.Equal(t, histogramBackground.A, empty.A)
	assert.Equal(t, uint8(0), empty.R)
}
