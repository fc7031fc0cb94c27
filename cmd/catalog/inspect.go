package main

import (
	"context"
	"fmt"

	"github.com/osse101/filecatalog/internal/inspector"
	"github.com/osse101/filecatalog/internal/preview"
	"github.com/osse101/filecatalog/internal/viewport"
)

const (
	defaultViewWidth  = 1920
	defaultViewHeight = 1080
)

var channelNames = [3]string{"R", "G", "B"}

// InspectCommand decodes previews the way the viewer does and prints what
// would be drawn.
type InspectCommand struct {
	env *env
}

func (c *InspectCommand) Name() string { return "inspect" }

func (c *InspectCommand) Description() string {
	return "Decode previews and print placement, histogram and shot info"
}

func (c *InspectCommand) Run(ctx context.Context, args []string) error {
	fs := newFlagSet(c.Name())
	display := fs.String("display", preview.DisplayEmbedded.String(), "embedded, linear, film, shadow or clip")
	fit := fs.Bool("fit", false, "scale the preview to the view")
	width := fs.Int("width", defaultViewWidth, "view width")
	height := fs.Int("height", defaultViewHeight, "view height")
	cms := fs.Bool("cms", false, "color-managed decode")
	focusX := fs.Float64("x", 0.5, "horizontal focus point, 0..1")
	focusY := fs.Float64("y", 0.5, "vertical focus point, 0..1")
	if err := parseFlags(fs, args, nil); err != nil {
		return err
	}

	dm, err := preview.ParseDisplayMode(*display)
	if err != nil {
		return err
	}
	view := viewport.Size{W: *width, H: *height}
	mode := preview.ViewMode{Display: dm, ZoomFit: *fit, CMS: *cms, Histogram: true}
	if *fit {
		mode.Width, mode.Height = view.W, view.H
	}

	loader := preview.NewLoader(c.env.fs,
		preview.NewCache(c.env.cfg.InspectorBuffers),
		preview.NewImageDecoder(c.env.fs))
	readMetadata := c.env.metadataFunc()

	for _, path := range fs.Args() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		PrintHeader(path)
		entry := loader.Load(path, mode)
		if entry == nil {
			PrintError("No preview available")
			continue
		}

		w, h := entry.Size()
		img := viewport.Size{W: w, H: h}
		p := viewport.Compute(viewport.FromNormalized(*focusX, *focusY, img), img, view)
		fmt.Printf("Preview:   %dx%d (%s)\n", w, h, dm)
		fmt.Printf("Source:    %d,%d %dx%d\n", p.SrcX, p.SrcY, p.W, p.H)
		fmt.Printf("Placed at: %d,%d in %dx%d\n", p.DstX, p.DstY, view.W, view.H)
		printHistogram(entry.Histogram, w*h)

		md, err := readMetadata(path)
		if err != nil {
			fmt.Println(inspector.MsgNoExif)
			continue
		}
		fmt.Println(inspector.InfoText(path, md))
	}
	return nil
}

func printHistogram(hist [3][]uint32, pixels int) {
	if pixels == 0 {
		return
	}
	for ch, bins := range hist {
		if len(bins) == 0 {
			continue
		}
		var sum uint64
		for v, n := range bins {
			sum += uint64(v) * uint64(n)
		}
		clipped := bins[len(bins)-1]
		fmt.Printf("%s: mean %.1f, clipped %.2f%%\n", channelNames[ch],
			float64(sum)/float64(pixels), 100*float64(clipped)/float64(pixels))
	}
}
