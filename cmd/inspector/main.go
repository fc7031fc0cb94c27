package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/config"
	"github.com/osse101/filecatalog/internal/inspector"
	"github.com/osse101/filecatalog/internal/metadata"
	"github.com/osse101/filecatalog/internal/preview"
)

const (
	appID        = "io.github.osse101.filecatalog.inspector"
	windowTitle  = "Inspector"
	windowWidth  = 1280
	windowHeight = 800
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration failed: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)

	if len(os.Args) < 2 {
		fmt.Println("Usage: inspector <file or directory>")
		os.Exit(1)
	}

	fs := afero.NewOsFs()
	entries, start, err := listEntries(fs, os.Args[1])
	if err != nil {
		slog.Error("Cannot open inspector", "error", err)
		os.Exit(1)
	}

	tags := metadata.NewExiftool(cfg.Exiftool)
	readMetadata := func(path string) (metadata.Metadata, error) {
		return metadata.Open(fs, path, tags)
	}
	in := inspector.New(fs, preview.NewImageDecoder(fs), readMetadata, inspector.Options{
		Capacity: cfg.InspectorBuffers,
		ZoomFit:  true,
	})
	in.SetEntries(entries)

	a := app.NewWithID(appID)
	w := a.NewWindow(windowTitle)
	v := newViewer(in, entries, func(title string) {
		w.SetTitle(windowTitle + " - " + title)
	})
	w.SetContent(v)
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.Close()
			return
		}
		v.typedKey(ev)
	})
	w.Canvas().SetOnTypedRune(v.typedRune)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	in.SetActive(true)
	v.show(start)

	slog.Info("Inspector started", "entries", len(entries), "buffers", cfg.InspectorBuffers)
	w.ShowAndRun()
}
