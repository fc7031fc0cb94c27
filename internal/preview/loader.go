package preview

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/domain"
	"github.com/osse101/filecatalog/internal/metrics"
)

// Request is what the decoder is asked to produce. Width and Height are -1
// for a full-size decode.
type Request struct {
	Path      string
	Ext       string
	Width     int
	Height    int
	Display   DisplayMode
	CMS       bool
	Histogram bool
}

// Decoder turns a file into a preview entry.
type Decoder interface {
	Decode(req Request) (*Entry, error)
}

// Loader serves previews from the cache, decoding on a miss. Failed decodes
// are never cached so the next Load tries again.
type Loader struct {
	fs      afero.Fs
	cache   *Cache
	decoder Decoder
}

// NewLoader wires a cache to a decoder. A nil fs means the host file
// system.
func NewLoader(fs afero.Fs, cache *Cache, dec Decoder) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs, cache: cache, decoder: dec}
}

// Cache returns the cache backing the loader.
func (l *Loader) Cache() *Cache { return l.cache }

// Load returns the preview of path rendered with mode, or nil when the file
// cannot be previewed.
func (l *Loader) Load(path string, mode ViewMode) *Entry {
	e, err := l.load(path, mode)
	if err != nil {
		slog.Debug(LogMsgNotDecodable, "path", path, "error", err)
		return nil
	}
	return e
}

// Preload decodes path into the cache without returning it.
func (l *Loader) Preload(path string, mode ViewMode) {
	_ = l.Load(path, mode)
}

func (l *Loader) load(path string, mode ViewMode) (*Entry, error) {
	key := Key{Path: path, Mode: mode}
	if e, ok := l.cache.Get(key); ok {
		return e, nil
	}

	req, err := l.request(path, mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	e, err := l.decoder.Decode(req)
	metrics.PreviewDecodeDuration.Observe(time.Since(start).Seconds())
	if err == nil && (e == nil || e.Surface == nil) {
		err = errors.New(ErrMsgNoSurface)
	}
	if err != nil {
		metrics.PreviewDecodeFailures.Inc()
		slog.Debug(LogMsgDecodeFailed, "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrDecodeFailed, err)
	}

	e.Path = path
	l.cache.Put(key, e)
	return e, nil
}

func (l *Loader) request(path string, mode ViewMode) (Request, error) {
	if path == "" {
		return Request{}, errors.New(ErrMsgEmptyPath)
	}
	info, err := l.fs.Stat(path)
	if err != nil {
		return Request{}, err
	}
	if info.IsDir() {
		return Request{}, fmt.Errorf("%s: %s", path, ErrMsgIsDirectory)
	}
	ext := extension(path)
	if ext == "" {
		return Request{}, fmt.Errorf("%s: %s", path, ErrMsgNoExtension)
	}

	req := Request{
		Path:      path,
		Ext:       ext,
		Width:     -1,
		Height:    -1,
		Display:   mode.Display,
		CMS:       mode.CMS,
		Histogram: mode.Histogram,
	}
	if mode.ZoomFit && mode.Width > 0 && mode.Height > 0 {
		req.Width, req.Height = mode.Width, mode.Height
	}
	return req, nil
}

func extension(path string) string {
	ext := filepath.Ext(filepath.Base(path))
	if len(ext) <= 1 {
		return ""
	}
	return ext[1:]
}
