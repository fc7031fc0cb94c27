package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/osse101/filecatalog/internal/catalog"
	"github.com/osse101/filecatalog/internal/config"
	"github.com/osse101/filecatalog/internal/metadata"
	"github.com/osse101/filecatalog/internal/rename"
	"github.com/osse101/filecatalog/internal/settings"
)

const catalogDirPerm = 0o755

// errUsage reports a flag error that the flag package already printed.
var errUsage = errors.New("usage")

// env is the state shared by all commands.
type env struct {
	cfg *config.Config
	fs  afero.Fs
}

func newEnv(cfg *config.Config) *env {
	return &env{cfg: cfg, fs: afero.NewOsFs()}
}

// openCatalog opens the catalog index named in the configuration. The
// caller closes it.
func (e *env) openCatalog() (catalog.Store, error) {
	if e.cfg.CatalogDB == "" {
		return catalog.NewMemory(), nil
	}
	if err := e.fs.MkdirAll(filepath.Dir(e.cfg.CatalogDB), catalogDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create catalog directory: %w", err)
	}
	store := catalog.NewSQLiteStore()
	if err := store.Initialize(e.cfg.CatalogDB); err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", e.cfg.CatalogDB, err)
	}
	return store, nil
}

func (e *env) loadSettings(path string) (settings.RenameOptions, error) {
	if path == "" {
		path = e.cfg.RenameSettings
	}
	return settings.Load(e.fs, path)
}

func (e *env) metadataFunc() rename.MetadataFunc {
	return rename.FileMetadata(e.fs, metadata.NewExiftool(e.cfg.Exiftool))
}
