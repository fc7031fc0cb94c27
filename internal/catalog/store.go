// Package catalog keeps the index of catalog files that batch operations
// renamed or deleted, so previews and edit history follow a file to its new
// name.
package catalog

import (
	"context"
	"time"

	"github.com/osse101/filecatalog/internal/domain"
)

// Store is the catalog index backend.
type Store interface {
	// Initialize opens the backend at dsn, creating the schema if needed.
	Initialize(dsn string) error
	Close() error

	// Add registers path, reviving it if it was marked deleted.
	Add(ctx context.Context, path string) error
	// RenameEntry moves the entry for oldPath to newPath.
	RenameEntry(ctx context.Context, oldPath, newPath string) error
	// DeleteEntry marks path as deleted.
	DeleteEntry(ctx context.Context, path string) error
	// Lookup returns domain.ErrEntryNotFound for unknown paths.
	Lookup(ctx context.Context, path string) (*domain.CatalogEntry, error)
	// Count returns the number of live (not deleted) entries.
	Count(ctx context.Context) (int, error)
}

// Clock supplies entry timestamps.
type Clock func() time.Time
