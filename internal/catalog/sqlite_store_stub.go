//go:build !cgo

package catalog

import (
	"context"
	"errors"

	"github.com/osse101/filecatalog/internal/domain"
)

// SQLiteStore is unavailable without cgo; Initialize always fails.
type SQLiteStore struct{}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore() *SQLiteStore { return &SQLiteStore{} }

func (s *SQLiteStore) Initialize(string) error {
	return errors.New("SQLite catalog is not available in non-CGO builds. Rebuild with CGO_ENABLED=1 or set CATALOG_DB to an empty value")
}

func (s *SQLiteStore) Close() error { return nil }

func (s *SQLiteStore) Add(context.Context, string) error { return nil }

func (s *SQLiteStore) RenameEntry(context.Context, string, string) error { return nil }

func (s *SQLiteStore) DeleteEntry(context.Context, string) error { return nil }

func (s *SQLiteStore) Lookup(_ context.Context, path string) (*domain.CatalogEntry, error) {
	return nil, domain.ErrEntryNotFound
}

func (s *SQLiteStore) Count(context.Context) (int, error) { return 0, nil }
