//go:build cgo

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/osse101/filecatalog/internal/domain"
)

const schema = `CREATE TABLE IF NOT EXISTS entries(
	path TEXT PRIMARY KEY,
	previous TEXT NOT NULL DEFAULT '',
	deleted INTEGER NOT NULL DEFAULT 0,
	updated_at INTEGER NOT NULL
);`

// SQLiteStore persists the index in a sqlite database.
type SQLiteStore struct {
	db  *sql.DB
	now Clock
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore returns an uninitialised store.
func NewSQLiteStore() *SQLiteStore {
	return &SQLiteStore{now: time.Now}
}

func (s *SQLiteStore) Initialize(dsn string) error {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return err
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return fmt.Errorf("create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Add(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (path, updated_at) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET deleted = 0, updated_at = excluded.updated_at`,
		path, s.now().UnixNano())
	return err
}

func (s *SQLiteStore) RenameEntry(ctx context.Context, oldPath, newPath string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE path = ?", oldPath); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO entries (path, previous, deleted, updated_at) VALUES (?, ?, 0, ?)",
		newPath, oldPath, s.now().UnixNano()); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) DeleteEntry(ctx context.Context, path string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (path, deleted, updated_at) VALUES (?, 1, ?)
		 ON CONFLICT(path) DO UPDATE SET deleted = 1, updated_at = excluded.updated_at`,
		path, s.now().UnixNano())
	return err
}

func (s *SQLiteStore) Lookup(ctx context.Context, path string) (*domain.CatalogEntry, error) {
	var (
		e       domain.CatalogEntry
		deleted int
		updated int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT path, previous, deleted, updated_at FROM entries WHERE path = ?", path,
	).Scan(&e.Path, &e.Previous, &deleted, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	e.Deleted = deleted != 0
	e.UpdatedAt = time.Unix(0, updated)
	return &e, nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries WHERE deleted = 0").Scan(&count)
	return count, err
}
