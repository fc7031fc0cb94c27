package catalog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/filecatalog/internal/domain"
)

// Memory is an in-process Store used for dry runs and tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]domain.CatalogEntry
	now     Clock
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory index.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]domain.CatalogEntry),
		now:     time.Now,
	}
}

func (m *Memory) Initialize(string) error { return nil }

func (m *Memory) Close() error { return nil }

func (m *Memory) Add(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entries[path]
	e.Path = path
	e.Deleted = false
	e.UpdatedAt = m.now()
	m.entries[path] = e
	return nil
}

func (m *Memory) RenameEntry(ctx context.Context, oldPath, newPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, oldPath)
	m.entries[newPath] = domain.CatalogEntry{
		Path:      newPath,
		Previous:  oldPath,
		UpdatedAt: m.now(),
	}
	return nil
}

func (m *Memory) DeleteEntry(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := m.entries[path]
	e.Path = path
	e.Deleted = true
	e.UpdatedAt = m.now()
	m.entries[path] = e
	return nil
}

func (m *Memory) Lookup(ctx context.Context, path string) (*domain.CatalogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrEntryNotFound, path)
	}
	return &e, nil
}

func (m *Memory) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.entries {
		if !e.Deleted {
			n++
		}
	}
	return n, nil
}
