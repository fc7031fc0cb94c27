package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/domain"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Lookup(ctx, "/photos/a.jpg")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound)

	require.NoError(t, s.Add(ctx, "/photos/a.jpg"))
	require.NoError(t, s.Add(ctx, "/photos/b.jpg"))
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, s.RenameEntry(ctx, "/photos/a.jpg", "/sorted/2024_a.jpg"))
	_, err = s.Lookup(ctx, "/photos/a.jpg")
	assert.ErrorIs(t, err, domain.ErrEntryNotFound, "old path is gone")

	e, err := s.Lookup(ctx, "/sorted/2024_a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/photos/a.jpg", e.Previous)
	assert.False(t, e.Deleted)
	assert.False(t, e.UpdatedAt.IsZero())

	require.NoError(t, s.DeleteEntry(ctx, "/photos/b.jpg"))
	e, err = s.Lookup(ctx, "/photos/b.jpg")
	require.NoError(t, err)
	assert.True(t, e.Deleted)

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, s.Add(ctx, "/photos/b.jpg"))
	e, err = s.Lookup(ctx, "/photos/b.jpg")
	require.NoError(t, err)
	assert.False(t, e.Deleted, "adding again revives the entry")
}

func TestMemory(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Initialize(""))
	defer s.Close()

	exerciseStore(t, s)
}
