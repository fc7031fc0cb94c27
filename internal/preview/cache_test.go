package preview

import (
	"image"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/filecatalog/internal/metrics"
)

func key(path string) Key { return Key{Path: path} }

func entry(path string) *Entry {
	return &Entry{Path: path, Surface: image.NewRGBA(image.Rect(0, 0, 2, 2))}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewCache(2)
	c.Put(key("A"), entry("A"))
	c.Put(key("B"), entry("B"))
	c.Put(key("C"), entry("C"))

	assert.Equal(t, 2, c.Len())
	_, ok := c.Get(key("A"))
	assert.False(t, ok, "A was least recently used")

	_, ok = c.Get(key("B"))
	require.True(t, ok)
	c.Put(key("D"), entry("D"))

	_, ok = c.Get(key("C"))
	assert.False(t, ok, "getting B made C the oldest")
	_, ok = c.Get(key("B"))
	assert.True(t, ok)
	_, ok = c.Get(key("D"))
	assert.True(t, ok)
}

func TestCache_PutReplacesAndRefreshes(t *testing.T) {
	c := NewCache(2)
	c.Put(key("A"), entry("A"))
	c.Put(key("B"), entry("B"))

	replacement := entry("A2")
	c.Put(key("A"), replacement)
	c.Put(key("C"), entry("C"))

	got, ok := c.Get(key("A"))
	require.True(t, ok)
	assert.Same(t, replacement, got)
	_, ok = c.Get(key("B"))
	assert.False(t, ok)
}

func TestCache_ModeIsPartOfKey(t *testing.T) {
	c := NewCache(4)
	c.Put(Key{Path: "A", Mode: ViewMode{Display: DisplayFilm}}, entry("A"))

	_, ok := c.Get(Key{Path: "A"})
	assert.False(t, ok)
	_, ok = c.Get(Key{Path: "A", Mode: ViewMode{Display: DisplayFilm}})
	assert.True(t, ok)
}

func TestCache_Clear(t *testing.T) {
	c := NewCache(3)
	c.Put(key("A"), entry("A"))
	c.Put(key("B"), entry("B"))
	c.Clear()

	assert.Zero(t, c.Len())
	_, ok := c.Get(key("A"))
	assert.False(t, ok)
}

func TestCache_MinimumCapacity(t *testing.T) {
	c := NewCache(0)
	assert.Equal(t, 1, c.Capacity())

	c.Put(key("A"), entry("A"))
	c.Put(key("B"), entry("B"))
	assert.Equal(t, []Key{key("B")}, c.Keys())
}

func TestCache_EntriesGaugeSumsCaches(t *testing.T) {
	start := testutil.ToFloat64(metrics.PreviewCacheEntries)
	left, right := NewCache(2), NewCache(2)

	left.Put(key("A"), entry("A"))
	left.Put(key("B"), entry("B"))
	left.Put(key("C"), entry("C")) // evicts A
	right.Put(key("A"), entry("A"))
	right.Put(key("A"), entry("A"))
	assert.Equal(t, start+3, testutil.ToFloat64(metrics.PreviewCacheEntries))

	right.Clear()
	assert.Equal(t, start+2, testutil.ToFloat64(metrics.PreviewCacheEntries))
	left.Clear()
	assert.Equal(t, start, testutil.ToFloat64(metrics.PreviewCacheEntries))
}
