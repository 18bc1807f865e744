package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ptree "BIPTree/partitiontree"
)

type shade uint8

const (
	light shade = iota
	dark
)

func newShadeCache(t *testing.T, dims ...int) (*ptree.ValuePartitionTree[shade], *LookupCache[shade]) {
	t.Helper()
	tree, err := ptree.NewValuePartitionTree[shade](dims)
	require.NoError(t, err)
	c, err := NewLookupCache(tree, 128)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return tree, c
}

func TestLookupCacheHit(t *testing.T) {
	tree, c := newShadeCache(t, 4, 4)
	require.NoError(t, tree.PutRange(dark, []int{0, 0}, []int{1, 1}))

	v, ok := c.Get([]int{1, 1})
	require.True(t, ok)
	assert.Equal(t, dark, v)
	c.Wait()

	v, ok = c.Get([]int{1, 1})
	require.True(t, ok)
	assert.Equal(t, dark, v)

	hits, misses := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
}

func TestLookupCacheSeesWrites(t *testing.T) {
	tree, c := newShadeCache(t, 8)
	tree.Fill(light)

	v, ok := c.Get([]int{3})
	require.True(t, ok)
	assert.Equal(t, light, v)
	c.Wait()

	tree.Put(dark, []int{3})
	v, ok = c.Get([]int{3})
	require.True(t, ok)
	assert.Equal(t, dark, v)

	tree.Remove([]int{3})
	_, ok = c.Get([]int{3})
	assert.False(t, ok)

	_, misses := c.Stats()
	assert.Equal(t, uint64(3), misses)
}

func TestLookupCacheOutOfRange(t *testing.T) {
	_, c := newShadeCache(t, 2, 2)
	_, ok := c.Get([]int{2, 0})
	assert.False(t, ok)
	_, ok = c.Get([]int{0})
	assert.False(t, ok)

	hits, misses := c.Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

func TestLookupCacheTrailingZeros(t *testing.T) {
	tree, c := newShadeCache(t, 3)
	tree.Put(dark, []int{2})

	v, ok := c.Get([]int{2, 0, 0})
	require.True(t, ok)
	assert.Equal(t, dark, v)
	c.Wait()

	v, ok = c.Get([]int{2})
	require.True(t, ok)
	assert.Equal(t, dark, v)
	hits, _ := c.Stats()
	assert.Equal(t, uint64(1), hits)
}
