package ptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsSkipsOtherValues(t *testing.T) {
	tree := newColorTree(t, 8, 8)
	require.NoError(t, tree.PutRange(red, []int{0, 0}, []int{1, 7}))
	require.NoError(t, tree.PutRange(blue, []int{4, 4}, []int{5, 5}))
	require.NoError(t, tree.PutRange(red, []int{7, 0}, []int{7, 0}))

	var cells uint64
	regions := 0
	it := tree.Regions(red)
	for it.Next() {
		v, ok := tree.ValueOf(it.Node())
		require.True(t, ok)
		assert.Equal(t, red, v)
		cells += it.CellCount()
		regions++
	}
	assert.Equal(t, uint64(17), cells)
	assert.GreaterOrEqual(t, regions, 2)
	assert.False(t, it.Next())
	assert.Nil(t, it.Min())
}

func TestCoordinatesVisitsEveryCell(t *testing.T) {
	tree := newColorTree(t, 4, 3, 2)
	require.NoError(t, tree.PutRange(green, []int{1, 0, 0}, []int{2, 2, 1}))
	tree.Put(green, []int{3, 0, 1})

	seen := map[[3]int]bool{}
	it := tree.Coordinates(green)
	for it.Next() {
		c := it.Coords()
		key := [3]int{c[0], c[1], c[2]}
		assert.False(t, seen[key], "visited %v twice", c)
		seen[key] = true
		v, ok := tree.Get(c)
		require.True(t, ok)
		assert.Equal(t, green, v)
	}
	assert.Len(t, seen, 13)
	assert.Equal(t, uint64(13), tree.Count(green))
}

func TestForEachStopsEarly(t *testing.T) {
	tree := newColorTree(t, 10)
	tree.Fill(amber)

	visited := 0
	tree.ForEach(amber, func(coords []int) bool {
		visited++
		return visited < 3
	})
	assert.Equal(t, 3, visited)
}

func TestIteratorStopsAfterMutation(t *testing.T) {
	tree := newColorTree(t, 10)
	require.NoError(t, tree.PutRange(red, []int{0}, []int{1}))
	require.NoError(t, tree.PutRange(red, []int{5}, []int{6}))

	it := tree.Regions(red)
	require.True(t, it.Next())
	tree.Put(blue, []int{9})
	assert.False(t, it.Next())
}

func TestRegionsLeftToRight(t *testing.T) {
	tree := newColorTree(t, 12)
	for _, x := range []int{9, 1, 5} {
		tree.Put(red, []int{x})
	}
	var mins []int
	it := tree.Regions(red)
	for it.Next() {
		mins = append(mins, it.Min()[0])
	}
	assert.Equal(t, []int{1, 5, 9}, mins)

	at, ok := tree.IndexOf(red)
	require.True(t, ok)
	assert.Equal(t, []int{1}, at)
}
