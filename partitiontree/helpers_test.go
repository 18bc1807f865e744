package ptree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type color uint8

const (
	red color = iota
	green
	blue
	amber
)

func (c color) String() string {
	switch c {
	case red:
		return "RED"
	case green:
		return "GREEN"
	case blue:
		return "BLUE"
	case amber:
		return "AMBER"
	default:
		return "?"
	}
}

type cell struct {
	val color
	set bool
}

// denseGrid is the reference model the tree is checked against.
type denseGrid struct {
	dims  []int
	cells []cell
}

func newDenseGrid(dims ...int) *denseGrid {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return &denseGrid{dims: dims, cells: make([]cell, n)}
}

func (g *denseGrid) index(coords []int) int {
	idx := 0
	for k, d := range g.dims {
		idx = idx*d + coords[k]
	}
	return idx
}

func (g *denseGrid) writeRange(c cell, min, max []int) {
	g.each(func(coords []int) {
		for k := range g.dims {
			if coords[k] < min[k] || coords[k] > max[k] {
				return
			}
		}
		g.cells[g.index(coords)] = c
	})
}

func (g *denseGrid) each(fn func(coords []int)) {
	coords := make([]int, len(g.dims))
	for i := range g.cells {
		rem := i
		for k := len(g.dims) - 1; k >= 0; k-- {
			coords[k] = rem % g.dims[k]
			rem /= g.dims[k]
		}
		fn(coords)
	}
}

func requireMatches(t *testing.T, g *denseGrid, tree *ValuePartitionTree[color]) {
	t.Helper()
	g.each(func(coords []int) {
		want := g.cells[g.index(coords)]
		v, ok := tree.Get(coords)
		require.Equal(t, want.set, ok, "set-ness at %v", coords)
		if ok {
			require.Equal(t, want.val, v, "value at %v", coords)
		}
	})
}

// requireWellFormed checks region partitioning, parent links, leaf value
// sets, and that every internal value set covers the leaves below it.
func requireWellFormed(t *testing.T, tree *ValuePartitionTree[color]) {
	t.Helper()
	var visit func(id NodeID) ValueSet
	visit = func(id NodeID) ValueSet {
		set := tree.ValueSet(id)
		if tree.IsLeaf(id) {
			require.Equal(t, -1, tree.CutDim(id))
			require.Equal(t, NoNode, tree.Left(id))
			require.Equal(t, NoNode, tree.Right(id))
			require.LessOrEqual(t, set.Len(), 1, "leaf %d value set %s", id, set)
			return set
		}
		l, r := tree.Left(id), tree.Right(id)
		require.Equal(t, id, tree.Parent(l))
		require.Equal(t, id, tree.Parent(r))

		axis := tree.CutDim(id)
		lMin, lMax, rMin, rMax := tree.Min(l), tree.Max(l), tree.Min(r), tree.Max(r)
		require.Equal(t, tree.Min(id), lMin)
		require.Equal(t, tree.Max(id), rMax)
		require.Equal(t, lMax[axis]+1, rMin[axis])
		for k := range lMin {
			if k == axis {
				continue
			}
			require.Equal(t, lMin[k], rMin[k])
			require.Equal(t, lMax[k], rMax[k])
		}

		below := visit(l)
		below.Union(visit(r))
		for _, m := range below.Members() {
			require.True(t, set.Has(m), "node %d set %s misses %d", id, set, m)
		}
		return below
	}
	visit(tree.Root())
	require.Equal(t, NoNode, tree.Parent(tree.Root()))
}

func newColorTree(t *testing.T, dims ...int) *ValuePartitionTree[color] {
	t.Helper()
	tree, err := NewValuePartitionTree[color](dims)
	require.NoError(t, err)
	return tree
}
