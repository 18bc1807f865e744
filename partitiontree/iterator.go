package ptree

// RegionIterator walks the leaves holding one value, left to right, skipping
// every subtree whose value set rules the value out. It stops early if the
// tree is modified.
type RegionIterator[V Ordinal] struct {
	tree    *ValuePartitionTree[V]
	val     V
	stack   []NodeID
	leaf    NodeID
	version uint64
}

// Regions starts a pruned walk over the leaves holding val.
func (t *ValuePartitionTree[V]) Regions(val V) *RegionIterator[V] {
	it := &RegionIterator[V]{
		tree:    t,
		val:     val,
		leaf:    NoNode,
		version: t.version,
	}
	if t.HasValue(t.root, val) {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// Next advances to the next region. Returns false when exhausted.
func (it *RegionIterator[V]) Next() bool {
	t := it.tree
	if it.version != t.version {
		it.stack = it.stack[:0]
	}
	for len(it.stack) > 0 {
		id := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if !t.HasValue(id, it.val) {
			continue
		}
		if t.IsLeaf(id) {
			it.leaf = id
			return true
		}
		it.stack = append(it.stack, t.Right(id), t.Left(id))
	}
	it.leaf = NoNode
	return false
}

// Node returns the current leaf.
func (it *RegionIterator[V]) Node() NodeID {
	return it.leaf
}

// Min returns the lowest corner of the current region.
func (it *RegionIterator[V]) Min() []int {
	if it.leaf == NoNode {
		return nil
	}
	return it.tree.Min(it.leaf)
}

// Max returns the highest corner of the current region.
func (it *RegionIterator[V]) Max() []int {
	if it.leaf == NoNode {
		return nil
	}
	return it.tree.Max(it.leaf)
}

// CellCount is the number of cells in the current region.
func (it *RegionIterator[V]) CellCount() uint64 {
	if it.leaf == NoNode {
		return 0
	}
	return it.tree.CellCount(it.leaf)
}

// CellIterator visits every cell holding one value, region by region. Within
// a region the last axis varies fastest.
type CellIterator[V Ordinal] struct {
	regions *RegionIterator[V]
	lo, hi  []int
	cur     []int
}

// Coordinates starts a pruned walk over the cells holding val.
func (t *ValuePartitionTree[V]) Coordinates(val V) *CellIterator[V] {
	return &CellIterator[V]{regions: t.Regions(val)}
}

// Next advances to the next cell. Returns false when exhausted.
func (it *CellIterator[V]) Next() bool {
	if it.cur != nil && it.step() {
		return true
	}
	if !it.regions.Next() {
		it.cur = nil
		return false
	}
	it.lo, it.hi = it.regions.Min(), it.regions.Max()
	it.cur = append(it.cur[:0], it.lo...)
	return true
}

// Coords returns the current cell. The slice is reused by Next.
func (it *CellIterator[V]) Coords() []int {
	return it.cur
}

func (it *CellIterator[V]) step() bool {
	for k := len(it.cur) - 1; k >= 0; k-- {
		if it.cur[k] < it.hi[k] {
			it.cur[k]++
			return true
		}
		it.cur[k] = it.lo[k]
	}
	return false
}

// ForEach calls fn for every cell holding val until fn returns false.
func (t *ValuePartitionTree[V]) ForEach(val V, fn func(coords []int) bool) {
	it := t.Coordinates(val)
	for it.Next() {
		if !fn(it.Coords()) {
			return
		}
	}
}

// Count is the number of cells holding val.
func (t *ValuePartitionTree[V]) Count(val V) uint64 {
	var cells uint64
	it := t.Regions(val)
	for it.Next() {
		cells = addCells(cells, it.CellCount())
	}
	return cells
}
