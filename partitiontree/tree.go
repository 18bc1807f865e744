package ptree

import "log/slog"

// NewPartitionTree builds a tree over a grid with the given extents. The root
// is a single leaf spanning the whole domain.
func NewPartitionTree[P any, V any](dims []int, hooks Hooks[P, V], opts ...Option) (*PartitionTree[P, V], error) {
	if len(dims) == 0 {
		return nil, ErrNoDimensions
	}
	for _, d := range dims {
		if d <= 0 {
			return nil, ErrBadDimension
		}
	}

	o := options{logger: slog.Default(), capacity: 64}
	for _, opt := range opts {
		opt(&o)
	}

	t := &PartitionTree[P, V]{
		dims:   append([]int(nil), dims...),
		nodes:  NewNodeArena[P](len(dims), o.capacity),
		hooks:  hooks,
		logger: o.logger,
	}
	t.root = t.newRoot()
	return t, nil
}

func (t *PartitionTree[P, V]) newRoot() NodeID {
	hi := make([]int, len(t.dims))
	for k, d := range t.dims {
		hi[k] = d - 1
	}
	return t.nodes.Allocate(make([]int, len(t.dims)), hi)
}

// Order is the number of dimensions.
func (t *PartitionTree[P, V]) Order() int {
	return len(t.dims)
}

// Dimensions returns a copy of the grid extents.
func (t *PartitionTree[P, V]) Dimensions() []int {
	return append([]int(nil), t.dims...)
}

// Root is the node spanning the whole domain.
func (t *PartitionTree[P, V]) Root() NodeID {
	return t.root
}

// Version changes on every mutation.
func (t *PartitionTree[P, V]) Version() uint64 {
	return t.version
}

func (t *PartitionTree[P, V]) touch() {
	t.version++
}

// Contains reports whether coords address a cell of the grid. Entries past
// Order() must be zero.
func (t *PartitionTree[P, V]) Contains(coords []int) bool {
	if len(coords) < len(t.dims) {
		return false
	}
	for k, c := range coords {
		if k >= len(t.dims) {
			if c != 0 {
				return false
			}
			continue
		}
		if c < 0 || c >= t.dims[k] {
			return false
		}
	}
	return true
}

// NodeAt returns the leaf holding coords.
func (t *PartitionTree[P, V]) NodeAt(coords []int) (NodeID, bool) {
	if !t.Contains(coords) {
		return NoNode, false
	}
	return t.descend(coords), true
}

func (t *PartitionTree[P, V]) descend(coords []int) NodeID {
	id := t.root
	for !t.IsLeaf(id) {
		id = t.Child(id, coords)
	}
	return id
}

// ValueOf extracts the value a leaf holds.
func (t *PartitionTree[P, V]) ValueOf(id NodeID) (V, bool) {
	return t.hooks.ValueOf(&t.nodes.get(id).payload)
}

// Get returns the value at coords. Out-of-range coordinates are absent.
func (t *PartitionTree[P, V]) Get(coords []int) (V, bool) {
	if !t.Contains(coords) {
		var zero V
		return zero, false
	}
	return t.ValueOf(t.descend(coords))
}

// Clear discards every node and rebuilds a single root leaf.
func (t *PartitionTree[P, V]) Clear() {
	t.nodes.Reset()
	t.root = t.newRoot()
	t.touch()
	t.logger.Debug("partition tree cleared", slog.Any("dims", t.dims))
}

// NodeCount is the number of live nodes.
func (t *PartitionTree[P, V]) NodeCount() int {
	return t.nodes.Live()
}

// LeafCount is the number of leaves.
func (t *PartitionTree[P, V]) LeafCount() int {
	// A full binary tree has one more leaf than it has internal nodes.
	return (t.nodes.Live() + 1) / 2
}

// Depth is the length of the longest root-to-leaf path, 0 for a lone root.
func (t *PartitionTree[P, V]) Depth() int {
	deepest := 0
	t.Walk(func(id NodeID, depth int) bool {
		if depth > deepest {
			deepest = depth
		}
		return true
	})
	return deepest
}

// Walk visits nodes in pre-order. Returning false from fn skips the
// children of that node.
func (t *PartitionTree[P, V]) Walk(fn func(id NodeID, depth int) bool) {
	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.id, f.depth) {
			continue
		}
		n := t.nodes.get(f.id)
		if n.cutDim != leafCut {
			stack = append(stack, frame{n.right, f.depth + 1}, frame{n.left, f.depth + 1})
		}
	}
}
