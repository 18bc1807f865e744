// Structure of a Binary Index Partition Tree
/*
Tree
 ├── Internal Node (region + cut axis, two children)
 │      └── Child Internal Nodes ...
 │             └── Leaf Nodes (region with one uniform value, or unset)


- every node owns a hyper-rectangle [min, max] of the integer grid
- internal nodes: children split the region on cutDim, left <= cut < right
- leaf nodes: cutDim == -1, no children
- a tile is a region of exactly one cell and is never split
- nodes live in an arena and are addressed by NodeID

*/
package ptree

import (
	"log/slog"
)

// NodeID addresses a node slot in the arena.
type NodeID uint32

// NoNode marks an absent child or parent.
const NoNode = ^NodeID(0)

const leafCut = -1

type node[P any] struct {
	min     []int
	max     []int
	cutDim  int
	left    NodeID
	right   NodeID
	parent  NodeID
	live    bool
	payload P
}

// Hooks let a specialisation attach its own value representation to the
// region-splitting skeleton.
type Hooks[P any, V any] struct {
	// ValueOf extracts the definitive value of a leaf.
	ValueOf func(p *P) (V, bool)
	// Split runs after a leaf has been split into left and right.
	Split func(parent, left, right *P)
}

// PartitionTree is the region-splitting skeleton shared by all value
// strategies. P is the per-node payload, V the value type it exposes.
type PartitionTree[P any, V any] struct {
	dims    []int
	nodes   *NodeArena[P]
	root    NodeID
	hooks   Hooks[P, V]
	logger  *slog.Logger
	version uint64
}

// Option configures a tree at construction.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	capacity int
}

// WithLogger routes tree diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity preallocates room for n nodes in the arena.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}
