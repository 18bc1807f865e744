package ptree

import (
	"fmt"
	"log/slog"
	"math"
	"math/big"
	"math/bits"

	"github.com/dustin/go-humanize"
)

// IsLeaf reports whether id has no children.
func (t *PartitionTree[P, V]) IsLeaf(id NodeID) bool {
	return t.nodes.get(id).cutDim == leafCut
}

// IsTile reports whether id spans exactly one cell.
func (t *PartitionTree[P, V]) IsTile(id NodeID) bool {
	n := t.nodes.get(id)
	for k := range n.min {
		if n.min[k] != n.max[k] {
			return false
		}
	}
	return true
}

// Min returns a copy of the lowest corner of id's region.
func (t *PartitionTree[P, V]) Min(id NodeID) []int {
	return append([]int(nil), t.nodes.get(id).min...)
}

// Max returns a copy of the highest corner of id's region.
func (t *PartitionTree[P, V]) Max(id NodeID) []int {
	return append([]int(nil), t.nodes.get(id).max...)
}

// CutDim is the split axis of an internal node, -1 for a leaf.
func (t *PartitionTree[P, V]) CutDim(id NodeID) int {
	return t.nodes.get(id).cutDim
}

func (t *PartitionTree[P, V]) Left(id NodeID) NodeID   { return t.nodes.get(id).left }
func (t *PartitionTree[P, V]) Right(id NodeID) NodeID  { return t.nodes.get(id).right }
func (t *PartitionTree[P, V]) Parent(id NodeID) NodeID { return t.nodes.get(id).parent }

// Child picks the branch of internal node id that contains coords.
func (t *PartitionTree[P, V]) Child(id NodeID, coords []int) NodeID {
	n := t.nodes.get(id)
	r := t.nodes.get(n.right)
	if coords[n.cutDim] >= r.min[n.cutDim] {
		return n.right
	}
	return n.left
}

// CellCount is the number of grid cells covered by id, saturating at
// math.MaxUint64.
func (t *PartitionTree[P, V]) CellCount(id NodeID) uint64 {
	n := t.nodes.get(id)
	cells := uint64(1)
	for k := range n.min {
		hi, lo := bits.Mul64(cells, uint64(n.max[k]-n.min[k])+1)
		if hi != 0 {
			return math.MaxUint64
		}
		cells = lo
	}
	return cells
}

// addCells sums cell counts, saturating at math.MaxUint64.
func addCells(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// FormatCells renders a cell count with thousands separators.
func FormatCells(n uint64) string {
	return humanize.BigComma(new(big.Int).SetUint64(n))
}

// split divides leaf id around the query rectangle [qMin, qMax] and returns
// the two new children.
func (t *PartitionTree[P, V]) split(id NodeID, qMin, qMax []int) (NodeID, NodeID) {
	n := t.nodes.get(id)
	if n.cutDim != leafCut {
		t.invariant("split of internal node", id)
	}
	if t.IsTile(id) {
		t.invariant("split of a tile", id)
	}
	axis, cut, ok := Advise(n.min, n.max, qMin, qMax, t.Order())
	if !ok {
		t.invariant("split without a usable cut", id)
	}
	return t.splitAt(id, axis, cut)
}

// splitAt divides leaf id on axis so that the left child ends at cut.
func (t *PartitionTree[P, V]) splitAt(id NodeID, axis, cut int) (NodeID, NodeID) {
	n := t.nodes.get(id)
	if n.min[axis] > cut || cut >= n.max[axis] {
		t.invariant("cut outside region", id)
	}

	// Scratch bounds for the two halves; Allocate copies them.
	lMax := append([]int(nil), n.max...)
	lMax[axis] = cut
	rMin := append([]int(nil), n.min...)
	rMin[axis] = cut + 1
	pMin, pMax := n.min, n.max

	left := t.nodes.Allocate(pMin, lMax)
	right := t.nodes.Allocate(rMin, pMax)

	// Allocate may have grown the slab; fetch pointers afresh.
	n = t.nodes.get(id)
	l, r := t.nodes.get(left), t.nodes.get(right)
	l.parent, r.parent = id, id
	n.left, n.right = left, right
	n.cutDim = axis
	if t.hooks.Split != nil {
		t.hooks.Split(&n.payload, &l.payload, &r.payload)
	}
	nodeSplits.Inc()
	return left, right
}

// merge drops the subtree below id; id becomes a leaf over its unchanged
// region. Payload handling is left to the caller.
func (t *PartitionTree[P, V]) merge(id NodeID) {
	n := t.nodes.get(id)
	if n.cutDim == leafCut {
		return
	}
	left, right := n.left, n.right
	n.left, n.right = NoNode, NoNode
	n.cutDim = leafCut
	t.nodes.ReleaseSubtree(left)
	t.nodes.ReleaseSubtree(right)
	nodeMerges.Inc()
}

func (t *PartitionTree[P, V]) invariant(msg string, id NodeID) {
	n := t.nodes.get(id)
	t.logger.Error("partition tree invariant violated",
		slog.String("reason", msg),
		slog.Int("node", int(id)),
		slog.Any("min", n.min),
		slog.Any("max", n.max),
	)
	panic(fmt.Errorf("%w: %s (node %d)", ErrInvalidSplit, msg, id))
}
