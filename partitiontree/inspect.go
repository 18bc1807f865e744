// Tree inspection for debugging.
// Use Dump(w) to print a level-by-level view of the regions and their values.

package ptree

import (
	"fmt"
	"io"
)

// Stats summarises the shape of a tree.
type Stats struct {
	Nodes      int
	Leaves     int
	Depth      int
	ArenaSlots int
	Cells      uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("nodes=%d leaves=%d depth=%d arena=%d cells=%s",
		s.Nodes, s.Leaves, s.Depth, s.ArenaSlots, FormatCells(s.Cells))
}

// Stats reports node counts and depth.
func (t *PartitionTree[P, V]) Stats() Stats {
	return Stats{
		Nodes:      t.NodeCount(),
		Leaves:     t.LeafCount(),
		Depth:      t.Depth(),
		ArenaSlots: t.nodes.Cap(),
		Cells:      t.CellCount(t.root),
	}
}

// Dump writes a human-readable, breadth-first listing of the tree to w.
func (t *ValuePartitionTree[V]) Dump(w io.Writer) error {
	return t.DumpFunc(w, func(v V) string { return fmt.Sprint(v) })
}

// DumpFunc is Dump with a caller-supplied value formatter.
func (t *ValuePartitionTree[V]) DumpFunc(w io.Writer, name func(V) string) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	p("Partition tree: dims=%v %s\n", t.dims, t.Stats())

	queue := []NodeID{t.root}
	level := 0
	for len(queue) > 0 {
		size := len(queue)
		p("  Level %d:\n", level)
		for i := 0; i < size; i++ {
			id := queue[i]
			n := t.nodes.get(id)
			if n.cutDim != leafCut {
				r := t.nodes.get(n.right)
				p("    [node %d] INTERNAL %v-%v cut=axis%d@%d values=%s\n",
					id, n.min, n.max, n.cutDim, r.min[n.cutDim]-1, n.payload)
				queue = append(queue, n.left, n.right)
				continue
			}
			cells := FormatCells(t.CellCount(id))
			if v, ok := t.ValueOf(id); ok {
				p("    [node %d] LEAF %v-%v value=%s cells=%s\n", id, n.min, n.max, name(v), cells)
			} else {
				p("    [node %d] LEAF %v-%v unset cells=%s\n", id, n.min, n.max, cells)
			}
		}
		queue = queue[size:]
		level++
	}
	return err
}
