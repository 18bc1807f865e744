package ptree

import "log/slog"

// ValuePartitionTree maps every cell of an n-dimensional grid to a value of a
// small enumeration V, or leaves it unset. Regions of equal value share one
// leaf; internal nodes track which values occur below them so searches for a
// value skip subtrees that cannot hold it.
//
// Not safe for concurrent use.
type ValuePartitionTree[V Ordinal] struct {
	*PartitionTree[ValueSet, V]
	queue *nodeQueue
}

type writeClass int

const (
	writeEmpty writeClass = iota
	writeCover
	writeTile
	writePartial
)

func (c writeClass) String() string {
	switch c {
	case writeEmpty:
		return "EMPTY"
	case writeCover:
		return "COVER"
	case writeTile:
		return "TILE"
	case writePartial:
		return "PARTIAL"
	default:
		return "UNKNOWN"
	}
}

// NewValuePartitionTree builds an all-unset tree over dims.
func NewValuePartitionTree[V Ordinal](dims []int, opts ...Option) (*ValuePartitionTree[V], error) {
	base, err := NewPartitionTree[ValueSet, V](dims, Hooks[ValueSet, V]{
		ValueOf: valueSetOf[V],
		Split:   inheritValue,
	}, opts...)
	if err != nil {
		return nil, err
	}
	return &ValuePartitionTree[V]{
		PartitionTree: base,
		queue:         newNodeQueue(16),
	}, nil
}

// Put writes val at coords and returns the previous value.
func (t *ValuePartitionTree[V]) Put(val V, coords []int) (V, bool) {
	return t.writePoint(val, true, coords)
}

// Remove unsets coords and returns the previous value.
func (t *ValuePartitionTree[V]) Remove(coords []int) (V, bool) {
	var zero V
	return t.writePoint(zero, false, coords)
}

// PutRange writes val to every cell of the rectangle [min, max]. Parts of the
// rectangle outside the grid are ignored.
func (t *ValuePartitionTree[V]) PutRange(val V, min, max []int) error {
	return t.writeRange(val, true, min, max)
}

// RemoveRange unsets every cell of the rectangle [min, max].
func (t *ValuePartitionTree[V]) RemoveRange(min, max []int) error {
	var zero V
	return t.writeRange(zero, false, min, max)
}

// Fill resets the tree to a single leaf holding val.
func (t *ValuePartitionTree[V]) Fill(val V) {
	t.PartitionTree.Clear()
	t.setValue(t.root, val, true)
	t.logger.Debug("partition tree filled", slog.Any("value", val))
}

// IndexOf returns the lowest corner of some region holding val.
func (t *ValuePartitionTree[V]) IndexOf(val V) ([]int, bool) {
	it := t.Regions(val)
	if !it.Next() {
		return nil, false
	}
	return it.Min(), true
}

func (t *ValuePartitionTree[V]) classify(id NodeID, qMin, qMax []int) writeClass {
	n := t.nodes.get(id)
	cover := true
	for k := range n.min {
		if qMax[k] < n.min[k] || qMin[k] > n.max[k] {
			return writeEmpty
		}
		if qMin[k] > n.min[k] || qMax[k] < n.max[k] {
			cover = false
		}
	}
	if cover {
		return writeCover
	}
	if t.IsTile(id) {
		return writeTile
	}
	return writePartial
}

func (t *ValuePartitionTree[V]) writeRange(val V, set bool, qMin, qMax []int) error {
	order := t.Order()
	if len(qMin) < order || len(qMax) < order {
		return ErrRank
	}
	for k := 0; k < order; k++ {
		if qMin[k] > qMax[k] {
			return nil
		}
	}
	if t.classify(t.root, qMin, qMax) == writeEmpty {
		return nil
	}
	rangeWrites.WithLabelValues(opLabel(set)).Inc()
	t.touch()

	q := t.queue
	q.reset()
	q.push(t.root)
	for {
		id, ok := q.pop()
		if !ok {
			break
		}
		switch t.classify(id, qMin, qMax) {
		case writeEmpty:
		case writeCover:
			t.merge(id)
			t.setValue(id, val, set)
		case writeTile:
			t.setValue(id, val, set)
		case writePartial:
			if !t.IsLeaf(id) {
				t.addValue(id, val, set)
				q.push(t.Left(id))
				q.push(t.Right(id))
				continue
			}
			if t.holds(id, val, set) {
				continue
			}
			left, right := t.split(id, qMin, qMax)
			t.addValue(id, val, set)
			q.push(left)
			q.push(right)
		}
	}
	return nil
}

func (t *ValuePartitionTree[V]) writePoint(val V, set bool, coords []int) (prev V, had bool) {
	if !t.Contains(coords) {
		return prev, false
	}
	pointWrites.WithLabelValues(opLabel(set)).Inc()

	id := t.root
	for !t.IsLeaf(id) {
		t.addValue(id, val, set)
		id = t.Child(id, coords)
	}
	prev, had = t.ValueOf(id)
	if t.holds(id, val, set) {
		return prev, had
	}
	t.touch()

	for !t.IsTile(id) {
		t.split(id, coords, coords)
		t.addValue(id, val, set)
		id = t.Child(id, coords)
	}
	t.setValue(id, val, set)
	t.compact(id, val, set)
	return prev, had
}

func opLabel(set bool) string {
	if set {
		return "put"
	}
	return "remove"
}
