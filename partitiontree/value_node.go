package ptree

// Value-set bookkeeping for nodes of a ValuePartitionTree. A leaf carries the
// singleton of its value (empty when unset); an internal node carries a
// superset of every value below it. The superset may go stale after point
// writes, which only costs extra visits during pruned searches.

func valueSetOf[V Ordinal](p *ValueSet) (V, bool) {
	o, ok := p.Single()
	return V(o), ok
}

func inheritValue(parent, left, right *ValueSet) {
	if o, ok := parent.Single(); ok {
		left.Set(o)
		right.Set(o)
	}
}

func (t *ValuePartitionTree[V]) payload(id NodeID) *ValueSet {
	return &t.nodes.get(id).payload
}

// HasValue reports whether val may occur at or below id.
func (t *ValuePartitionTree[V]) HasValue(id NodeID, val V) bool {
	return t.payload(id).Has(uint8(val))
}

// ValueSet returns the tracked value set of id.
func (t *ValuePartitionTree[V]) ValueSet(id NodeID) ValueSet {
	return *t.payload(id)
}

// addValue widens id's set by val. Unset values are never tracked.
func (t *ValuePartitionTree[V]) addValue(id NodeID, val V, set bool) {
	if set {
		t.payload(id).Add(uint8(val))
	}
}

// setValue asserts val as the definitive value of id.
func (t *ValuePartitionTree[V]) setValue(id NodeID, val V, set bool) {
	if set {
		t.payload(id).Set(uint8(val))
		return
	}
	t.payload(id).Reset()
}

// holds reports whether leaf id holds exactly val (or is unset when set is
// false).
func (t *ValuePartitionTree[V]) holds(id NodeID, val V, set bool) bool {
	v, ok := t.ValueOf(id)
	if !set {
		return !ok
	}
	return ok && v == val
}
