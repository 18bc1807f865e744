package ptree

// Path compression after a point write. Starting at the written tile, every
// ancestor is checked for two shapes that can be collapsed:
//
//	merge:   both children are leaves holding val; the parent becomes the leaf.
//	rotate:  one child X is a val leaf, the other child Q is cut on the same
//	         axis and Q's child adjacent to X is a val leaf. X and that child
//	         are fused into one leaf and Q's far child moves up.
//
// Range writes end in COVER or TILE and never need this.

func (t *ValuePartitionTree[V]) compact(id NodeID, val V, set bool) {
	for p := t.Parent(id); p != NoNode; p = t.Parent(p) {
		for !t.mergeUniform(p, val, set) && t.rotate(p, val, set) {
		}
	}
}

func (t *ValuePartitionTree[V]) mergeUniform(p NodeID, val V, set bool) bool {
	if t.IsLeaf(p) {
		return false
	}
	l, r := t.Left(p), t.Right(p)
	if !t.IsLeaf(l) || !t.IsLeaf(r) || !t.holds(l, val, set) || !t.holds(r, val, set) {
		return false
	}
	t.merge(p)
	t.setValue(p, val, set)
	return true
}

func (t *ValuePartitionTree[V]) rotate(p NodeID, val V, set bool) bool {
	if t.IsLeaf(p) {
		return false
	}
	axis := t.CutDim(p)
	l, r := t.Left(p), t.Right(p)

	switch {
	case t.isValueLeaf(l, val, set) && t.sameAxis(r, axis) && t.isValueLeaf(t.Left(r), val, set):
		t.fuse(p, l, r, t.Left(r), t.Right(r), true, val, set)
		return true
	case t.isValueLeaf(r, val, set) && t.sameAxis(l, axis) && t.isValueLeaf(t.Right(l), val, set):
		t.fuse(p, r, l, t.Right(l), t.Left(l), false, val, set)
		return true
	}
	return false
}

func (t *ValuePartitionTree[V]) isValueLeaf(id NodeID, val V, set bool) bool {
	return t.IsLeaf(id) && t.holds(id, val, set)
}

func (t *ValuePartitionTree[V]) sameAxis(id NodeID, axis int) bool {
	return !t.IsLeaf(id) && t.CutDim(id) == axis
}

// fuse replaces p's children: leaf x and internal q (whose child near abuts x)
// become a single leaf spanning x and near, next to q's other child far.
// xLeft says whether x was p's left child.
func (t *ValuePartitionTree[V]) fuse(p, x, q, near, far NodeID, xLeft bool, val V, set bool) {
	var lo, hi []int
	if xLeft {
		lo, hi = t.nodes.get(x).min, t.nodes.get(near).max
	} else {
		lo, hi = t.nodes.get(near).min, t.nodes.get(x).max
	}
	fused := t.nodes.Allocate(lo, hi)
	t.setValue(fused, val, set)

	t.nodes.get(fused).parent = p
	t.nodes.get(far).parent = p
	n := t.nodes.get(p)
	if xLeft {
		n.left, n.right = fused, far
	} else {
		n.left, n.right = far, fused
	}

	t.nodes.Release(x)
	t.nodes.Release(near)
	t.nodes.Release(q)
	nodeRotations.Inc()
}
