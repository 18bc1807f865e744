package ptree

import "fmt"

// NodeArena is an index-addressed slab of tree nodes. Released slots go on a
// free list and are handed out again, coordinate slices included, by later
// allocations.
type NodeArena[P any] struct {
	nodes []node[P]
	free  []NodeID
	order int
	live  int
}

func NewNodeArena[P any](order, capacity int) *NodeArena[P] {
	return &NodeArena[P]{
		nodes: make([]node[P], 0, capacity),
		free:  make([]NodeID, 0, capacity/2),
		order: order,
	}
}

// Allocate returns a fresh leaf spanning [min, max]. The bounds are copied.
func (a *NodeArena[P]) Allocate(min, max []int) NodeID {
	var id NodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		id = NodeID(len(a.nodes))
		a.nodes = append(a.nodes, node[P]{
			min: make([]int, a.order),
			max: make([]int, a.order),
		})
	}

	n := &a.nodes[id]
	copy(n.min, min[:a.order])
	copy(n.max, max[:a.order])
	n.cutDim = leafCut
	n.left = NoNode
	n.right = NoNode
	n.parent = NoNode
	n.live = true
	var zero P
	n.payload = zero
	a.live++
	return id
}

// Release returns a single slot to the free list. Children are not touched.
func (a *NodeArena[P]) Release(id NodeID) {
	n := a.get(id)
	n.live = false
	n.left = NoNode
	n.right = NoNode
	n.parent = NoNode
	a.free = append(a.free, id)
	a.live--
}

// ReleaseSubtree frees id and every node below it.
func (a *NodeArena[P]) ReleaseSubtree(id NodeID) {
	stack := []NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := a.get(cur)
		if n.left != NoNode {
			stack = append(stack, n.left, n.right)
		}
		a.Release(cur)
	}
}

// Reset drops every node but keeps the backing storage.
func (a *NodeArena[P]) Reset() {
	a.free = a.free[:0]
	for i := len(a.nodes) - 1; i >= 0; i-- {
		a.nodes[i].live = false
		a.free = append(a.free, NodeID(i))
	}
	a.live = 0
}

// Live is the number of allocated nodes.
func (a *NodeArena[P]) Live() int {
	return a.live
}

// Cap is the number of slots ever created.
func (a *NodeArena[P]) Cap() int {
	return len(a.nodes)
}

func (a *NodeArena[P]) get(id NodeID) *node[P] {
	if int(id) >= len(a.nodes) || !a.nodes[id].live {
		panic(fmt.Errorf("%w: %d", ErrUnknownNode, id))
	}
	return &a.nodes[id]
}
