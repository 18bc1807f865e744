// Package overlay pairs dense per-cell data with a partition tree that flags
// which cells matter, so sweeps touch only flagged cells.
package overlay

import (
	"fmt"

	ptree "BIPTree/partitiontree"
)

// Activity is the flag a grid keeps per cell. Unflagged cells are idle.
type Activity uint8

const (
	Active Activity = iota
	Dirty
)

func (a Activity) String() string {
	switch a {
	case Active:
		return "active"
	case Dirty:
		return "dirty"
	default:
		return fmt.Sprintf("activity(%d)", uint8(a))
	}
}

// ActivityGrid stores one T per cell in a dense row-major array and tracks
// active and dirty regions in a ValuePartitionTree.
type ActivityGrid[T any] struct {
	dims    []int
	strides []int
	values  []T
	flags   *ptree.ValuePartitionTree[Activity]
}

func NewActivityGrid[T any](dims []int, opts ...ptree.Option) (*ActivityGrid[T], error) {
	flags, err := ptree.NewValuePartitionTree[Activity](dims, opts...)
	if err != nil {
		return nil, err
	}
	strides := make([]int, len(dims))
	size := 1
	for k := len(dims) - 1; k >= 0; k-- {
		strides[k] = size
		size *= dims[k]
	}
	return &ActivityGrid[T]{
		dims:    append([]int(nil), dims...),
		strides: strides,
		values:  make([]T, size),
		flags:   flags,
	}, nil
}

// Flags exposes the activity tree.
func (g *ActivityGrid[T]) Flags() *ptree.ValuePartitionTree[Activity] {
	return g.flags
}

func (g *ActivityGrid[T]) offset(coords []int) int {
	off := 0
	for k, s := range g.strides {
		off += coords[k] * s
	}
	return off
}

// Value returns the stored value at coords.
func (g *ActivityGrid[T]) Value(coords []int) (T, bool) {
	if !g.flags.Contains(coords) {
		var zero T
		return zero, false
	}
	return g.values[g.offset(coords)], true
}

// Set stores v at coords and marks the cell dirty.
func (g *ActivityGrid[T]) Set(coords []int, v T) bool {
	if !g.flags.Contains(coords) {
		return false
	}
	g.values[g.offset(coords)] = v
	g.flags.Put(Dirty, coords)
	return true
}

// State returns the flag of a cell; ok is false for idle cells.
func (g *ActivityGrid[T]) State(coords []int) (Activity, bool) {
	return g.flags.Get(coords)
}

// Activate flags the rectangle [min, max] active.
func (g *ActivityGrid[T]) Activate(min, max []int) error {
	return g.flags.PutRange(Active, min, max)
}

// Deactivate returns the rectangle [min, max] to idle. Stored values are kept.
func (g *ActivityGrid[T]) Deactivate(min, max []int) error {
	return g.flags.RemoveRange(min, max)
}

// Each calls fn for every cell flagged state, stopping when fn returns
// false. coords is reused between calls.
func (g *ActivityGrid[T]) Each(state Activity, fn func(coords []int, v T) bool) {
	g.flags.ForEach(state, func(coords []int) bool {
		return fn(coords, g.values[g.offset(coords)])
	})
}

// Settle turns every dirty region active and returns how many cells changed.
func (g *ActivityGrid[T]) Settle() (uint64, error) {
	type region struct{ lo, hi []int }
	var dirty []region
	var cells uint64
	it := g.flags.Regions(Dirty)
	for it.Next() {
		dirty = append(dirty, region{it.Min(), it.Max()})
		cells += it.CellCount()
	}
	for _, r := range dirty {
		if err := g.flags.PutRange(Active, r.lo, r.hi); err != nil {
			return 0, err
		}
	}
	return cells, nil
}
