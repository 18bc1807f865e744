package script

import (
	"fmt"
	"io"
	"log/slog"

	ptree "BIPTree/partitiontree"
)

// Runner applies ops to a tree of palette labels and reports each result on
// out, one line per op.
type Runner struct {
	palette *Palette
	tree    *ptree.ValuePartitionTree[Label]
	out     io.Writer
	logger  *slog.Logger
}

func NewRunner(dims []int, palette *Palette, out io.Writer, logger *slog.Logger) (*Runner, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Runner{palette: palette, out: out, logger: logger}
	if err := r.resize(dims); err != nil {
		return nil, err
	}
	return r, nil
}

// RunScript builds a runner for s and applies all of its ops.
func RunScript(s *Script, out io.Writer, logger *slog.Logger) (*Runner, error) {
	palette, err := NewPalette(s.Values)
	if err != nil {
		return nil, err
	}
	r, err := NewRunner(s.Dimensions, palette, out, logger)
	if err != nil {
		return nil, err
	}
	return r, r.Run(s.Ops)
}

func (r *Runner) Tree() *ptree.ValuePartitionTree[Label] {
	return r.tree
}

func (r *Runner) Palette() *Palette {
	return r.palette
}

// Run applies ops in order and stops at the first failure.
func (r *Runner) Run(ops []Op) error {
	for i, op := range ops {
		if err := r.Apply(op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	r.logger.Debug("workload finished",
		slog.Int("ops", len(ops)),
		slog.String("tree", r.tree.Stats().String()),
	)
	return nil
}

// Apply runs a single op.
func (r *Runner) Apply(op Op) error {
	if err := op.Validate(); err != nil {
		return err
	}
	r.logger.Debug("apply", slog.String("op", op.Op), slog.String("value", op.Value))

	switch op.Op {
	case OpPut:
		label, err := r.palette.Lookup(op.Value)
		if err != nil {
			return err
		}
		if op.At == nil {
			if err := r.tree.PutRange(label, op.Min, op.Max); err != nil {
				return err
			}
			r.printf("put %v-%v = %s\n", op.Min, op.Max, r.palette.Name(label))
			return nil
		}
		if !r.tree.Contains(op.At) {
			r.printf("put %v: out of range\n", op.At)
			return nil
		}
		prev, had := r.tree.Put(label, op.At)
		r.printf("put %v = %s (was %s)\n", op.At, r.palette.Name(label), r.describe(prev, had))

	case OpRemove:
		if op.At == nil {
			if err := r.tree.RemoveRange(op.Min, op.Max); err != nil {
				return err
			}
			r.printf("remove %v-%v\n", op.Min, op.Max)
			return nil
		}
		if !r.tree.Contains(op.At) {
			r.printf("remove %v: out of range\n", op.At)
			return nil
		}
		prev, had := r.tree.Remove(op.At)
		r.printf("remove %v (was %s)\n", op.At, r.describe(prev, had))

	case OpGet:
		if !r.tree.Contains(op.At) {
			r.printf("get %v: out of range\n", op.At)
			return nil
		}
		v, ok := r.tree.Get(op.At)
		r.printf("get %v = %s\n", op.At, r.describe(v, ok))

	case OpFill:
		label, err := r.palette.Lookup(op.Value)
		if err != nil {
			return err
		}
		r.tree.Fill(label)
		r.printf("fill %s\n", r.palette.Name(label))

	case OpClear:
		r.tree.Clear()
		r.printf("clear\n")

	case OpIndexOf:
		label, err := r.palette.Lookup(op.Value)
		if err != nil {
			return err
		}
		if at, ok := r.tree.IndexOf(label); ok {
			r.printf("indexof %s = %v\n", r.palette.Name(label), at)
		} else {
			r.printf("indexof %s: not found\n", r.palette.Name(label))
		}

	case OpCount:
		label, err := r.palette.Lookup(op.Value)
		if err != nil {
			return err
		}
		r.printf("count %s = %s\n", r.palette.Name(label), ptree.FormatCells(r.tree.Count(label)))

	case OpDump:
		return r.tree.DumpFunc(r.out, r.palette.Name)

	case OpDims:
		if err := r.resize(op.Dims); err != nil {
			return err
		}
		r.printf("dims %v\n", op.Dims)
	}
	return nil
}

func (r *Runner) resize(dims []int) error {
	tree, err := ptree.NewValuePartitionTree[Label](dims, ptree.WithLogger(r.logger))
	if err != nil {
		return fmt.Errorf("new tree %v: %w", dims, err)
	}
	r.tree = tree
	return nil
}

func (r *Runner) describe(v Label, ok bool) string {
	if !ok {
		return "unset"
	}
	return r.palette.Name(v)
}

func (r *Runner) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}
