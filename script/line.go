package script

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine reads a single REPL-style command:
//
//	put <value> <x,y,..> [<x,y,..>]
//	remove <x,y,..> [<x,y,..>]
//	get <x,y,..>
//	fill <value> | indexof <value> | count <value>
//	dims <n> [<n> ...]
//	clear | dump
func ParseLine(line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, fmt.Errorf("%w: empty command", ErrUnknownOp)
	}
	op := Op{Op: strings.ToLower(fields[0])}
	args := fields[1:]

	var err error
	switch op.Op {
	case OpPut:
		if len(args) < 2 {
			return op, fmt.Errorf("%w: put <value> <coords> [<max>]", ErrMissingField)
		}
		op.Value = args[0]
		err = op.parseTarget(args[1:])
	case OpRemove:
		if len(args) < 1 {
			return op, fmt.Errorf("%w: remove <coords> [<max>]", ErrMissingField)
		}
		err = op.parseTarget(args)
	case OpGet:
		if len(args) != 1 {
			return op, fmt.Errorf("%w: get <coords>", ErrMissingField)
		}
		op.At, err = parseCoords(args[0])
	case OpFill, OpIndexOf, OpCount:
		if len(args) != 1 {
			return op, fmt.Errorf("%w: %s <value>", ErrMissingField, op.Op)
		}
		op.Value = args[0]
	case OpDims:
		if len(args) == 0 {
			return op, fmt.Errorf("%w: dims <n> [<n> ...]", ErrMissingField)
		}
		op.Dims, err = parseCoords(strings.Join(args, ","))
	case OpClear, OpDump:
	default:
		return op, fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	if err != nil {
		return op, err
	}
	return op, op.Validate()
}

func (op *Op) parseTarget(args []string) error {
	var err error
	switch len(args) {
	case 1:
		op.At, err = parseCoords(args[0])
	case 2:
		if op.Min, err = parseCoords(args[0]); err != nil {
			return err
		}
		op.Max, err = parseCoords(args[1])
	default:
		err = fmt.Errorf("%w: too many coordinates", ErrBadCoords)
	}
	return err
}

func parseCoords(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCoords, s)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrBadCoords, s)
	}
	return out, nil
}
