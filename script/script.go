// Package script loads grid workloads from YAML and replays them against a
// partition tree.
//
// A workload file looks like:
//
//	dimensions: [4, 4]
//	values: [red, green, blue]
//	log_level: debug
//	ops:
//	  - op: put
//	    value: red
//	    min: [0, 0]
//	    max: [1, 1]
//	  - op: get
//	    at: [0, 0]
//	  - op: dims
//	    dims: [8, 8]
package script

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script is a parsed workload file.
type Script struct {
	Dimensions []int    `yaml:"dimensions"`
	Values     []string `yaml:"values"`
	LogLevel   string   `yaml:"log_level,omitempty"`
	Ops        []Op     `yaml:"ops"`
}

// Op is one operation. Point operations use At; range operations use Min
// and Max. Dims carries the new extents of a dims op.
type Op struct {
	Op    string `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	At    []int  `yaml:"at,omitempty"`
	Min   []int  `yaml:"min,omitempty"`
	Max   []int  `yaml:"max,omitempty"`
	Dims  []int  `yaml:"dims,omitempty"`
}

const (
	OpPut     = "put"
	OpRemove  = "remove"
	OpGet     = "get"
	OpFill    = "fill"
	OpClear   = "clear"
	OpIndexOf = "indexof"
	OpCount   = "count"
	OpDump    = "dump"
	OpDims    = "dims"
)

// Load reads and validates a workload file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("workload %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates workload YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the header fields and the shape of every op. Values are
// checked against the palette when the op runs.
func (s *Script) Validate() error {
	if len(s.Dimensions) == 0 {
		return fmt.Errorf("%w: dimensions", ErrMissingField)
	}
	if _, err := NewPalette(s.Values); err != nil {
		return err
	}
	if _, err := ParseLevel(s.LogLevel); err != nil {
		return err
	}
	for i, op := range s.Ops {
		if err := op.Validate(); err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
	}
	return nil
}

// Validate checks that op carries the fields its kind needs.
func (op Op) Validate() error {
	switch op.Op {
	case OpPut:
		if op.Value == "" {
			return fmt.Errorf("%w: value", ErrMissingField)
		}
		return op.validateTarget()
	case OpRemove:
		return op.validateTarget()
	case OpGet:
		if op.At == nil {
			return fmt.Errorf("%w: at", ErrMissingField)
		}
	case OpFill, OpIndexOf, OpCount:
		if op.Value == "" {
			return fmt.Errorf("%w: value", ErrMissingField)
		}
	case OpDims:
		if len(op.Dims) == 0 {
			return fmt.Errorf("%w: dims", ErrMissingField)
		}
	case OpClear, OpDump:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op.Op)
	}
	return nil
}

func (op Op) validateTarget() error {
	switch {
	case op.At != nil && op.Min == nil && op.Max == nil:
		return nil
	case op.At == nil && op.Min != nil && op.Max != nil:
		return nil
	default:
		return fmt.Errorf("%w: want either at or min+max", ErrMissingField)
	}
}

// ParseLevel maps a log level name to a slog level. Empty means info.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(name) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, fmt.Errorf("script: log level: %w", err)
	}
	return lvl, nil
}
