package ptree

import "errors"

var (
	ErrNoDimensions = errors.New("ptree: at least one dimension is required")
	ErrBadDimension = errors.New("ptree: dimension extents must be positive")
	ErrRank         = errors.New("ptree: coordinate slice shorter than tree order")
	ErrInvalidSplit = errors.New("ptree: split requested on a tile or an aligned query")
	ErrUnknownNode  = errors.New("ptree: node id is not live in the arena")
)
