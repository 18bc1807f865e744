package script

import "errors"

var (
	ErrUnknownOp    = errors.New("script: unknown operation")
	ErrUnknownValue = errors.New("script: value not in palette")
	ErrMissingField = errors.New("script: required field missing")
	ErrBadPalette   = errors.New("script: palette must hold 1 to 256 distinct names")
	ErrBadCoords    = errors.New("script: malformed coordinates")
)
