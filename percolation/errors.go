package percolation

import "errors"

var (
	// ErrInvalidArgument indicates a grid side smaller than 1.
	ErrInvalidArgument = errors.New("percolation: grid size must be at least 1")
	// ErrIndexOutOfRange indicates a row or column outside [1, N].
	ErrIndexOutOfRange = errors.New("percolation: index out of range")
)
