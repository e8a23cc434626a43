package link

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("link: input grid must have at least one row and one column")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("link: all rows must have the same length")
	// ErrMinLength indicates a non-positive minimum chain length.
	ErrMinLength = errors.New("link: minimum chain length must be at least 1")
)
