package costgrid

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("costgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("costgrid: all rows must have the same length")
	// ErrNonPositiveCost indicates a real cell whose cost collides with Sentinel.
	ErrNonPositiveCost = errors.New("costgrid: cell costs must be strictly positive")
	// ErrBadDigit indicates a character other than 1–9 in textual input.
	ErrBadDigit = errors.New("costgrid: cell must be a digit 1-9")
)
