// SPDX-License-Identifier: MIT
// Package glcm: sentinel error set.
// Every exported sentinel wraps ErrInvalidArgument, so callers may match
// either the broad kind or the precise cause via errors.Is. Validation runs
// before any counting; no function returns a partial matrix with an error.

package glcm

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the umbrella kind for every caller contract violation.
var ErrInvalidArgument = errors.New("glcm: invalid argument")

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidArgument)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all grid rows must have the same length", ErrInvalidArgument)

	// ErrNotInteger indicates a float cell that is ±Inf or has a fractional part.
	ErrNotInteger = fmt.Errorf("%w: grid value is not an integer", ErrInvalidArgument)

	// ErrNilGrid indicates a nil *Grid was passed to a counter.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidArgument)

	// ErrGreyLevels indicates nGrey < 1.
	ErrGreyLevels = fmt.Errorf("%w: number of grey levels must be >= 1", ErrInvalidArgument)

	// ErrTooManyGreyLevels indicates nGrey > MaxGreyLevels. It also matches ErrGreyLevels.
	ErrTooManyGreyLevels = fmt.Errorf("%w: exceeds MaxGreyLevels", ErrGreyLevels)

	// ErrDistance indicates d < 1.
	ErrDistance = fmt.Errorf("%w: distance must be >= 1", ErrInvalidArgument)

	// ErrDirection indicates a Direction outside {0°, 45°, 90°, 135°}.
	ErrDirection = fmt.Errorf("%w: unsupported direction", ErrInvalidArgument)

	// ErrLevelOutOfRange indicates a grey level outside [0, nGrey-1].
	ErrLevelOutOfRange = fmt.Errorf("%w: grey level out of range", ErrInvalidArgument)

	// ErrOutOfRange indicates a matrix index outside [0, Size()-1].
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
)

// LevelError reports the first grid cell whose grey level does not fit
// into [0, GreyLevels-1]. It unwraps to ErrLevelOutOfRange.
type LevelError struct {
	Row, Col   int
	Value      int
	GreyLevels int
}

func (e *LevelError) Error() string {
	return fmt.Sprintf("glcm: grey level %d at (%d,%d) outside [0,%d]",
		e.Value, e.Row, e.Col, e.GreyLevels-1)
}

// Unwrap exposes ErrLevelOutOfRange (and through it ErrInvalidArgument).
func (e *LevelError) Unwrap() error {
	return ErrLevelOutOfRange
}

// opErrorf wraps err with the name of the public entry point that failed.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
