// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil or zero-valued Matrix was used where a
	// constructed one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrZeroMultiplier is returned if a caller attempts to set a Matrix's
	// deferred multiplier to zero; a zero-multiplier matrix must instead be
	// represented by explicit zeroing of the buffer (spec invariant).
	ErrZeroMultiplier = errors.New("matrix: multiplier must not be zero")

	// ErrInsufficientBacking indicates a borrowed slice is too short to hold
	// rows*cols elements at the given stride.
	ErrInsufficientBacking = errors.New("matrix: backing slice too short for stride/rows/cols")

	// ErrBadStride indicates a stride smaller than the row count was supplied.
	ErrBadStride = errors.New("matrix: stride must be >= rows")
)

// matrixErrorf wraps an underlying error with the given operation tag,
// mirroring the teacher's matrixErrorf/denseErrorf convention.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
