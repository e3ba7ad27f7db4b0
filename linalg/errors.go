package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSources is returned when Add is called with zero source matrices.
	ErrNoSources = errors.New("linalg: at least one source matrix required")

	// ErrCoeffCountMismatch indicates len(coeffs) != len(srcs).
	ErrCoeffCountMismatch = errors.New("linalg: coefficient count must equal source count")

	// ErrShapeMismatch indicates a source or destination shape disagreement.
	ErrShapeMismatch = errors.New("linalg: all sources and destination must share shape")
)

func linalgErrorf(op string, err error) error {
	return fmt.Errorf("linalg.%s: %w", op, err)
}
