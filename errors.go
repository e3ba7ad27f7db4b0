package fastmatmul

import (
	"errors"
	"fmt"
)

// ErrUnknownAlgorithm is returned when id names no registered descriptor.
var ErrUnknownAlgorithm = errors.New("fastmatmul: unknown algorithm id")

func fastmatmulErrorf(op string, err error) error {
	return fmt.Errorf("fastmatmul.%s: %w", op, err)
}
