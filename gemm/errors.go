package gemm

import (
	"errors"
	"fmt"
)

// ErrUnsupportedScalar is returned when the scalar policy instantiating
// Gemm has no vendor BLAS binding wired up (see Gemm's type switch).
var ErrUnsupportedScalar = errors.New("gemm: unsupported scalar type")

func gemmErrorf(op string, err error) error {
	return fmt.Errorf("gemm.%s: %w", op, err)
}
