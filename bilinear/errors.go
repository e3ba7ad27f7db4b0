package bilinear

import (
	"errors"
	"fmt"
)

// ErrBadDescriptor reports a Descriptor whose table shapes are inconsistent
// with its own M, K, N, R (caught at recursion entry, not deep in a loop).
var ErrBadDescriptor = errors.New("bilinear: malformed algorithm descriptor")

// ErrDegenerateApprox reports an approximate Descriptor invoked with x == 0.
var ErrDegenerateApprox = errors.New("bilinear: approximation parameter x must be nonzero")

func bilinearErrorf(op string, err error) error {
	return fmt.Errorf("bilinear.%s: %w", op, err)
}
