package fastmatmul

import (
	"math"

	"github.com/vlarn/fastmatmul/algotables"
	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/linalg"
	"github.com/vlarn/fastmatmul/matrix"
)

// FastMatmul computes C <- A*B using the registered algorithm id, recursing
// levels times before falling back to the vendor GEMM base case (spec
// §6.1). For an approximate (border-rank) algorithm, the approximation
// parameter x is applied once at entry — folded onto A's multiplier — and
// undone once at exit via the descriptor's ApproxExponent, rather than at
// every recursion level, to avoid compounding floating-point error over a
// scaling that belongs to the whole call (spec §9).
func FastMatmul[S matrix.Scalar](id string, A, B matrix.Matrix[S], C *matrix.Matrix[S], levels int, opts ...Option) error {
	desc, ok := algotables.Lookup[S](id)
	if !ok {
		return fastmatmulErrorf("FastMatmul", ErrUnknownAlgorithm)
	}
	o := gatherOptions(opts...)

	if desc.Approx {
		sx := S(o.x)
		if sx == 0 {
			return fastmatmulErrorf("FastMatmul", bilinear.ErrDegenerateApprox)
		}
		if err := A.UpdateMultiplier(sx); err != nil {
			return fastmatmulErrorf("FastMatmul", err)
		}
	}

	if err := bilinear.FastMatmulRecursive(desc, A, B, C, levels, o.x, o.scheduler); err != nil {
		return fastmatmulErrorf("FastMatmul", err)
	}

	if desc.Approx {
		scale := S(math.Pow(o.x, float64(-desc.ApproxExponent)))
		if err := linalg.Add(*C, []S{scale}, *C); err != nil {
			return fastmatmulErrorf("FastMatmul", err)
		}
	}

	return nil
}
