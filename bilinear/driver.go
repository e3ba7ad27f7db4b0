package bilinear

import (
	"github.com/vlarn/fastmatmul/gemm"
	"github.com/vlarn/fastmatmul/linalg"
	"github.com/vlarn/fastmatmul/matrix"
	"github.com/vlarn/fastmatmul/sched"
)

// FastMatmulRecursive computes C += A·B (in practice, assigns — see §4.4's
// "C ← C + 0·(old C) + A·B" postcondition) using desc's bilinear
// decomposition, recursing levels times before falling back to the vendor
// GEMM base case. A and B are taken by value (block views are cheap to
// copy and the multiplier folding below must only affect this node's local
// copies, never the caller's); C is a pointer because its multiplier is
// reset to 1 on return, mirroring gemm.Gemm's base-case contract so a
// parent node's own Add over this result never double-applies the fold.
func FastMatmulRecursive[S matrix.Scalar](desc Descriptor[S], A, B matrix.Matrix[S], C *matrix.Matrix[S], levels int, x float64, scheduler sched.Scheduler) error {
	if err := matrix.ValidateProductShapes(A, B, *C); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}

	// Step 1: fold A/B multipliers onto C; the recursion tree below this
	// point only ever sees multiplier 1 on its A/B operands.
	folded := C.Multiplier() * A.Multiplier() * B.Multiplier()
	if err := C.SetMultiplier(folded); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}
	if err := A.SetMultiplier(1); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}
	if err := B.SetMultiplier(1); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}

	// Step 2: base case.
	if levels == 0 {
		return gemm.Gemm(A, B, C)
	}

	tileRowsC := C.Rows() / desc.M
	tileColsC := C.Cols() / desc.N
	tileK := A.Cols() / desc.K
	if tileRowsC == 0 || tileColsC == 0 || tileK == 0 {
		// A block dimension rounds down to 0: the fast grid is degenerate,
		// delegate the whole product to the base case (spec §4.4 edge case).
		return gemm.Gemm(A, B, C)
	}

	// Step 3: partition into uniform grids, flattened in the same
	// row-major order the U/V/W tables index by.
	Ablocks := make([]matrix.Matrix[S], desc.M*desc.K)
	for i := 0; i < desc.M; i++ {
		for p := 0; p < desc.K; p++ {
			Ablocks[i*desc.K+p] = A.Block(desc.M, desc.K, i, p)
		}
	}
	Bblocks := make([]matrix.Matrix[S], desc.K*desc.N)
	for p := 0; p < desc.K; p++ {
		for j := 0; j < desc.N; j++ {
			Bblocks[p*desc.N+j] = B.Block(desc.K, desc.N, p, j)
		}
	}
	Cblocks := make([]matrix.Matrix[S], desc.M*desc.N)
	for i := 0; i < desc.M; i++ {
		for j := 0; j < desc.N; j++ {
			Cblocks[i*desc.N+j] = C.Block(desc.M, desc.N, i, j)
		}
	}

	U, V, W := desc.Tables(x)
	if len(U) != desc.R || len(V) != desc.R || len(W) != desc.M*desc.N {
		return bilinearErrorf("FastMatmulRecursive", ErrBadDescriptor)
	}

	// Step 4: build and recurse on the R bilinear products.
	Mr := make([]matrix.Matrix[S], desc.R)
	tasks := make([]func() error, desc.R)
	for r := 0; r < desc.R; r++ {
		r := r
		mr, err := matrix.NewDense[S](tileRowsC, tileColsC)
		if err != nil {
			return bilinearErrorf("FastMatmulRecursive", err)
		}
		if err := mr.SetMultiplier(folded); err != nil {
			return bilinearErrorf("FastMatmulRecursive", err)
		}
		Mr[r] = mr

		tasks[r] = func() error {
			Pr, err := buildFactor(Ablocks, U[r])
			if err != nil {
				return err
			}
			Qr, err := buildFactor(Bblocks, V[r])
			if err != nil {
				return err
			}
			return FastMatmulRecursive(desc, Pr, Qr, &Mr[r], levels-1, x, scheduler)
		}
	}
	if err := scheduler.Run(tasks...); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}

	// Step 5: output combination, one fused Add per C block, dropping
	// zero-coefficient products from the operand list.
	for i := 0; i < desc.M; i++ {
		for j := 0; j < desc.N; j++ {
			row := W[i*desc.N+j]
			coeffs := make([]S, 0, desc.R)
			srcs := make([]matrix.Matrix[S], 0, desc.R)
			for r, c := range row {
				if c != 0 {
					coeffs = append(coeffs, c)
					srcs = append(srcs, Mr[r])
				}
			}
			if len(srcs) == 0 {
				continue
			}
			if err := linalg.Add(Cblocks[i*desc.N+j], coeffs, srcs...); err != nil {
				return bilinearErrorf("FastMatmulRecursive", err)
			}
		}
	}

	// Step 6: peeling corrects the residue left by non-divisible dimensions.
	if err := DynamicPeeling(A, B, C, desc.M, desc.K, desc.N); err != nil {
		return bilinearErrorf("FastMatmulRecursive", err)
	}

	return C.SetMultiplier(1)
}

// buildFactor computes Σ coeffs[idx]·blocks[idx] over the nonzero entries
// of coeffs, aliasing the single block directly (with its coefficient
// folded into the multiplier via UpdateMultiplier, never SetMultiplier —
// see spec §4.4) when exactly one entry is nonzero, rather than paying for
// a scratch allocation and an Add.
func buildFactor[S matrix.Scalar](blocks []matrix.Matrix[S], coeffs []S) (matrix.Matrix[S], error) {
	nzCoeffs := make([]S, 0, len(coeffs))
	nzSrcs := make([]matrix.Matrix[S], 0, len(coeffs))
	for idx, c := range coeffs {
		if c != 0 {
			nzCoeffs = append(nzCoeffs, c)
			nzSrcs = append(nzSrcs, blocks[idx])
		}
	}

	switch len(nzSrcs) {
	case 0:
		return matrix.NewDense[S](blocks[0].Rows(), blocks[0].Cols())
	case 1:
		f := nzSrcs[0]
		if err := f.UpdateMultiplier(nzCoeffs[0]); err != nil {
			return matrix.Matrix[S]{}, err
		}
		return f, nil
	default:
		dst, err := matrix.NewDense[S](nzSrcs[0].Rows(), nzSrcs[0].Cols())
		if err != nil {
			return matrix.Matrix[S]{}, err
		}
		if err := linalg.Add(dst, nzCoeffs, nzSrcs...); err != nil {
			return matrix.Matrix[S]{}, err
		}
		return dst, nil
	}
}
