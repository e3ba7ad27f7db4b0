package bilinear

import (
	"github.com/vlarn/fastmatmul/gemm"
	"github.com/vlarn/fastmatmul/linalg"
	"github.com/vlarn/fastmatmul/matrix"
)

// DynamicPeeling corrects the product for any residue left by a uniform
// M×K×N block grid not evenly dividing A/B/C's dimensions (spec §4.5). It
// assumes the fast recursion has already written the full product into
// C's top-left M·⌊m/M⌋ × N·⌊n/N⌋ region using only A's first K·⌊k/K⌋
// columns and B's first K·⌊k/K⌋ rows; the three slabs below restore the
// rest:
//
//   - the bottom row slab (rows mdiv..m, every column) — a full product
//     the fast recursion never touched;
//   - the right column slab (rows 0..mdiv, columns ndiv..n) — likewise
//     untouched, restricted to rows 0..mdiv so it doesn't overlap the row
//     slab above;
//   - the residual-K contribution into the already-computed top-left
//     region, accumulated rather than assigned since that region already
//     holds the fast recursion's partial sum over A/B's first kdiv terms.
//
// The three slabs write disjoint regions of C and could run concurrently
// (spec §5's "may be executed concurrently"), but peeling is a small
// fraction of total cost and isn't worth a second scheduler fan-out here.
//
// C's own deferred multiplier is still pending when this runs (the driver
// doesn't reset it to 1 until after peeling returns), and the top-left
// region's raw storage already has that multiplier folded into it via
// step 5's Add. The residual-K branch below must not let linalg.Add read
// that multiplier a second time off Ctop — it scales delta by the pending
// multiplier instead and reads the existing content at multiplier 1.
func DynamicPeeling[S matrix.Scalar](A, B matrix.Matrix[S], C *matrix.Matrix[S], M, K, N int) error {
	m, k := A.Rows(), A.Cols()
	n := B.Cols()
	mdiv := M * (m / M)
	kdiv := K * (k / K)
	ndiv := N * (n / N)

	if m > mdiv {
		Abot := A.Slice(mdiv, m, 0, k)
		Cbot := C.Slice(mdiv, m, 0, n)
		if err := gemm.Gemm(Abot, B, &Cbot); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
	}

	if n > ndiv {
		Atop := A.Slice(0, mdiv, 0, k)
		Bright := B.Slice(0, k, ndiv, n)
		Cright := C.Slice(0, mdiv, ndiv, n)
		if err := gemm.Gemm(Atop, Bright, &Cright); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
	}

	if k > kdiv {
		Aresid := A.Slice(0, mdiv, kdiv, k)
		Bresid := B.Slice(kdiv, k, 0, ndiv)
		delta, err := matrix.NewDense[S](mdiv, ndiv)
		if err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
		if err := gemm.Gemm(Aresid, Bresid, &delta); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
		Ctop := C.Slice(0, mdiv, 0, ndiv)
		fold := Ctop.Multiplier()
		if err := delta.UpdateMultiplier(fold); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
		if err := Ctop.SetMultiplier(1); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
		if err := linalg.Add(Ctop, []S{1, 1}, Ctop, delta); err != nil {
			return bilinearErrorf("DynamicPeeling", err)
		}
	}

	return nil
}
