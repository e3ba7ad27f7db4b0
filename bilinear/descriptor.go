package bilinear

import "github.com/vlarn/fastmatmul/matrix"

// Descriptor fully characterizes a bilinear (Strassen-like) algorithm: a
// block-partition shape ⟨M,K,N⟩, its rank R, and the three coefficient
// tables U, V, W (spec §3.2). U has R rows of length M*K, indexed
// row-major over the A grid: U[r][i*K+p] is the coefficient with which
// A-block (i,p) contributes to bilinear product r's left factor. V has R
// rows of length K*N, indexed V[r][p*N+j]. W has M*N rows of length R,
// indexed W[i*N+j][r]: the coefficient with which product r contributes to
// C-block (i,j).
//
// Approx marks a border-rank algorithm; for those, Tables is evaluated at
// the caller-supplied x (once per recursion node) instead of being constant, and
// ApproxExponent is the power of 1/x the final result must be rescaled by.
type Descriptor[S matrix.Scalar] struct {
	Name           string
	M, K, N, R     int
	Approx         bool
	ApproxExponent int
	Tables         func(x float64) (U, V, W [][]S)
}

// Const wraps a fixed, non-approximate U/V/W triple as a Tables function,
// for the common case of an exact algorithm whose coefficients do not
// depend on x.
func Const[S matrix.Scalar](U, V, W [][]S) func(x float64) ([][]S, [][]S, [][]S) {
	return func(float64) ([][]S, [][]S, [][]S) { return U, V, W }
}
