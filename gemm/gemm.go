package gemm

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/vlarn/fastmatmul/matrix"
)

// Gemm computes the base case of the bilinear recursion: it realizes A's and
// B's deferred multipliers together with C's accumulated multiplier against
// real storage, via a vendor BLAS Level 3 call, then resets C's multiplier
// to 1 (see doc.go for the exact formula and how it fits the driver's
// multiplier-folding step).
//
// A, B, C must satisfy matrix.ValidateProductShapes. C is taken by pointer
// because SetMultiplier mutates state the caller must observe afterward.
//
// gonum's blas64/blas32 General type is row-major. Rather than transpose
// the data, Gemm exploits that a column-major m×k view with stride s is,
// read with the same backing slice and stride, algebraically the transpose
// of a row-major k×m view: C = A·B (column-major) becomes
// C^T = B^T·A^T (row-major), so the vendor call is made with A and B
// swapped and reinterpreted, never copied.
func Gemm[S matrix.Scalar](A, B matrix.Matrix[S], C *matrix.Matrix[S]) error {
	if err := matrix.ValidateProductShapes(A, B, *C); err != nil {
		return gemmErrorf("Gemm", err)
	}

	alpha := C.Multiplier() * A.Multiplier() * B.Multiplier()

	switch any(A.RawData()).(type) {
	case []float64:
		gemm64(A, B, *C, float64(alpha))
	case []float32:
		gemm32(A, B, *C, float32(alpha))
	default:
		return gemmErrorf("Gemm", ErrUnsupportedScalar)
	}

	return C.SetMultiplier(1)
}

func gemm64[S matrix.Scalar](A, B, C matrix.Matrix[S], alpha float64) {
	aT := blas64.General{Rows: A.Cols(), Cols: A.Rows(), Stride: A.Stride(), Data: any(A.RawData()).([]float64)}
	bT := blas64.General{Rows: B.Cols(), Cols: B.Rows(), Stride: B.Stride(), Data: any(B.RawData()).([]float64)}
	cT := blas64.General{Rows: C.Cols(), Cols: C.Rows(), Stride: C.Stride(), Data: any(C.RawData()).([]float64)}

	blas64.Gemm(blas.NoTrans, blas.NoTrans, alpha, bT, aT, 0, cT)
}

func gemm32[S matrix.Scalar](A, B, C matrix.Matrix[S], alpha float32) {
	aT := blas32.General{Rows: A.Cols(), Cols: A.Rows(), Stride: A.Stride(), Data: any(A.RawData()).([]float32)}
	bT := blas32.General{Rows: B.Cols(), Cols: B.Rows(), Stride: B.Stride(), Data: any(B.RawData()).([]float32)}
	cT := blas32.General{Rows: C.Cols(), Cols: C.Rows(), Stride: C.Stride(), Data: any(C.RawData()).([]float32)}

	blas32.Gemm(blas.NoTrans, blas.NoTrans, alpha, bT, aT, 0, cT)
}
