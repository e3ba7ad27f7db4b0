package bilinear_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/gemm"
	"github.com/vlarn/fastmatmul/matrix"
)

// TestDynamicPeeling_CorrectsPreFilledTopLeftRegion exercises
// DynamicPeeling directly: it pre-fills C's top-left divisible region as if
// a fast recursion had already run over it, then checks peeling restores
// the full classical product.
func TestDynamicPeeling_CorrectsPreFilledTopLeftRegion(t *testing.T) {
	const M, K, N = 2, 4, 3
	rng := rand.New(rand.NewSource(23))

	m, k, n := 13, 17, 11 // none divide evenly by M, K, N
	A := randomDense(t, m, k, rng)
	B := randomDense(t, k, n, rng)

	mdiv, kdiv, ndiv := M*(m/M), K*(k/K), N*(n/N)

	C, err := matrix.NewDense[float64](m, n)
	require.NoError(t, err)

	// Seed C's already-covered top-left region with the product restricted
	// to A/B's first kdiv columns/rows, mimicking what the fast recursion
	// would have written before peeling runs.
	Atop := A.Slice(0, mdiv, 0, kdiv)
	Btop := B.Slice(0, kdiv, 0, ndiv)
	Ctop := C.Slice(0, mdiv, 0, ndiv)
	require.NoError(t, gemm.Gemm(Atop, Btop, &Ctop))

	require.NoError(t, bilinear.DynamicPeeling(A, B, &C, M, K, N))

	want, err := matrix.NewDense[float64](m, n)
	require.NoError(t, err)
	require.NoError(t, gemm.Gemm(A, B, &want))

	require.True(t, matrix.Close(C, want))
}

func TestDynamicPeeling_NoOpWhenDimensionsDivideEvenly(t *testing.T) {
	const M, K, N = 2, 2, 2
	rng := rand.New(rand.NewSource(29))

	A := randomDense(t, 4, 4, rng)
	B := randomDense(t, 4, 4, rng)
	C, err := matrix.NewDense[float64](4, 4)
	require.NoError(t, err)
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			C.SetRaw(i, j, 42)
		}
	}

	require.NoError(t, bilinear.DynamicPeeling(A, B, &C, M, K, N))

	// Every dimension divides evenly, so none of the three slabs fire and C
	// must be left exactly as it was handed in.
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			require.Equal(t, float64(42), C.Raw(i, j))
		}
	}
}
