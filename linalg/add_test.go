package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlarn/fastmatmul/linalg"
	"github.com/vlarn/fastmatmul/matrix"
)

func fill(t *testing.T, m matrix.Matrix[float64], f func(i, j int) float64) {
	t.Helper()
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			m.SetRaw(i, j, f(i, j))
		}
	}
}

func TestAdd_ScaledCopy(t *testing.T) {
	a, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	fill(t, a, func(i, j int) float64 { return float64(i + 10*j) })

	d, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, linalg.Add(d, []float64{2.0}, a))
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			require.Equal(t, 2*a.Raw(i, j), d.Raw(i, j))
		}
	}
}

func TestAdd_FusedSum(t *testing.T) {
	a, _ := matrix.NewDense[float64](2, 2)
	b, _ := matrix.NewDense[float64](2, 2)
	c, _ := matrix.NewDense[float64](2, 2)
	fill(t, a, func(i, j int) float64 { return 1 })
	fill(t, b, func(i, j int) float64 { return 2 })
	fill(t, c, func(i, j int) float64 { return 3 })

	d, _ := matrix.NewDense[float64](2, 2)
	require.NoError(t, linalg.Add(d, []float64{1, -1, 2}, a, b, c))
	// 1*1 + -1*2 + 2*3 = 5
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			require.Equal(t, float64(5), d.Raw(i, j))
		}
	}
}

func TestAdd_AppliesSourceMultiplier(t *testing.T) {
	a, _ := matrix.NewDense[float64](1, 1)
	a.SetRaw(0, 0, 3)
	require.NoError(t, a.SetMultiplier(-1))

	d, _ := matrix.NewDense[float64](1, 1)
	require.NoError(t, linalg.Add(d, []float64{2}, a))
	require.Equal(t, float64(-6), d.Raw(0, 0))
}

func TestAdd_ManySources_FallsBackToGeneralLoop(t *testing.T) {
	n := 9
	srcs := make([]matrix.Matrix[float64], n)
	coeffs := make([]float64, n)
	for k := 0; k < n; k++ {
		m, _ := matrix.NewDense[float64](1, 1)
		m.SetRaw(0, 0, float64(k+1))
		srcs[k] = m
		coeffs[k] = 1
	}
	d, _ := matrix.NewDense[float64](1, 1)
	require.NoError(t, linalg.Add(d, coeffs, srcs...))
	require.Equal(t, float64(n*(n+1)/2), d.Raw(0, 0))
}

func TestAdd_RejectsMismatchedShapesAndCounts(t *testing.T) {
	a, _ := matrix.NewDense[float64](2, 2)
	b, _ := matrix.NewDense[float64](3, 3)
	d, _ := matrix.NewDense[float64](2, 2)

	require.Error(t, linalg.Add(d, []float64{1}, b))
	require.Error(t, linalg.Add(d, []float64{1, 2}, a))
	require.Error(t, linalg.Add(d, nil))
}
