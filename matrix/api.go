package matrix

// Identity allocates an n×n owning Matrix with ones on the diagonal and
// zeros elsewhere, multiplier 1. Used by round-trip identity tests
// (spec §8.2: FastMatmul(A, I, C, levels) ≈ A).
func Identity[S Scalar](n int) (Matrix[S], error) {
	m, err := NewDense[S](n, n)
	if err != nil {
		return Matrix[S]{}, matrixErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 1) // in-bounds by construction
	}

	return m, nil
}

// Zeros allocates an rows×cols owning Matrix of zeros, multiplier 1. Thin
// alias over NewDense kept for call-site readability at usage sites that
// want an explicit zero matrix (spec §8.2: FastMatmul(0, B, C, levels) = 0).
func Zeros[S Scalar](rows, cols int) (Matrix[S], error) {
	return NewDense[S](rows, cols)
}
