package algotables

import (
	"fmt"

	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/matrix"
)

// Classical builds the trivial ⟨M,K,N⟩ decomposition: one bilinear
// product per (block-row, contraction, block-col) triple, rank R = M*K*N,
// exactly the block form of C_ij = Σ_p A_ip·B_pj. It is not rank-reduced —
// it backs the classical222 id, and stands in for shapes this package has
// no published fast table for (see how Lookup resolves grey322_11_50 and
// fast333 in registry.go).
func Classical[S matrix.Scalar](M, K, N int) bilinear.Descriptor[S] {
	R := M * K * N
	idx := func(i, p, j int) int { return i*K*N + p*N + j }

	U := make([][]S, R)
	V := make([][]S, R)
	for i := 0; i < M; i++ {
		for p := 0; p < K; p++ {
			for j := 0; j < N; j++ {
				r := idx(i, p, j)
				u := make([]S, M*K)
				u[i*K+p] = 1
				U[r] = u
				v := make([]S, K*N)
				v[p*N+j] = 1
				V[r] = v
			}
		}
	}

	W := make([][]S, M*N)
	for i := 0; i < M; i++ {
		for j := 0; j < N; j++ {
			w := make([]S, R)
			for p := 0; p < K; p++ {
				w[idx(i, p, j)] = 1
			}
			W[i*N+j] = w
		}
	}

	return bilinear.Descriptor[S]{
		Name:   fmt.Sprintf("classical-%d-%d-%d", M, K, N),
		M:      M,
		K:      K,
		N:      N,
		R:      R,
		Tables: bilinear.Const(U, V, W),
	}
}
