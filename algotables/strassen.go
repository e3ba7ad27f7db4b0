package algotables

import (
	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/matrix"
)

// Strassen222 is the classical Strassen ⟨2,2,2⟩ rank-7 decomposition: seven
// products instead of eight, trading one multiplication for a handful of
// extra additions. Blocks are flattened row-major — A/B index as i*2+p /
// p*2+j, C as i*2+j — matching the convention bilinear.FastMatmulRecursive
// partitions blocks in.
func Strassen222[S matrix.Scalar]() bilinear.Descriptor[S] {
	U := [][]S{
		{1, 0, 0, 1},  // M1 = A11+A22
		{0, 0, 1, 1},  // M2 = A21+A22
		{1, 0, 0, 0},  // M3 = A11
		{0, 0, 0, 1},  // M4 = A22
		{1, 1, 0, 0},  // M5 = A11+A12
		{-1, 0, 1, 0}, // M6 = A21-A11
		{0, 1, 0, -1}, // M7 = A12-A22
	}
	V := [][]S{
		{1, 0, 0, 1},  // N1 = B11+B22
		{1, 0, 0, 0},  // N2 = B11
		{0, 1, 0, -1}, // N3 = B12-B22
		{-1, 0, 1, 0}, // N4 = B21-B11
		{0, 0, 0, 1},  // N5 = B22
		{1, 1, 0, 0},  // N6 = B11+B12
		{0, 0, 1, 1},  // N7 = B21+B22
	}
	W := [][]S{
		{1, 0, 0, 1, -1, 0, 1},  // C11 = M1+M4-M5+M7
		{0, 0, 1, 0, 1, 0, 0},   // C12 = M3+M5
		{0, 1, 0, 1, 0, 0, 0},   // C21 = M2+M4
		{1, -1, 1, 0, 0, 1, 0},  // C22 = M1-M2+M3+M6
	}

	return bilinear.Descriptor[S]{
		Name:   "strassen222",
		M:      2,
		K:      2,
		N:      2,
		R:      7,
		Tables: bilinear.Const(U, V, W),
	}
}
