package algotables

import (
	"github.com/vlarn/fastmatmul/bilinear"
	"github.com/vlarn/fastmatmul/matrix"
)

// Grey243Rank20 is the rank-20 ⟨2,4,3⟩ bilinear decomposition: twenty
// products in place of the 24 a classical block product would need.
// Blocks flatten row-major — A as i*4+p (A11..A24 → 0..7), B as p*3+j
// (B11..B43 → 0..11), C as i*3+j (C11..C23 → 0..5) — and the table below
// is transcribed entry-by-entry, including sign, from the algorithm's
// reference decomposition. Several products there fold their scalar sign
// onto the result multiplier rather than onto either factor (e.g.
// M3 = -1 * (A11 * (B11+B12+B13))); those are represented here by moving
// the sign onto whichever factor is a single term, which is algebraically
// identical and keeps every row a plain linear combination.
func Grey243Rank20[S matrix.Scalar]() bilinear.Descriptor[S] {
	U := [][]S{
		{-1, -1, 0, 0, -1, -1, 0, 0}, // M1
		{0, 0, 0, 0, 0, -1, -1, 0},   // M2
		{-1, 0, 0, 0, 0, 0, 0, 0},    // M3
		{0, 0, 0, -1, -1, 0, 0, -1},  // M4
		{0, 0, 0, 0, 1, 0, 0, 1},     // M5
		{0, 0, 0, -1, 0, 0, 1, 0},    // M6
		{0, -1, 0, 0, 0, -1, 0, 0},   // M7
		{0, 1, 1, 0, 0, 0, 0, 0},     // M8
		{0, 0, 0, 0, 0, 0, -1, 0},    // M9
		{0, 0, 0, 1, 0, 0, 0, 1},     // M10
		{0, 0, 0, -1, 0, 0, 0, 0},    // M11
		{0, 1, 0, 0, 0, 0, -1, 0},    // M12
		{0, 0, 0, 0, 0, 0, 1, 1},     // M13
		{0, 0, 1, 0, 0, 0, 1, 0},     // M14
		{0, 0, 0, 0, 1, 0, 0, 0},     // M15
		{0, 0, -1, -1, 0, 0, 0, 0},   // M16
		{0, 1, 0, 0, 0, 0, 0, 0},     // M17
		{0, 1, 0, 0, 1, 1, 0, 0},     // M18
		{-1, 0, 0, -1, -1, 0, 0, -1}, // M19
		{0, 0, 0, 0, -1, -1, 0, 0},   // M20
	}
	V := [][]S{
		{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},    // M1
		{0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0},    // M2
		{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0},    // M3
		{-1, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1}, // M4
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, -1},   // M5
		{0, 0, 0, 0, 0, 0, 0, 1, 1, -1, 0, 0},   // M6
		{1, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 0},   // M7
		{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0},    // M8
		{0, 0, 0, 1, 1, 0, -1, 0, 1, 1, 0, 0},   // M9
		{-1, -1, 0, 0, 0, 0, 0, 0, 0, -1, 1, 0}, // M10
		{0, 0, 0, 0, 0, 0, 0, -1, -1, 0, 1, 1},  // M11
		{0, 0, 0, -1, -1, 0, 0, 0, -1, 0, 0, 0}, // M12
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0},    // M13
		{0, 0, 0, 0, 0, 0, -1, 1, 1, 0, 0, 0},   // M14
		{-1, 0, 1, 0, -1, -1, 0, 0, 0, 0, 0, -1}, // M15
		{0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 0},    // M16
		{0, 0, 0, 0, 0, -1, 0, 0, 1, 0, 0, 0},   // M17
		{-1, 0, 0, 0, -1, -1, 0, 0, 0, 0, 0, 0}, // M18
		{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},    // M19
		{0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 0},    // M20
	}
	W := [][]S{
		// C11
		{-1, 0, 0, 0, 0, 1, 0, 0, -1, 0, 0, -1, 0, -1, 0, -1, -1, 1, 0, -1},
		// C12
		{1, 0, 0, -1, -1, 0, 0, -1, 0, 0, -1, 0, 0, 0, 0, -1, 1, -1, -1, 1},
		// C13
		{0, 0, -1, 1, 1, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, -1, 0, 1, 0},
		// C21
		{0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 0, 1, 1, 0, 0, 0, 1, -1, 0, 1},
		// C22
		{0, -1, 0, 1, 1, 1, -1, 0, 0, 1, 1, -1, 1, 0, 0, 0, -1, 1, 0, -1},
		// C23
		{0, 1, 0, 0, -1, 0, 1, 0, 0, 0, 0, 1, 0, 0, 1, 0, 1, -1, 0, 0},
	}

	return bilinear.Descriptor[S]{
		Name:   "grey243_20_144",
		M:      2,
		K:      4,
		N:      3,
		R:      20,
		Tables: bilinear.Const(U, V, W),
	}
}
