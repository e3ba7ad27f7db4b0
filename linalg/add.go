package linalg

import "github.com/vlarn/fastmatmul/matrix"

// Add computes D <- sum_i coeffs[i] * srcs[i], assigning every element of
// dst (never accumulating into its prior contents). Each source is read as
// coeffs[i] * srcs[i].Multiplier() * srcs[i][r,c] — the deferred multiplier
// IS applied here, which is the one place in the engine it gets realized
// before the next recursion level.
//
// All srcs and dst must share Rows/Cols; ordering within a column is the
// fixed i-ascending loop below (deterministic, not data-race-prone since
// callers never pass overlapping dst/src writes concurrently).
//
// When len(srcs) == 1 this degenerates to a scaled copy. Row counts 2-7 get
// unrolled loop bodies (the fan-in spec §9 observes for real algorithm
// tables) so the compiler can keep every source's element in a register
// instead of looping over a coefficient slice; wider fan-ins fall back to
// the general loop.
func Add[S matrix.Scalar](dst matrix.Matrix[S], coeffs []S, srcs ...matrix.Matrix[S]) error {
	if len(srcs) == 0 {
		return linalgErrorf("Add", ErrNoSources)
	}
	if len(coeffs) != len(srcs) {
		return linalgErrorf("Add", ErrCoeffCountMismatch)
	}
	for _, s := range srcs {
		if err := matrix.ValidateSameShape(dst, s); err != nil {
			return linalgErrorf("Add", ErrShapeMismatch)
		}
	}

	rows, cols := dst.Rows(), dst.Cols()

	// Fold each source's deferred multiplier into its coefficient once,
	// rather than once per element.
	eff := make([]S, len(srcs))
	for k, s := range srcs {
		eff[k] = coeffs[k] * s.Multiplier()
	}

	switch len(srcs) {
	case 1:
		s0 := srcs[0]
		c0 := eff[0]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j))
			}
		}
	case 2:
		s0, s1 := srcs[0], srcs[1]
		c0, c1 := eff[0], eff[1]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j))
			}
		}
	case 3:
		s0, s1, s2 := srcs[0], srcs[1], srcs[2]
		c0, c1, c2 := eff[0], eff[1], eff[2]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j)+c2*s2.Raw(i, j))
			}
		}
	case 4:
		s0, s1, s2, s3 := srcs[0], srcs[1], srcs[2], srcs[3]
		c0, c1, c2, c3 := eff[0], eff[1], eff[2], eff[3]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j)+c2*s2.Raw(i, j)+c3*s3.Raw(i, j))
			}
		}
	case 5:
		s0, s1, s2, s3, s4 := srcs[0], srcs[1], srcs[2], srcs[3], srcs[4]
		c0, c1, c2, c3, c4 := eff[0], eff[1], eff[2], eff[3], eff[4]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j)+c2*s2.Raw(i, j)+c3*s3.Raw(i, j)+c4*s4.Raw(i, j))
			}
		}
	case 6:
		s0, s1, s2, s3, s4, s5 := srcs[0], srcs[1], srcs[2], srcs[3], srcs[4], srcs[5]
		c0, c1, c2, c3, c4, c5 := eff[0], eff[1], eff[2], eff[3], eff[4], eff[5]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j)+c2*s2.Raw(i, j)+c3*s3.Raw(i, j)+c4*s4.Raw(i, j)+c5*s5.Raw(i, j))
			}
		}
	case 7:
		s0, s1, s2, s3, s4, s5, s6 := srcs[0], srcs[1], srcs[2], srcs[3], srcs[4], srcs[5], srcs[6]
		c0, c1, c2, c3, c4, c5, c6 := eff[0], eff[1], eff[2], eff[3], eff[4], eff[5], eff[6]
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				dst.SetRaw(i, j, c0*s0.Raw(i, j)+c1*s1.Raw(i, j)+c2*s2.Raw(i, j)+c3*s3.Raw(i, j)+c4*s4.Raw(i, j)+c5*s5.Raw(i, j)+c6*s6.Raw(i, j))
			}
		}
	default:
		for j := 0; j < cols; j++ {
			for i := 0; i < rows; i++ {
				var sum S
				for k, s := range srcs {
					sum += eff[k] * s.Raw(i, j)
				}
				dst.SetRaw(i, j, sum)
			}
		}
	}

	return nil
}
