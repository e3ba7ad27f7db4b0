// Package gemm wraps a vendor BLAS dense matrix multiply as the bilinear
// recursion's base case (spec §4.3, §6.2). It is where the multiplier
// accumulated on C down the recursion is materialized: Gemm(A, B, C) computes
//
//	C.raw <- C.multiplier() * A.multiplier() * B.multiplier() * A.raw * B.raw
//
// then resets C's multiplier to 1. By the time the recursion driver calls
// Gemm, A and B's multipliers have already been forced to 1 (driver step
// 1) and C's multiplier holds the full product accumulated down the
// recursion path, so this is the point that value finally gets applied to
// real data instead of carried symbolically.
package gemm
