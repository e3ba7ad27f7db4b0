// Package linalg provides the fused, variadic linear-combination kernel
// used to build the left and right factors of every bilinear product:
//
//	D <- sum_i alpha_i * S_i
//
// A single fused pass over q strided sources halves memory traffic
// compared to a tree of pairwise adds and is the kernel spec §2 calls out
// as needing to stay fused for vectorization headroom.
package linalg
