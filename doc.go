// Package fastmatmul is the public entry point: FastMatmul resolves an
// algorithm id from the algotables registry, applies the approximate-
// algorithm input/output scaling pass where the descriptor calls for one,
// and hands the operands to bilinear.FastMatmulRecursive with the caller's
// chosen scheduler.
package fastmatmul
