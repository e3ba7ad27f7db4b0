// Package bilinear implements the recursive bilinear (Strassen-like) matrix
// multiplication driver: given a Descriptor describing an ⟨M,K,N,R⟩
// decomposition and its U/V/W coefficient tables, FastMatmulRecursive folds
// deferred multipliers, partitions A/B/C into uniform block grids, builds R
// independent bilinear sub-products via the linear-combination kernel,
// recurses on each (optionally in parallel via a sched.Scheduler), combines
// the R intermediates back into C, and corrects for any residue left by
// non-divisible dimensions via DynamicPeeling.
package bilinear
