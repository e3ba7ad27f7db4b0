// Package matrix provides the strided, column-major matrix view used by the
// bilinear recursion engine: Matrix is a non-owning (or owning) window into
// a flat buffer, carrying a deferred scalar multiplier that the recursion
// driver folds through the tree instead of materializing it at every level.
//
// A Matrix never copies on Block: subviews alias their parent's backing
// slice, which is required for C-block outputs (see package bilinear) and
// is safe only because callers never issue two concurrent writes to
// overlapping regions (enforced by the scheduler's join barrier, not by
// this package).
package matrix
