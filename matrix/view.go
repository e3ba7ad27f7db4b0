package matrix

// Matrix is a strided, column-major view over a flat buffer of Scalar
// elements. The logical value of element (i, j) is
//
//	multiplier * data[i + j*stride]
//
// The multiplier is deferred rather than eagerly applied: the recursion
// driver folds signs and scales through it and only materializes the
// product at the base case (see package gemm). At/Set are the
// bounds-checked, logical-value accessors public callers should reach for;
// Raw/SetRaw are the unchecked, un-scaled primitives the recursion engine
// itself uses so the multiplier is read once per matrix, not once per
// element.
//
// A Matrix is a small value type (three ints, one bool, one Scalar and a
// slice header); copying it is cheap and is how Block hands out O(1)
// subviews. Two distinct Matrix values may alias the same backing slice —
// required for C-block outputs — so callers must never issue concurrent
// writes to overlapping regions.
type Matrix[S Scalar] struct {
	rows, cols int
	stride     int
	data       []S
	owned      bool
	mult       S
}

// NewDense allocates an owning rows×cols Matrix, column-major, stride=rows,
// zero-initialized, with multiplier 1.
//
// Complexity: O(rows*cols) time and memory.
func NewDense[S Scalar](rows, cols int) (Matrix[S], error) {
	if rows <= 0 || cols <= 0 {
		return Matrix[S]{}, matrixErrorf("NewDense", ErrBadShape)
	}

	return Matrix[S]{
		rows:   rows,
		cols:   cols,
		stride: rows,
		data:   make([]S, rows*cols),
		owned:  true,
		mult:   1,
	}, nil
}

// Borrow wraps an existing column-major buffer as a non-owning Matrix. data
// must already be positioned at element (0, 0); stride is the column
// stride in elements and must be >= rows. The caller remains responsible
// for data's lifetime — Borrow never allocates or releases it.
func Borrow[S Scalar](data []S, stride, rows, cols int) (Matrix[S], error) {
	if rows <= 0 || cols <= 0 {
		return Matrix[S]{}, matrixErrorf("Borrow", ErrBadShape)
	}
	if stride < rows {
		return Matrix[S]{}, matrixErrorf("Borrow", ErrBadStride)
	}
	if len(data) < (cols-1)*stride+rows {
		return Matrix[S]{}, matrixErrorf("Borrow", ErrInsufficientBacking)
	}

	return Matrix[S]{
		rows:   rows,
		cols:   cols,
		stride: stride,
		data:   data,
		owned:  false,
		mult:   1,
	}, nil
}

// Rows returns the number of logical rows.
func (m Matrix[S]) Rows() int { return m.rows }

// Cols returns the number of logical columns.
func (m Matrix[S]) Cols() int { return m.cols }

// Stride returns the column stride in elements.
func (m Matrix[S]) Stride() int { return m.stride }

// IsOwned reports whether this view is responsible for its backing buffer.
func (m Matrix[S]) IsOwned() bool { return m.owned }

// Multiplier returns the deferred scalar currently carried by this view.
func (m Matrix[S]) Multiplier() S { return m.mult }

// SetMultiplier replaces the deferred multiplier. s must be non-zero; a
// zero-multiplier matrix is represented by explicit zeroing of the buffer
// instead (see ErrZeroMultiplier).
func (m *Matrix[S]) SetMultiplier(s S) error {
	if s == 0 {
		return matrixErrorf("SetMultiplier", ErrZeroMultiplier)
	}
	m.mult = s

	return nil
}

// UpdateMultiplier multiplies the deferred multiplier by s in place. Used by
// the recursion driver's single-operand coefficient folding (spec §4.4):
// when a linear combination has exactly one nonzero term, its coefficient is
// absorbed here instead of paying for a scratch allocation and an Add.
func (m *Matrix[S]) UpdateMultiplier(s S) error {
	if s == 0 {
		return matrixErrorf("UpdateMultiplier", ErrZeroMultiplier)
	}
	m.mult *= s

	return nil
}

// inBounds reports whether (i, j) addresses a valid element.
func (m Matrix[S]) inBounds(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the logical value multiplier()*raw(i,j), bounds-checked. This
// is the accessor public callers (tests, verification code reading a
// FastMatmul result) should use.
func (m Matrix[S]) At(i, j int) (S, error) {
	if !m.inBounds(i, j) {
		return 0, matrixErrorf("At", ErrOutOfRange)
	}

	return m.mult * m.data[i+j*m.stride], nil
}

// Set assigns the raw stored value at (i, j), bounds-checked. Set is
// equivalent to assigning the logical value exactly when Multiplier() == 1,
// which holds for every matrix an end user constructs via NewDense/Borrow
// before it enters the recursion engine.
func (m Matrix[S]) Set(i, j int, v S) error {
	if !m.inBounds(i, j) {
		return matrixErrorf("Set", ErrOutOfRange)
	}
	m.data[i+j*m.stride] = v

	return nil
}

// Raw returns the unscaled stored value at (i, j). Unchecked: it is a
// hot-path primitive used throughout the recursion driver and the
// linear-combination kernel, which operate only on shapes they constructed
// themselves. Bounds are validated once, at the public entry points (see
// ValidateProductShapes and ValidateSameShape), not on every element access.
func (m Matrix[S]) Raw(i, j int) S {
	return m.data[i+j*m.stride]
}

// SetRaw assigns the unscaled stored value at (i, j). Like Raw, unchecked.
func (m Matrix[S]) SetRaw(i, j int, v S) {
	m.data[i+j*m.stride] = v
}

// RawData returns the backing slice positioned at element (0, 0) of this
// view. Used by package gemm to hand the buffer to vendor BLAS without a
// copy; callers must respect Stride/Rows/Cols when interpreting it.
func (m Matrix[S]) RawData() []S { return m.data }

// Block returns the (i, j) tile of a uniform M×N grid over m, 0-based.
// Tile shape is floor(rows/M) x floor(cols/N); when the parent's
// dimensions are not evenly divisible, the grid covers only the top-left
// M*floor(rows/M) x N*floor(cols/N) region — the remainder is the
// responsibility of dynamic peeling, not this method.
//
// Block is O(1): it aliases the parent's backing slice and inherits the
// parent's multiplier. The returned view is always non-owning.
func (m Matrix[S]) Block(M, N, i, j int) Matrix[S] {
	tileRows := m.rows / M
	tileCols := m.cols / N
	offset := i*tileRows + j*tileCols*m.stride

	return Matrix[S]{
		rows:   tileRows,
		cols:   tileCols,
		stride: m.stride,
		data:   m.data[offset:],
		owned:  false,
		mult:   m.mult,
	}
}

// Slice returns the view over rows [rowStart, rowEnd) and columns
// [colStart, colEnd), aliasing the parent's backing slice and inheriting
// its multiplier. Unlike Block, the region need not be a uniform grid
// tile — this is what dynamic peeling (package bilinear) uses to address
// the residual slabs a uniform M×N grid cannot reach. Unchecked, like
// Block: callers are expected to have already validated the requested
// region against Rows/Cols.
func (m Matrix[S]) Slice(rowStart, rowEnd, colStart, colEnd int) Matrix[S] {
	offset := rowStart + colStart*m.stride

	return Matrix[S]{
		rows:   rowEnd - rowStart,
		cols:   colEnd - colStart,
		stride: m.stride,
		data:   m.data[offset:],
		owned:  false,
		mult:   m.mult,
	}
}

// Release drops this view's ownership of its backing buffer. It is a no-op
// on non-owning (borrowed or subview) matrices. Release is idempotent and
// does not affect other views aliasing the same storage — Go's garbage
// collector, not this call, reclaims the buffer once unreferenced; Release
// exists so scratch-matrix lifetimes in the recursion driver read the same
// way the spec's allocate/release lifecycle does.
func (m *Matrix[S]) Release() {
	if !m.owned {
		return
	}
	m.data = nil
	m.rows, m.cols = 0, 0
	m.owned = false
}
