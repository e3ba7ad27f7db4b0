package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vlarn/fastmatmul/matrix"
)

func TestNewDense_ZeroedAndShaped(t *testing.T) {
	m, err := matrix.NewDense[float64](3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())
	assert.Equal(t, 3, m.Stride())
	assert.Equal(t, float64(1), m.Multiplier())
	for j := 0; j < 4; j++ {
		for i := 0; i < 3; i++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}
}

func TestAt_OutOfRange(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrOutOfRange))

	require.Error(t, m.Set(0, -1, 1))
}

func TestNewDense_InvalidShape(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))

	_, err = matrix.NewDense[float64](4, -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrBadShape))
}

func TestBorrow_Validates(t *testing.T) {
	data := make([]float64, 6)
	_, err := matrix.Borrow(data, 1, 3, 2) // stride < rows
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrBadStride))

	_, err = matrix.Borrow(data, 3, 3, 3) // too short
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrInsufficientBacking))

	m, err := matrix.Borrow(data, 3, 3, 2)
	require.NoError(t, err)
	assert.False(t, m.IsOwned())
}

func TestBlock_AliasesParentAndInheritsMultiplier(t *testing.T) {
	m, err := matrix.NewDense[float64](4, 4)
	require.NoError(t, err)
	require.NoError(t, m.SetMultiplier(-2))

	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			m.SetRaw(i, j, float64(i+j*4))
		}
	}

	// 2x2 grid of 2x2 tiles.
	b11 := m.Block(2, 2, 0, 0)
	b22 := m.Block(2, 2, 1, 1)

	assert.Equal(t, 2, b11.Rows())
	assert.Equal(t, 2, b11.Cols())
	assert.Equal(t, m.Stride(), b11.Stride())
	assert.Equal(t, m.Multiplier(), b11.Multiplier())

	// b11 should alias m's top-left block.
	assert.Equal(t, m.Raw(0, 0), b11.Raw(0, 0))
	assert.Equal(t, m.Raw(1, 1), b11.Raw(1, 1))

	// b22 should alias m's bottom-right block.
	assert.Equal(t, m.Raw(2, 2), b22.Raw(0, 0))
	assert.Equal(t, m.Raw(3, 3), b22.Raw(1, 1))

	// Writing through a subview is visible in the parent (required for C blocks).
	b11.SetRaw(0, 0, 99)
	assert.Equal(t, float64(99), m.Raw(0, 0))
}

func TestBlock_NonDivisibleGridCoversFloorRegionOnly(t *testing.T) {
	m, err := matrix.NewDense[float64](5, 5)
	require.NoError(t, err)

	b := m.Block(2, 2, 0, 0)
	assert.Equal(t, 2, b.Rows()) // floor(5/2) = 2, remainder handled by peeling
	assert.Equal(t, 2, b.Cols())
}

func TestSlice_AliasesArbitraryRectangleAndInheritsMultiplier(t *testing.T) {
	m, err := matrix.NewDense[float64](5, 5)
	require.NoError(t, err)
	require.NoError(t, m.SetMultiplier(3))

	for j := 0; j < 5; j++ {
		for i := 0; i < 5; i++ {
			m.SetRaw(i, j, float64(i+j*5))
		}
	}

	// Bottom two rows, rightmost three columns — not a uniform grid tile.
	s := m.Slice(3, 5, 2, 5)
	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, 3, s.Cols())
	assert.Equal(t, m.Stride(), s.Stride())
	assert.Equal(t, m.Multiplier(), s.Multiplier())

	assert.Equal(t, m.Raw(3, 2), s.Raw(0, 0))
	assert.Equal(t, m.Raw(4, 4), s.Raw(1, 2))

	s.SetRaw(0, 0, 99)
	assert.Equal(t, float64(99), m.Raw(3, 2))
}

func TestMultiplier_ZeroRejected(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	err = m.SetMultiplier(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrZeroMultiplier))

	err = m.UpdateMultiplier(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrZeroMultiplier))
}

func TestUpdateMultiplier_Accumulates(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)

	require.NoError(t, m.UpdateMultiplier(-1))
	require.NoError(t, m.UpdateMultiplier(3))
	assert.Equal(t, float64(-3), m.Multiplier())
}

func TestRelease_OwnedOnlyAndIdempotent(t *testing.T) {
	owned, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	owned.Release()
	assert.Equal(t, 0, owned.Rows())
	owned.Release() // idempotent

	data := make([]float64, 4)
	borrowed, err := matrix.Borrow(data, 2, 2, 2)
	require.NoError(t, err)
	borrowed.Release() // no-op on non-owning views
	assert.Equal(t, 2, borrowed.Rows())
}

func TestClose(t *testing.T) {
	a, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	b, err := matrix.NewDense[float64](2, 2)
	require.NoError(t, err)
	a.SetRaw(0, 0, 1.0)
	b.SetRaw(0, 0, 1.0+1e-12)
	assert.True(t, matrix.Close(a, b))
	assert.False(t, matrix.Close(a, b, matrix.WithEpsilon(0)))
}

func TestValidateProductShapes(t *testing.T) {
	A, _ := matrix.NewDense[float64](2, 3)
	B, _ := matrix.NewDense[float64](3, 4)
	C, _ := matrix.NewDense[float64](2, 4)
	assert.NoError(t, matrix.ValidateProductShapes(A, B, C))

	bad, _ := matrix.NewDense[float64](5, 5)
	assert.Error(t, matrix.ValidateProductShapes(A, bad, C))
}
