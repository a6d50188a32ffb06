package data_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/data"
)

// newMatrix builds the 3×4 test array 0..11.
func newMatrix(t *testing.T) *data.Array {
	t.Helper()
	a, err := data.NewArray("m", core.Shape{3, 4}, seq(12))
	require.NoError(t, err)

	return a
}

// TestNewDataView_Validation pins the runtime validity check: nil
// arrays, rank mismatches and escaping windows are rejected up front.
func TestNewDataView_Validation(t *testing.T) {
	a := newMatrix(t)

	_, err := data.NewDataView(nil, core.Shape{0}, core.Shape{1})
	assert.ErrorIs(t, err, core.ErrUninitializedEntity)

	_, err = data.NewDataView(a, core.Shape{0}, core.Shape{1})
	assert.ErrorIs(t, err, core.ErrInvalidRank)

	_, err = data.NewDataView(a, core.Shape{2, 3}, core.Shape{2, 2})
	assert.ErrorIs(t, err, core.ErrOutOfBounds)

	v, err := data.NewDataView(a, core.Shape{1, 1}, core.Shape{2, 2})
	require.NoError(t, err)
	assert.Equal(t, core.Shape{1, 1}, v.Offset())
	assert.Equal(t, core.Shape{2, 2}, v.Count())
	assert.Equal(t, 4, v.ElementCount())
}

// TestDataView_ReadAll reads the whole window through the view.
func TestDataView_ReadAll(t *testing.T) {
	v, err := data.NewDataView(newMatrix(t), core.Shape{1, 1}, core.Shape{2, 2})
	require.NoError(t, err)

	dst := make([]float64, 4)
	require.NoError(t, v.ReadAll(dst))
	assert.Equal(t, []float64{5, 6, 9, 10}, dst)
}

// TestDataView_ReadWindow_Translation: view-relative (0,1) count (2,1)
// lands on array column 2 inside the view window.
func TestDataView_ReadWindow_Translation(t *testing.T) {
	v, err := data.NewDataView(newMatrix(t), core.Shape{1, 1}, core.Shape{2, 2})
	require.NoError(t, err)

	dst := make([]float64, 2)
	require.NoError(t, v.ReadWindow(dst, core.Shape{2, 1}, core.Shape{0, 1}))
	assert.Equal(t, []float64{6, 10}, dst)
}

// TestDataView_ReadWindow_Clipped: a sub-window escaping the view is
// ErrOutOfBounds even though it would fit the underlying array.
func TestDataView_ReadWindow_Clipped(t *testing.T) {
	v, err := data.NewDataView(newMatrix(t), core.Shape{1, 1}, core.Shape{2, 2})
	require.NoError(t, err)

	dst := make([]float64, 2)
	err = v.ReadWindow(dst, core.Shape{1, 2}, core.Shape{0, 1})
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}
