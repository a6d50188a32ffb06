package data

import (
	"fmt"

	"github.com/saurabhiiit/nix/core"
)

// DataView is a deferred-read handle over one (offset, count) window of
// a DataArray. It owns no data: reads translate view-relative
// coordinates into array coordinates and go through the array. A view
// borrows the array's identity and is valid while the array exists.
type DataView struct {
	array  DataArray
	offset core.Shape
	count  core.Shape
}

// NewDataView binds an array to a window after checking the window lies
// inside the array's extent (runtime validity in place of lifetime
// encoding). Returns core.ErrUninitializedEntity for a nil array,
// core.ErrInvalidRank and core.ErrOutOfBounds from the window check.
// Complexity: O(rank).
func NewDataView(array DataArray, offset, count core.Shape) (*DataView, error) {
	if array == nil {
		return nil, fmt.Errorf("data: view needs an array: %w", core.ErrUninitializedEntity)
	}
	if err := checkWindow(array.Extent(), offset, count); err != nil {
		return nil, fmt.Errorf("data: view: %w", err)
	}

	return &DataView{array: array, offset: offset.Clone(), count: count.Clone()}, nil
}

// Array returns the underlying array handle.
func (v *DataView) Array() DataArray { return v.array }

// Offset returns a copy of the window offset in array coordinates.
func (v *DataView) Offset() core.Shape { return v.offset.Clone() }

// Count returns a copy of the window's per-axis sample counts.
func (v *DataView) Count() core.Shape { return v.count.Clone() }

// ElementCount returns the number of elements the view covers.
func (v *DataView) ElementCount() int { return v.count.ElementCount() }

// ReadWindow reads a sub-window of the view. offset is view-relative;
// the sub-window must lie inside the view's count, else
// core.ErrOutOfBounds. dst must hold count.ElementCount() values.
// Complexity: O(elements read).
func (v *DataView) ReadWindow(dst []float64, count, offset core.Shape) error {
	if err := checkWindow(v.count, offset, count); err != nil {
		return fmt.Errorf("data: view: %w", err)
	}
	abs, err := v.offset.Plus(offset)
	if err != nil {
		return fmt.Errorf("data: view: %w", err)
	}

	return v.array.ReadWindow(dst, count, abs)
}

// ReadAll reads the entire window into dst, which must hold
// ElementCount() values.
// Complexity: O(ElementCount()).
func (v *DataView) ReadAll(dst []float64) error {
	return v.ReadWindow(dst, v.count, core.NewShape(v.count.Rank(), 0))
}
