package access

import (
	"fmt"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/data"
	"github.com/saurabhiiit/nix/dimension"
	"github.com/saurabhiiit/nix/units"
)

// unitAt returns the tag unit for axis i, defaulting to no unit past
// the end of the list.
func unitAt(us []string, i int) string {
	if i < len(us) {
		return us[i]
	}

	return units.None
}

// GetOffsetAndCount resolves a simple tag against one of its arrays
// into an N-D (offset, count) window. Every axis maps the tag position
// through the axis dimension; axes covered by the tag extent map the
// position+extent endpoint too and take the index distance as count,
// floored at 1. Axes past the extent (or all axes, when no extent is
// set) get count 1.
//
// Returns core.ErrIncompatibleDimensions when the position length does
// not match the array's dimension count, or when the extent is present
// with a different length; mapping errors propagate from dimension.
// Complexity: O(rank) mappings.
func GetOffsetAndCount(tag *data.Tag, array data.DataArray) (core.Shape, core.Shape, error) {
	position := tag.Position()
	extent := tag.Extent()
	us := tag.Units()
	rank := array.DimensionCount()

	if rank != len(position) || (len(extent) > 0 && len(extent) != rank) {
		return nil, nil, fmt.Errorf(
			"access: tag %q position length %d / extent length %d do not match array rank %d: %w",
			tag.Name(), len(position), len(extent), rank, core.ErrIncompatibleDimensions)
	}

	offset := core.NewShape(rank, 0)
	count := core.NewShape(rank, 1)
	for i := 0; i < rank; i++ {
		dim, err := array.DimensionAt(i + 1)
		if err != nil {
			return nil, nil, err
		}
		u := unitAt(us, i)
		idx, err := dimension.PositionToIndex(position[i], u, dim)
		if err != nil {
			return nil, nil, err
		}
		offset[i] = idx
		if i < len(extent) {
			end, err := dimension.PositionToIndex(position[i]+extent[i], u, dim)
			if err != nil {
				return nil, nil, err
			}
			if c := end - idx; c > 1 {
				count[i] = c
			}
		}
	}

	return offset, count, nil
}

// GetOffsetAndCountAt resolves point index of a multi-tag against one
// of its arrays. The point's position row (and extent row, when an
// extents array is attached) is fetched from the positions array, then
// mapped exactly like a simple tag. Positions of shape [M] pair with
// 1-D arrays only; positions of shape [M, k] require k ≤ rank, and
// axes past k stay at offset 0 / count 1.
//
// Returns core.ErrOutOfBounds for an index at or past M (or past the
// extents rows), core.ErrIncompatibleDimensions for shape violations.
// Complexity: O(rank) mappings plus two O(rank) row reads.
func GetOffsetAndCountAt(tag *data.MultiTag, array data.DataArray, index int) (core.Shape, core.Shape, error) {
	positions := tag.Positions()
	extents := tag.Extents()
	if positions == nil {
		return nil, nil, fmt.Errorf("access: multitag %q has no positions: %w", tag.Name(), core.ErrOutOfBounds)
	}

	posShape := positions.Extent()
	if index < 0 || index >= posShape[0] {
		return nil, nil, fmt.Errorf("access: point %d out of bounds of the %d positions of multitag %q: %w",
			index, posShape[0], tag.Name(), core.ErrOutOfBounds)
	}

	var extShape core.Shape
	if extents != nil {
		extShape = extents.Extent()
		if index >= extShape[0] {
			return nil, nil, fmt.Errorf("access: point %d out of bounds of the %d extents of multitag %q: %w",
				index, extShape[0], tag.Name(), core.ErrOutOfBounds)
		}
	}

	rank := array.DimensionCount()
	if posShape.Rank() == 1 && rank != 1 {
		return nil, nil, fmt.Errorf("access: 1-D positions of multitag %q cannot address a rank-%d array: %w",
			tag.Name(), rank, core.ErrIncompatibleDimensions)
	}
	if posShape.Rank() > 2 || (posShape.Rank() > 1 && posShape[1] > rank) {
		return nil, nil, fmt.Errorf("access: positions shape %v of multitag %q does not fit a rank-%d array: %w",
			posShape, tag.Name(), rank, core.ErrIncompatibleDimensions)
	}
	if extents != nil && extShape.Rank() > 1 && extShape[1] > rank {
		return nil, nil, fmt.Errorf("access: extents shape %v of multitag %q does not fit a rank-%d array: %w",
			extShape, tag.Name(), rank, core.ErrIncompatibleDimensions)
	}

	row, err := readRow(positions, posShape, index)
	if err != nil {
		return nil, nil, err
	}

	us := tag.Units()
	offset := core.NewShape(rank, 0)
	count := core.NewShape(rank, 1)
	for i, p := range row {
		dim, err := array.DimensionAt(i + 1)
		if err != nil {
			return nil, nil, err
		}
		idx, err := dimension.PositionToIndex(p, unitAt(us, i), dim)
		if err != nil {
			return nil, nil, err
		}
		offset[i] = idx
	}

	if extents != nil {
		extRow, err := readRow(extents, extShape, index)
		if err != nil {
			return nil, nil, err
		}
		for i, e := range extRow {
			dim, err := array.DimensionAt(i + 1)
			if err != nil {
				return nil, nil, err
			}
			end, err := dimension.PositionToIndex(row[i]+e, unitAt(us, i), dim)
			if err != nil {
				return nil, nil, err
			}
			if c := end - offset[i]; c > 1 {
				count[i] = c
			}
		}
	}

	return offset, count, nil
}

// readRow fetches row m of a positions/extents array: one value for
// shape [M], the m-th k-vector for shape [M, k].
func readRow(array data.DataArray, shape core.Shape, m int) ([]float64, error) {
	if shape.Rank() == 1 {
		row := make([]float64, 1)
		if err := array.ReadWindow(row, core.Shape{1}, core.Shape{m}); err != nil {
			return nil, err
		}

		return row, nil
	}
	row := make([]float64, shape[1])
	if err := array.ReadWindow(row, core.Shape{1, shape[1]}, core.Shape{m, 0}); err != nil {
		return nil, err
	}

	return row, nil
}
