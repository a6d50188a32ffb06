package data

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/dimension"
)

// DataArray is the read surface the region-of-interest engine consumes:
// a typed N-D numeric container with per-axis dimension descriptors and
// windowed reads. Implementations must be safe for concurrent readers.
type DataArray interface {
	// DimensionCount returns the number of dimension descriptors, which
	// equals the rank for a fully described array.
	DimensionCount() int
	// DimensionAt returns the descriptor of the given 1-based axis.
	// Returns core.ErrOutOfBounds outside 1..DimensionCount.
	DimensionAt(axis int) (dimension.Dimension, error)
	// Extent returns a copy of the array's N-D size.
	Extent() core.Shape
	// ReadWindow fills dst with the elements of the (offset, count)
	// window in row-major order. dst must hold count.ElementCount()
	// values. Returns core.ErrInvalidRank on rank mismatches and
	// core.ErrOutOfBounds when the window leaves the extent.
	ReadWindow(dst []float64, count, offset core.Shape) error
}

// Array is an in-memory row-major DataArray. It owns its values and
// dimension descriptors; both are fixed after construction apart from
// appending descriptors up to the rank. Immutable data makes concurrent
// reads safe without locks.
type Array struct {
	id     string
	name   string
	extent core.Shape
	values []float64
	dims   []dimension.Dimension
}

// NewArray builds an in-memory array from an extent and its row-major
// values. The extent and values are deep-copied.
// Returns core.ErrInvalidRank on a rank-0 extent, core.ErrOutOfBounds
// on a negative component, and core.ErrIncompatibleDimensions when the
// value count does not match the extent's element count.
// Complexity: O(len(values)).
func NewArray(name string, extent core.Shape, values []float64) (*Array, error) {
	if extent.Rank() == 0 {
		return nil, fmt.Errorf("data: array %q needs at least one axis: %w", name, core.ErrInvalidRank)
	}
	for i, e := range extent {
		if e < 0 {
			return nil, fmt.Errorf("data: array %q extent axis %d is negative: %w", name, i, core.ErrOutOfBounds)
		}
	}
	if len(values) != extent.ElementCount() {
		return nil, fmt.Errorf("data: array %q holds %d values for extent %v: %w",
			name, len(values), extent, core.ErrIncompatibleDimensions)
	}
	own := make([]float64, len(values))
	copy(own, values)

	return &Array{
		id:     uuid.NewString(),
		name:   name,
		extent: extent.Clone(),
		values: own,
	}, nil
}

// ID returns the entity identifier assigned at creation.
func (a *Array) ID() string { return a.id }

// Name returns the array name.
func (a *Array) Name() string { return a.name }

// Extent returns a copy of the array's N-D size.
func (a *Array) Extent() core.Shape { return a.extent.Clone() }

// DimensionCount returns the number of appended dimension descriptors.
func (a *Array) DimensionCount() int { return len(a.dims) }

// DimensionAt returns the descriptor of the 1-based axis.
func (a *Array) DimensionAt(axis int) (dimension.Dimension, error) {
	if axis < 1 || axis > len(a.dims) {
		return dimension.Dimension{}, fmt.Errorf("data: array %q has no dimension %d: %w", a.name, axis, core.ErrOutOfBounds)
	}

	return a.dims[axis-1], nil
}

// AppendSampledDimension appends a Sampled descriptor for the next
// axis. Appending past the rank returns core.ErrOutOfBounds.
func (a *Array) AppendSampledDimension(interval, offset float64, unit string) (dimension.Dimension, error) {
	d, err := dimension.NewSampled(interval, offset, unit)
	if err != nil {
		return dimension.Dimension{}, err
	}

	return d, a.appendDimension(d)
}

// AppendRangeDimension appends a Range descriptor for the next axis.
func (a *Array) AppendRangeDimension(ticks []float64, unit string) (dimension.Dimension, error) {
	d, err := dimension.NewRange(ticks, unit)
	if err != nil {
		return dimension.Dimension{}, err
	}

	return d, a.appendDimension(d)
}

// AppendSetDimension appends a Set descriptor for the next axis.
func (a *Array) AppendSetDimension(labels []string) (dimension.Dimension, error) {
	d := dimension.NewSet(labels)

	return d, a.appendDimension(d)
}

func (a *Array) appendDimension(d dimension.Dimension) error {
	if len(a.dims) >= a.extent.Rank() {
		return fmt.Errorf("data: array %q already describes all %d axes: %w",
			a.name, a.extent.Rank(), core.ErrOutOfBounds)
	}
	a.dims = append(a.dims, d)

	return nil
}

// ReadWindow fills dst with the (offset, count) window in row-major
// order. Validation precedes any copying.
// Complexity: O(count.ElementCount()).
func (a *Array) ReadWindow(dst []float64, count, offset core.Shape) error {
	if err := checkWindow(a.extent, offset, count); err != nil {
		return fmt.Errorf("data: array %q: %w", a.name, err)
	}
	need := count.ElementCount()
	if len(dst) < need {
		return fmt.Errorf("data: array %q window %v needs %d values, buffer holds %d: %w",
			a.name, count, need, len(dst), core.ErrOutOfBounds)
	}
	if need == 0 {
		return nil
	}

	// Row-major strides of the full array.
	rank := a.extent.Rank()
	strides := make([]int, rank)
	strides[rank-1] = 1
	for i := rank - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * a.extent[i+1]
	}

	// Walk the window with an odometer over the outer axes, copying the
	// contiguous innermost run at each step.
	run := count[rank-1]
	cursor := make(core.Shape, rank)
	base := 0
	for i := 0; i < rank; i++ {
		base += offset[i] * strides[i]
	}
	out := 0
	for {
		src := base
		for i := 0; i < rank-1; i++ {
			src += cursor[i] * strides[i]
		}
		copy(dst[out:out+run], a.values[src:src+run])
		out += run

		// Advance the odometer, innermost-but-one axis first.
		i := rank - 2
		for ; i >= 0; i-- {
			cursor[i]++
			if cursor[i] < count[i] {
				break
			}
			cursor[i] = 0
		}
		if i < 0 {
			return nil
		}
	}
}

// checkWindow validates an (offset, count) window against an extent.
func checkWindow(extent, offset, count core.Shape) error {
	if offset.Rank() != extent.Rank() || count.Rank() != extent.Rank() {
		return fmt.Errorf("window offset %v count %v against extent %v: %w",
			offset, count, extent, core.ErrInvalidRank)
	}
	for i := range extent {
		if offset[i] < 0 || count[i] < 0 || offset[i]+count[i] > extent[i] {
			return fmt.Errorf("window offset %v count %v leaves extent %v on axis %d: %w",
				offset, count, extent, i, core.ErrOutOfBounds)
		}
	}

	return nil
}
