// Package dimension core types: the Kind enum and the Dimension tagged
// variant with its validating constructors.
package dimension

import (
	"fmt"
	"math"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/units"
)

// Kind selects the per-axis semantics of a Dimension.
type Kind int

const (
	// Sampled describes a uniformly sampled axis: positions are
	// offset + k*interval for integer k.
	Sampled Kind = iota
	// Range describes an irregularly ticked axis: positions are drawn
	// from a monotonic non-decreasing tick list.
	Range
	// Set describes a categorical axis: positions are label indices.
	Set
)

// String renders the kind name.
func (k Kind) String() string {
	switch k {
	case Sampled:
		return "Sampled"
	case Range:
		return "Range"
	case Set:
		return "Set"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Dimension is one axis descriptor of a data array: a tagged variant
// over the three kinds. Zero value is an unusable Sampled dimension;
// always build through the constructors. Dimensions are immutable once
// built, so sharing them across goroutines is safe.
type Dimension struct {
	kind     Kind
	interval float64 // Sampled: sampling interval, > 0
	offset   float64 // Sampled: physical position of index 0
	unit     string  // Sampled/Range: units.None when absent
	ticks    []float64
	labels   []string
}

// NewSampled builds a Sampled dimension from a positive finite sampling
// interval, an offset (physical position of index 0) and an optional
// unit (pass "" or "none" for none).
// Returns core.ErrIncompatibleDimensions on a non-positive or
// non-finite interval.
func NewSampled(interval, offset float64, unit string) (Dimension, error) {
	if !(interval > 0) || math.IsInf(interval, 0) {
		return Dimension{}, fmt.Errorf("dimension: sampling interval %v must be positive and finite: %w",
			interval, core.ErrIncompatibleDimensions)
	}

	return Dimension{kind: Sampled, interval: interval, offset: offset, unit: units.Sanitize(unit)}, nil
}

// NewRange builds a Range dimension from a non-empty monotonic
// non-decreasing tick list and an optional unit. Ticks are deep-copied.
// Returns core.ErrIncompatibleDimensions on an empty, non-finite or
// decreasing tick list.
func NewRange(ticks []float64, unit string) (Dimension, error) {
	if len(ticks) == 0 {
		return Dimension{}, fmt.Errorf("dimension: range ticks must not be empty: %w", core.ErrIncompatibleDimensions)
	}
	own := make([]float64, len(ticks))
	copy(own, ticks)
	for i, tick := range own {
		if math.IsNaN(tick) || math.IsInf(tick, 0) {
			return Dimension{}, fmt.Errorf("dimension: tick %d is not finite: %w", i, core.ErrIncompatibleDimensions)
		}
		if i > 0 && tick < own[i-1] {
			return Dimension{}, fmt.Errorf("dimension: ticks must be monotonic non-decreasing (tick %d): %w",
				i, core.ErrIncompatibleDimensions)
		}
	}

	return Dimension{kind: Range, ticks: own, unit: units.Sanitize(unit)}, nil
}

// NewSet builds a Set dimension from an ordered label list, possibly
// empty. Labels are deep-copied. Set dimensions carry no unit.
func NewSet(labels []string) Dimension {
	own := make([]string, len(labels))
	copy(own, labels)

	return Dimension{kind: Set, labels: own, unit: units.None}
}

// Kind returns the dimension kind.
func (d Dimension) Kind() Kind { return d.kind }

// SamplingInterval returns the interval of a Sampled dimension and 0
// for the other kinds.
func (d Dimension) SamplingInterval() float64 { return d.interval }

// Offset returns the offset of a Sampled dimension and 0 for the other
// kinds.
func (d Dimension) Offset() float64 { return d.offset }

// Unit returns the dimension unit, units.None when absent. Set
// dimensions always report units.None.
func (d Dimension) Unit() string { return d.unit }

// Ticks returns a copy of a Range dimension's tick list, nil for the
// other kinds.
func (d Dimension) Ticks() []float64 {
	if d.kind != Range {
		return nil
	}
	c := make([]float64, len(d.ticks))
	copy(c, d.ticks)

	return c
}

// Labels returns a copy of a Set dimension's label list, nil for the
// other kinds.
func (d Dimension) Labels() []string {
	if d.kind != Set {
		return nil
	}
	c := make([]string, len(d.labels))
	copy(c, d.labels)

	return c
}
