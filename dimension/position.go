package dimension

import (
	"fmt"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/units"
)

// PositionToIndex maps a physical position with an accompanying unit
// onto an axis index of dim. The caller's unit is "" or "none" when the
// position is unitless. Dispatch is a single switch over the kind; the
// unit policy differs per kind:
//
//   - Sampled: the caller and the dimension must agree on having a unit
//     (either both carry one or neither does); when both do, the
//     position is rescaled into the dimension unit before indexing.
//   - Range: rescaled only when both units are present; a missing unit
//     on either side skips scaling.
//   - Set: any caller unit is rejected; the index is bounds-checked
//     against the labels when labels exist.
//
// Complexity: O(1) for Sampled/Set, O(log n) for Range.
func PositionToIndex(position float64, unit string, dim Dimension) (int, error) {
	switch dim.Kind() {
	case Set:
		return setToIndex(position, unit, dim)
	case Range:
		return rangeToIndex(position, unit, dim)
	default:
		return sampledToIndex(position, unit, dim)
	}
}

// sampledToIndex applies the strict both-or-neither unit rule, then
// delegates to IndexOf.
func sampledToIndex(position float64, unit string, dim Dimension) (int, error) {
	callerHas := !units.IsNone(unit)
	dimHas := !units.IsNone(dim.Unit())
	if callerHas != dimHas {
		return 0, fmt.Errorf("dimension: units of position (%q) and sampled dimension (%q) must both be given: %w",
			unit, dim.Unit(), core.ErrIncompatibleDimensions)
	}
	scaling := 1.0
	if callerHas {
		var err error
		if scaling, err = units.Scaling(unit, dim.Unit()); err != nil {
			return 0, fmt.Errorf("dimension: position unit %q does not scale to sampled dimension unit %q: %w",
				unit, dim.Unit(), core.ErrIncompatibleDimensions)
		}
	}

	return dim.IndexOf(position * scaling), nil
}

// setToIndex rejects any caller unit and bounds-checks against the
// labels when the dimension carries them.
func setToIndex(position float64, unit string, dim Dimension) (int, error) {
	if !units.IsNone(unit) {
		return 0, fmt.Errorf("dimension: cannot apply position unit %q to a set dimension: %w",
			unit, core.ErrIncompatibleDimensions)
	}
	index := dim.IndexOf(position)
	if len(dim.labels) > 0 && index >= len(dim.labels) {
		return 0, fmt.Errorf("dimension: position %v exceeds the %d labels of the set dimension: %w",
			position, len(dim.labels), core.ErrOutOfBounds)
	}

	return index, nil
}

// rangeToIndex rescales when both units are present, tolerates a
// missing unit on either side, then delegates to IndexOf.
func rangeToIndex(position float64, unit string, dim Dimension) (int, error) {
	scaling := 1.0
	if !units.IsNone(unit) && !units.IsNone(dim.Unit()) {
		var err error
		if scaling, err = units.Scaling(unit, dim.Unit()); err != nil {
			return 0, fmt.Errorf("dimension: position unit %q does not scale to range dimension unit %q: %w",
				unit, dim.Unit(), core.ErrIncompatibleDimensions)
		}
	}

	return dim.IndexOf(position * scaling), nil
}
