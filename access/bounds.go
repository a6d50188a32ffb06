package access

import (
	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/data"
)

// PositionInData reports whether pos addresses an element of the
// array: ranks match and every component lies in [0, extent).
// Complexity: O(rank).
func PositionInData(array data.DataArray, pos core.Shape) bool {
	extent := array.Extent()
	if pos.Rank() != extent.Rank() {
		return false
	}
	for i := range extent {
		if pos[i] < 0 || pos[i] >= extent[i] {
			return false
		}
	}

	return true
}

// PositionAndExtentInData reports whether the (offset, count) window
// lies inside the array: the window's last element, offset+count-1 per
// axis, must address an element. Counts are expected to be at least 1
// (the resolver guarantees it); a zero count would make the check pass
// for the preceding element instead.
// Complexity: O(rank).
func PositionAndExtentInData(array data.DataArray, offset, count core.Shape) bool {
	last, err := offset.Plus(count)
	if err != nil {
		return false
	}

	return PositionInData(array, last.SubScalar(1))
}
