package access

import (
	"fmt"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/data"
)

// RetrieveData resolves a simple tag against its reference at refIndex
// and returns a deferred-read view over the selected window.
//
// Returns core.ErrOutOfBounds when the tag has no references, the
// index is out of range, or the resolved window leaves the array;
// resolution errors propagate.
// Complexity: O(rank) resolution; no data is read.
func RetrieveData(tag *data.Tag, refIndex int) (*data.DataView, error) {
	if tag.ReferenceCount() == 0 {
		return nil, fmt.Errorf("access: tag %q has no references: %w", tag.Name(), core.ErrOutOfBounds)
	}
	ref, err := tag.Reference(refIndex)
	if err != nil {
		return nil, err
	}

	offset, count, err := GetOffsetAndCount(tag, ref)
	if err != nil {
		return nil, err
	}
	if !PositionAndExtentInData(ref, offset, count) {
		return nil, fmt.Errorf("access: tag %q slice offset %v count %v leaves the extent of the referenced array: %w",
			tag.Name(), offset, count, core.ErrOutOfBounds)
	}

	return data.NewDataView(ref, offset, count)
}

// RetrieveDataAt resolves point posIndex of a multi-tag against its
// reference at refIndex and returns a deferred-read view.
// Complexity: O(rank) resolution plus the positions/extents row reads.
func RetrieveDataAt(tag *data.MultiTag, posIndex, refIndex int) (*data.DataView, error) {
	if tag.ReferenceCount() == 0 {
		return nil, fmt.Errorf("access: multitag %q has no references: %w", tag.Name(), core.ErrOutOfBounds)
	}
	ref, err := tag.Reference(refIndex)
	if err != nil {
		return nil, err
	}

	offset, count, err := GetOffsetAndCountAt(tag, ref, posIndex)
	if err != nil {
		return nil, err
	}
	if !PositionAndExtentInData(ref, offset, count) {
		return nil, fmt.Errorf("access: multitag %q slice offset %v count %v leaves the extent of the referenced array: %w",
			tag.Name(), offset, count, core.ErrOutOfBounds)
	}

	return data.NewDataView(ref, offset, count)
}

// RetrieveFeatureData returns a view over the data of the tag's feature
// at featIndex. Tagged features are sliced with the tag's geometry
// applied to the feature data; Indexed and Untagged features are
// returned whole on the simple-tag form.
//
// Returns core.ErrOutOfBounds on feature index violations or an
// escaping Tagged window, core.ErrUninitializedEntity when the feature
// carries no data.
func RetrieveFeatureData(tag *data.Tag, featIndex int) (*data.DataView, error) {
	if tag.FeatureCount() == 0 {
		return nil, fmt.Errorf("access: tag %q has no features: %w", tag.Name(), core.ErrOutOfBounds)
	}
	feat, err := tag.Feature(featIndex)
	if err != nil {
		return nil, err
	}
	fd := feat.Data()
	if fd == nil {
		return nil, fmt.Errorf("access: feature %d of tag %q has no data: %w",
			featIndex, tag.Name(), core.ErrUninitializedEntity)
	}

	if feat.LinkType() == data.Tagged {
		offset, count, err := GetOffsetAndCount(tag, fd)
		if err != nil {
			return nil, err
		}
		if !PositionAndExtentInData(fd, offset, count) {
			return nil, fmt.Errorf("access: tag %q slice offset %v count %v leaves the extent of the feature data: %w",
				tag.Name(), offset, count, core.ErrOutOfBounds)
		}

		return data.NewDataView(fd, offset, count)
	}

	// Indexed and Untagged both yield the whole data on a simple tag.
	return fullView(fd)
}

// RetrieveFeatureDataAt returns a view over the data of the multi-tag's
// feature at featIndex for point posIndex. Tagged applies the point's
// geometry to the feature data; Indexed selects first-axis slice
// posIndex; Untagged returns the whole data.
func RetrieveFeatureDataAt(tag *data.MultiTag, posIndex, featIndex int) (*data.DataView, error) {
	if tag.FeatureCount() == 0 {
		return nil, fmt.Errorf("access: multitag %q has no features: %w", tag.Name(), core.ErrOutOfBounds)
	}
	feat, err := tag.Feature(featIndex)
	if err != nil {
		return nil, err
	}
	fd := feat.Data()
	if fd == nil {
		return nil, fmt.Errorf("access: feature %d of multitag %q has no data: %w",
			featIndex, tag.Name(), core.ErrUninitializedEntity)
	}

	switch feat.LinkType() {
	case data.Tagged:
		offset, count, err := GetOffsetAndCountAt(tag, fd, posIndex)
		if err != nil {
			return nil, err
		}
		if !PositionAndExtentInData(fd, offset, count) {
			return nil, fmt.Errorf("access: multitag %q slice offset %v count %v leaves the extent of the feature data: %w",
				tag.Name(), offset, count, core.ErrOutOfBounds)
		}

		return data.NewDataView(fd, offset, count)

	case data.Indexed:
		extent := fd.Extent()
		if posIndex < 0 || posIndex >= extent[0] {
			return nil, fmt.Errorf("access: point %d exceeds the %d slices of the indexed feature of multitag %q: %w",
				posIndex, extent[0], tag.Name(), core.ErrOutOfBounds)
		}
		offset := core.NewShape(extent.Rank(), 0)
		offset[0] = posIndex
		count := extent.Clone()
		count[0] = 1
		if !PositionAndExtentInData(fd, offset, count) {
			return nil, fmt.Errorf("access: multitag %q slice offset %v count %v leaves the extent of the feature data: %w",
				tag.Name(), offset, count, core.ErrOutOfBounds)
		}

		return data.NewDataView(fd, offset, count)

	default:
		return fullView(fd)
	}
}

// fullView wraps an array's entire extent in a view.
func fullView(array data.DataArray) (*data.DataView, error) {
	extent := array.Extent()

	return data.NewDataView(array, core.NewShape(extent.Rank(), 0), extent)
}
