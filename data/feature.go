package data

import (
	"fmt"

	"github.com/google/uuid"
)

// LinkType selects how a tag's geometry applies to a feature's data.
type LinkType int

const (
	// Tagged features are sliced with the tag's own position/extent
	// geometry, applied to the feature data instead of the references.
	Tagged LinkType = iota
	// Indexed features hold one first-axis slice per multi-tag point;
	// point m selects slice m. Simple tags treat Indexed as Untagged.
	Indexed
	// Untagged features are returned whole.
	Untagged
)

// String renders the link type name.
func (lt LinkType) String() string {
	switch lt {
	case Tagged:
		return "Tagged"
	case Indexed:
		return "Indexed"
	case Untagged:
		return "Untagged"
	default:
		return fmt.Sprintf("LinkType(%d)", int(lt))
	}
}

// Feature attaches side data to a tag. The data array may be absent on
// a half-built feature; retrieval then reports
// core.ErrUninitializedEntity.
type Feature struct {
	id       string
	data     DataArray
	linkType LinkType
}

// newFeature is called by the owning tag's CreateFeature.
func newFeature(data DataArray, linkType LinkType) *Feature {
	return &Feature{id: uuid.NewString(), data: data, linkType: linkType}
}

// ID returns the entity identifier assigned at creation.
func (f *Feature) ID() string { return f.id }

// Data returns the feature's data array, nil when absent.
func (f *Feature) Data() DataArray { return f.data }

// LinkType returns the linkage kind.
func (f *Feature) LinkType() LinkType { return f.linkType }
