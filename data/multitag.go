package data

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/units"
)

// MultiTag is a repeated tag: M point annotations stored in a positions
// array of shape [M] or [M, rank], an optional extents array of the
// same shape, a per-axis unit list and referenced arrays.
type MultiTag struct {
	id        string
	name      string
	positions DataArray
	extents   DataArray
	units     []string
	refs      []DataArray
	features  []*Feature
}

// NewMultiTag builds a multi-tag around its positions array.
// Returns core.ErrUninitializedEntity for nil positions.
func NewMultiTag(name string, positions DataArray) (*MultiTag, error) {
	if positions == nil {
		return nil, fmt.Errorf("data: multitag %q needs a positions array: %w", name, core.ErrUninitializedEntity)
	}

	return &MultiTag{id: uuid.NewString(), name: name, positions: positions}, nil
}

// ID returns the entity identifier assigned at creation.
func (t *MultiTag) ID() string { return t.id }

// Name returns the multi-tag name.
func (t *MultiTag) Name() string { return t.name }

// Positions returns the positions array.
func (t *MultiTag) Positions() DataArray { return t.positions }

// SetExtents attaches (or with nil detaches) the extents array. A
// non-nil extents array must have exactly the positions array's shape,
// else core.ErrIncompatibleDimensions.
func (t *MultiTag) SetExtents(extents DataArray) error {
	if extents == nil {
		t.extents = nil

		return nil
	}
	if !extents.Extent().Equal(t.positions.Extent()) {
		return fmt.Errorf("data: multitag %q extents shape %v must match positions shape %v: %w",
			t.name, extents.Extent(), t.positions.Extent(), core.ErrIncompatibleDimensions)
	}
	t.extents = extents

	return nil
}

// Extents returns the extents array, nil when absent.
func (t *MultiTag) Extents() DataArray { return t.extents }

// SetUnits replaces the per-axis unit list, sanitizing each entry. The
// list may be shorter than the rank; missing entries default to no
// unit.
func (t *MultiTag) SetUnits(us []string) {
	if us == nil {
		t.units = nil

		return
	}
	own := make([]string, len(us))
	for i, u := range us {
		own[i] = units.Sanitize(u)
	}
	t.units = own
}

// Units returns a copy of the per-axis unit list.
func (t *MultiTag) Units() []string {
	us := make([]string, len(t.units))
	copy(us, t.units)

	return us
}

// AddReference appends a referenced array. Nil references are ignored.
func (t *MultiTag) AddReference(array DataArray) {
	if array == nil {
		return
	}
	t.refs = append(t.refs, array)
}

// ReferenceCount returns the number of referenced arrays.
func (t *MultiTag) ReferenceCount() int { return len(t.refs) }

// Reference returns the referenced array at index i.
func (t *MultiTag) Reference(i int) (DataArray, error) {
	if i < 0 || i >= len(t.refs) {
		return nil, fmt.Errorf("data: multitag %q has no reference %d: %w", t.name, i, core.ErrOutOfBounds)
	}

	return t.refs[i], nil
}

// References returns a copy of the reference list.
func (t *MultiTag) References() []DataArray {
	refs := make([]DataArray, len(t.refs))
	copy(refs, t.refs)

	return refs
}

// CreateFeature attaches side data with the given linkage kind and
// returns the new feature.
func (t *MultiTag) CreateFeature(data DataArray, linkType LinkType) *Feature {
	f := newFeature(data, linkType)
	t.features = append(t.features, f)

	return f
}

// FeatureCount returns the number of attached features.
func (t *MultiTag) FeatureCount() int { return len(t.features) }

// Feature returns the feature at index i.
func (t *MultiTag) Feature(i int) (*Feature, error) {
	if i < 0 || i >= len(t.features) {
		return nil, fmt.Errorf("data: multitag %q has no feature %d: %w", t.name, i, core.ErrOutOfBounds)
	}

	return t.features[i], nil
}
