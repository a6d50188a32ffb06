package data

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/units"
)

// Tag is a point-plus-extent annotation in physical coordinates:
// a position vector, an optional extent vector of the same length, an
// optional per-axis unit list, and the arrays the annotation refers to.
// Rank agreement with a referenced array is validated at resolve time,
// not at set time — a tag may reference arrays before it is complete.
type Tag struct {
	id       string
	name     string
	position []float64
	extent   []float64
	units    []string
	refs     []DataArray
	features []*Feature
}

// NewTag builds a tag from its name and physical position. The
// position is deep-copied.
func NewTag(name string, position []float64) *Tag {
	pos := make([]float64, len(position))
	copy(pos, position)

	return &Tag{id: uuid.NewString(), name: name, position: pos}
}

// ID returns the entity identifier assigned at creation.
func (t *Tag) ID() string { return t.id }

// Name returns the tag name.
func (t *Tag) Name() string { return t.name }

// Position returns a copy of the physical position vector.
func (t *Tag) Position() []float64 {
	p := make([]float64, len(t.position))
	copy(p, t.position)

	return p
}

// SetExtent replaces the physical extent vector (deep copy). Pass nil
// to clear it; a cleared extent selects one sample per axis.
func (t *Tag) SetExtent(extent []float64) {
	if extent == nil {
		t.extent = nil

		return
	}
	e := make([]float64, len(extent))
	copy(e, extent)
	t.extent = e
}

// Extent returns a copy of the physical extent vector, empty when none
// was set.
func (t *Tag) Extent() []float64 {
	e := make([]float64, len(t.extent))
	copy(e, t.extent)

	return e
}

// SetUnits replaces the per-axis unit list. Each entry is sanitized so
// "" and "none" become the single no-unit sentinel. The list may be
// shorter than the position; missing entries default to no unit.
func (t *Tag) SetUnits(us []string) {
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
func (t *Tag) Units() []string {
	us := make([]string, len(t.units))
	copy(us, t.units)

	return us
}

// AddReference appends a referenced array. Nil references are ignored.
func (t *Tag) AddReference(array DataArray) {
	if array == nil {
		return
	}
	t.refs = append(t.refs, array)
}

// ReferenceCount returns the number of referenced arrays.
func (t *Tag) ReferenceCount() int { return len(t.refs) }

// Reference returns the referenced array at index i.
func (t *Tag) Reference(i int) (DataArray, error) {
	if i < 0 || i >= len(t.refs) {
		return nil, fmt.Errorf("data: tag %q has no reference %d: %w", t.name, i, core.ErrOutOfBounds)
	}

	return t.refs[i], nil
}

// References returns a copy of the reference list.
func (t *Tag) References() []DataArray {
	refs := make([]DataArray, len(t.refs))
	copy(refs, t.refs)

	return refs
}

// CreateFeature attaches side data with the given linkage kind and
// returns the new feature. The data array may be nil; retrieval on such
// a feature reports core.ErrUninitializedEntity.
func (t *Tag) CreateFeature(data DataArray, linkType LinkType) *Feature {
	f := newFeature(data, linkType)
	t.features = append(t.features, f)

	return f
}

// FeatureCount returns the number of attached features.
func (t *Tag) FeatureCount() int { return len(t.features) }

// Feature returns the feature at index i.
func (t *Tag) Feature(i int) (*Feature, error) {
	if i < 0 || i >= len(t.features) {
		return nil, fmt.Errorf("data: tag %q has no feature %d: %w", t.name, i, core.ErrOutOfBounds)
	}

	return t.features[i], nil
}
