package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saurabhiiit/nix/access"
	"github.com/saurabhiiit/nix/core"
	"github.com/saurabhiiit/nix/data"
)

//----------------------------------------------------------------------------//
// RetrieveData — simple tag
//----------------------------------------------------------------------------//

// TestRetrieveData_View resolves, validates and reads back the window.
func TestRetrieveData_View(t *testing.T) {
	array := sampledArray(t, 100, 1, "")
	tag := data.NewTag("roi", []float64{10})
	tag.SetExtent([]float64{5})
	tag.AddReference(array)

	view, err := access.RetrieveData(tag, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Shape{10}, view.Offset())
	assert.Equal(t, core.Shape{5}, view.Count())

	dst := make([]float64, 5)
	require.NoError(t, view.ReadAll(dst))
	assert.Equal(t, []float64{10, 11, 12, 13, 14}, dst)
}

// TestRetrieveData_ReferenceBounds: no references, and indices past the
// list, are out of bounds.
func TestRetrieveData_ReferenceBounds(t *testing.T) {
	tag := data.NewTag("roi", []float64{0})
	_, err := access.RetrieveData(tag, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "empty reference list")

	tag.AddReference(sampledArray(t, 10, 1, ""))
	_, err = access.RetrieveData(tag, 1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "index past the list")
	_, err = access.RetrieveData(tag, -1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "negative index")
}

// TestRetrieveData_WindowEscapes is scenario 6: position 95, extent 20
// against extent [100] — resolution succeeds, retrieval raises.
func TestRetrieveData_WindowEscapes(t *testing.T) {
	array := sampledArray(t, 100, 1, "")
	tag := data.NewTag("tail", []float64{95})
	tag.SetExtent([]float64{20})
	tag.SetUnits([]string{"none"})
	tag.AddReference(array)

	offset, count, err := access.GetOffsetAndCount(tag, array)
	require.NoError(t, err, "resolution itself succeeds")
	assert.Equal(t, core.Shape{95}, offset)
	assert.Equal(t, core.Shape{20}, count)

	_, err = access.RetrieveData(tag, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestRetrieveData_InBoundsOrRaise: for a grid of windows, RetrieveData
// either returns a view satisfying PositionAndExtentInData or raises.
func TestRetrieveData_InBoundsOrRaise(t *testing.T) {
	array := sampledArray(t, 50, 1, "")
	for pos := 0.0; pos < 60; pos += 7 {
		for ext := 0.0; ext < 30; ext += 11 {
			tag := data.NewTag("probe", []float64{pos})
			tag.SetExtent([]float64{ext})
			tag.AddReference(array)

			view, err := access.RetrieveData(tag, 0)
			if err != nil {
				assert.ErrorIs(t, err, core.ErrOutOfBounds, "pos=%v ext=%v", pos, ext)

				continue
			}
			assert.True(t, access.PositionAndExtentInData(array, view.Offset(), view.Count()),
				"pos=%v ext=%v", pos, ext)
		}
	}
}

//----------------------------------------------------------------------------//
// RetrieveDataAt — multi-tag
//----------------------------------------------------------------------------//

// TestRetrieveDataAt_View reads scenario 5's window back through the view.
func TestRetrieveDataAt_View(t *testing.T) {
	array := unitlessGrid(t, 100, 100)
	mt := newEventTag(t)
	mt.AddReference(array)

	view, err := access.RetrieveDataAt(mt, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Shape{10, 20}, view.Offset())
	assert.Equal(t, core.Shape{5, 7}, view.Count())

	dst := make([]float64, 35)
	require.NoError(t, view.ReadAll(dst))
	// Row-major: element (r,c) of the grid holds r*100+c.
	assert.Equal(t, 10.0*100+20, dst[0])
	assert.Equal(t, 10.0*100+26, dst[6])
	assert.Equal(t, 14.0*100+26, dst[34])
}

// TestRetrieveDataAt_Bounds covers reference and point violations.
func TestRetrieveDataAt_Bounds(t *testing.T) {
	mt := newEventTag(t)
	_, err := access.RetrieveDataAt(mt, 0, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "empty reference list")

	mt.AddReference(unitlessGrid(t, 100, 100))
	_, err = access.RetrieveDataAt(mt, 0, 3)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "reference index past the list")
	_, err = access.RetrieveDataAt(mt, 5, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "point index past M")
}

//----------------------------------------------------------------------------//
// RetrieveFeatureData — simple tag
//----------------------------------------------------------------------------//

// TestRetrieveFeatureData_Tagged: tag geometry applies to the feature's
// own data, not the references.
func TestRetrieveFeatureData_Tagged(t *testing.T) {
	reference := sampledArray(t, 1000, 0.001, "s")
	featureData := sampledArray(t, 200, 0.01, "s")

	tag := data.NewTag("burst", []float64{0.5})
	tag.SetExtent([]float64{0.1})
	tag.SetUnits([]string{"s"})
	tag.AddReference(reference)
	tag.CreateFeature(featureData, data.Tagged)

	view, err := access.RetrieveFeatureData(tag, 0)
	require.NoError(t, err)
	// On the 10 ms grid the same physical window is 10 samples at 50.
	assert.Equal(t, core.Shape{50}, view.Offset())
	assert.Equal(t, core.Shape{10}, view.Count())
}

// TestRetrieveFeatureData_UntaggedAndIndexed: the simple-tag form
// returns the whole data for both kinds.
func TestRetrieveFeatureData_UntaggedAndIndexed(t *testing.T) {
	featureData, err := data.NewArray("side", core.Shape{4, 3}, seq(12))
	require.NoError(t, err)

	for _, lt := range []data.LinkType{data.Untagged, data.Indexed} {
		tag := data.NewTag("roi", []float64{0})
		tag.CreateFeature(featureData, lt)

		view, err := access.RetrieveFeatureData(tag, 0)
		require.NoError(t, err, "%v", lt)
		assert.Equal(t, core.Shape{0, 0}, view.Offset(), "%v", lt)
		assert.Equal(t, core.Shape{4, 3}, view.Count(), "%v", lt)
	}
}

// TestRetrieveFeatureData_Bounds covers the empty list, index bounds
// and the uninitialized feature.
func TestRetrieveFeatureData_Bounds(t *testing.T) {
	tag := data.NewTag("roi", []float64{0})
	_, err := access.RetrieveFeatureData(tag, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "no features")

	tag.CreateFeature(nil, data.Untagged)
	_, err = access.RetrieveFeatureData(tag, 1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "index == featureCount is out")

	_, err = access.RetrieveFeatureData(tag, 0)
	assert.ErrorIs(t, err, core.ErrUninitializedEntity, "feature without data")
}

//----------------------------------------------------------------------------//
// RetrieveFeatureDataAt — multi-tag
//----------------------------------------------------------------------------//

// TestRetrieveFeatureDataAt_Tagged applies point geometry to the
// feature data.
func TestRetrieveFeatureDataAt_Tagged(t *testing.T) {
	mt := newEventTag(t)
	featureData := unitlessGrid(t, 50, 50)
	mt.CreateFeature(featureData, data.Tagged)

	view, err := access.RetrieveFeatureDataAt(mt, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Shape{10, 20}, view.Offset())
	assert.Equal(t, core.Shape{5, 7}, view.Count())
}

// TestRetrieveFeatureDataAt_Indexed: point m selects first-axis slice m.
func TestRetrieveFeatureDataAt_Indexed(t *testing.T) {
	mt := newEventTag(t)
	featureData, err := data.NewArray("per-point", core.Shape{3, 4}, seq(12))
	require.NoError(t, err)
	mt.CreateFeature(featureData, data.Indexed)

	view, err := access.RetrieveFeatureDataAt(mt, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Shape{2, 0}, view.Offset())
	assert.Equal(t, core.Shape{1, 4}, view.Count())

	dst := make([]float64, 4)
	require.NoError(t, view.ReadAll(dst))
	assert.Equal(t, []float64{8, 9, 10, 11}, dst)

	// The strict bound: point index == extent[0] is out.
	_, err = access.RetrieveFeatureDataAt(mt, 3, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
}

// TestRetrieveFeatureDataAt_Untagged returns the whole data regardless
// of the point index.
func TestRetrieveFeatureDataAt_Untagged(t *testing.T) {
	mt := newEventTag(t)
	featureData, err := data.NewArray("side", core.Shape{2, 2}, seq(4))
	require.NoError(t, err)
	mt.CreateFeature(featureData, data.Untagged)

	view, err := access.RetrieveFeatureDataAt(mt, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Shape{0, 0}, view.Offset())
	assert.Equal(t, core.Shape{2, 2}, view.Count())
}

// TestRetrieveFeatureDataAt_Bounds mirrors the simple-tag bound rules.
func TestRetrieveFeatureDataAt_Bounds(t *testing.T) {
	mt := newEventTag(t)
	_, err := access.RetrieveFeatureDataAt(mt, 0, 0)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "no features")

	mt.CreateFeature(nil, data.Untagged)
	_, err = access.RetrieveFeatureDataAt(mt, 0, 1)
	assert.ErrorIs(t, err, core.ErrOutOfBounds, "feature index out of range")
	_, err = access.RetrieveFeatureDataAt(mt, 0, 0)
	assert.ErrorIs(t, err, core.ErrUninitializedEntity, "feature without data")
}
