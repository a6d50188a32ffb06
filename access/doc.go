// Package access resolves tag annotations into concrete windows of
// referenced data arrays and hands out deferred-read views over them.
//
// What:
//
//   - GetOffsetAndCount / GetOffsetAndCountAt — walk a (multi-)tag's
//     axes, map each physical position through the axis dimension and
//     produce an N-D (offset, count) window.
//   - PositionInData / PositionAndExtentInData — window validation
//     against an array's extent.
//   - RetrieveData / RetrieveDataAt — resolve, validate, and return a
//     DataView over a referenced array.
//   - RetrieveFeatureData / RetrieveFeatureDataAt — the feature
//     dispatcher: apply tag geometry (Tagged), select a per-point
//     first-axis slice (Indexed, multi-tag form) or return the whole
//     feature data (Untagged).
//
// Why:
//
//   - Tags speak physical coordinates, backends speak integer indices;
//     this package is the mediation layer, kept stateless so repeated
//     calls with identical inputs are observationally equivalent.
//
// Validation always precedes reads: dimensional compatibility and
// bounds failures surface before any data is touched. The only
// blocking point is the positions/extents row fetch on multi-tag
// resolution.
//
// A physical extent that collapses onto its own start index still
// selects one sample: counts are floored at 1, so near-zero extents
// can never produce empty windows.
//
// Complexity:
//
//   - Resolution: O(rank) dimension lookups, each O(1) or O(log ticks).
//   - Retrieval adds O(rank) validation; reads stay deferred.
//
// Errors:
//
//   - core.ErrOutOfBounds: empty or exceeded reference/feature lists,
//     positions rows past M, resolved windows outside the array.
//   - core.ErrIncompatibleDimensions: tag/array rank mismatch, unit
//     policy violations (see dimension/), positions shaped wider than
//     the array's rank.
//   - core.ErrUninitializedEntity: a feature without data.
package access
