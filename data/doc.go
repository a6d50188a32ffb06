// Package data holds the entity model the region-of-interest engine
// operates on: data arrays, tags, multi-tags, features and data views.
//
// What:
//
//   - DataArray — the consumed backend surface: per-axis dimension
//     descriptors, an extent, and windowed (offset, count) reads.
//   - Array — an in-memory row-major DataArray, the stand-in for a
//     file-backed store so the library works and tests stand-alone.
//   - Tag — a point-plus-extent annotation in physical coordinates,
//     with units and referenced arrays.
//   - MultiTag — a repeated tag whose M point annotations live in a
//     positions array of shape [M] or [M, rank].
//   - Feature — side data attached to a tag, with a linkage kind
//     (Tagged, Indexed, Untagged) deciding how tag geometry applies.
//   - DataView — a deferred-read handle binding an array to an
//     (offset, count) window; reads translate through the window.
//
// Why:
//
//   - Tags, arrays and features form a shared-readable reference graph;
//     the engine in access/ only ever reads through these handles and
//     never mutates them.
//
// Entities carry uuid identities and names. Accessors return defensive
// copies; setters copy in. A DataView borrows its array's identity and
// is valid while the array exists.
//
// Complexity:
//
//   - Array.ReadWindow: O(elements copied).
//   - Everything else: O(rank) or O(1).
//
// Errors:
//
//   - core.ErrInvalidRank: creating an array with rank 0, or window
//     ranks that do not match the array rank.
//   - core.ErrOutOfBounds: a window outside the extent, an axis or
//     entity index out of range.
//   - core.ErrUninitializedEntity: a MultiTag without positions.
//   - core.ErrIncompatibleDimensions: extents whose shape does not
//     match the positions shape.
package data
