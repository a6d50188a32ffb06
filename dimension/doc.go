// Package dimension models per-axis semantics of a data array and maps
// physical positions onto integer axis indices.
//
// What:
//
//   - Dimension — an immutable tagged variant over three kinds:
//     Sampled (uniform grid: interval, offset, optional unit),
//     Range (monotonic tick list, optional unit),
//     Set (ordered category labels, no unit).
//   - IndexOf — the per-kind position→index rule, unit-blind.
//   - PositionToIndex — IndexOf plus the unit policy: rescales the
//     caller's position into the dimension's unit first, or rejects the
//     combination.
//
// Why:
//
//   - A tag says "0.5 s"; the backend wants "sample 500". This package
//     is the translation layer between the two worldviews.
//
// Rounding is round-half-away-from-zero throughout (math.Round).
// Physical positions before a sampled axis' offset resolve to negative
// raw indices; those clamp to 0.
//
// Complexity:
//
//   - Sampled/Set IndexOf: O(1).
//   - Range IndexOf: O(log n) over n ticks.
//
// Errors:
//
//   - core.ErrIncompatibleDimensions: caller and Sampled dimension
//     disagree on having a unit; a unit was applied to a Set dimension;
//     or the units exist but cannot be scaled into each other.
//   - core.ErrOutOfBounds: a Set index at or past the label count.
//
// See access/ for how whole tags are resolved axis by axis.
package dimension
