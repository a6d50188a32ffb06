// Package units converts between SI-prefixed unit strings.
//
// What:
//
//   - Scaling computes the multiplicative factor turning a value in one
//     unit into the same physical quantity in another ("ms" → "s" is
//     0.001).
//   - IsScalable reports compatibility without the factor.
//   - IsNone recognizes the single "no unit" sentinel used across the
//     library ("" and "none").
//
// Why:
//
//   - Tags annotate data in physical coordinates; the annotated array's
//     dimensions may carry a different (but compatible) unit. Mapping a
//     position onto an axis first rescales it into the axis unit.
//
// A unit string is an optional SI prefix followed by a base symbol:
// "ms", "uV", "kHz". Two units are compatible when they share the same
// base symbol after prefix stripping; because bases are not enumerated,
// a string like "cd" legitimately reads either as the bare base "cd" or
// as prefix "c" + base "d", and Scaling considers every such reading of
// both operands before declaring them incompatible.
//
// Complexity:
//
//   - Scaling / IsScalable: O(1) (constant prefix table, ≤3 readings
//     per operand).
//
// Errors:
//
//   - core.ErrIncompatibleUnits: no reading of the two strings shares a
//     base symbol, or a "no unit" sentinel reached Scaling.
package units
