// Package core: sentinel error set (unified, consistent).
// This file defines ONLY the library-wide sentinel errors. All packages
// MUST return these sentinels and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are
// reserved for programmer errors in private helpers (if any).

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "nix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrOutOfBounds indicates that an index exceeds a collection extent:
	// a positions row, a reference or feature index, a Set-dimension label
	// index, or a resolved window that falls outside the array.
	ErrOutOfBounds = errors.New("nix: index out of bounds")

	// ErrIncompatibleDimensions indicates a rank mismatch between a tag
	// and an array, mismatched or missing units on a mapping, or a unit
	// applied to a Set dimension.
	ErrIncompatibleDimensions = errors.New("nix: incompatible dimensions")

	// ErrIncompatibleUnits indicates two unit strings that cannot be
	// scaled into each other. Raised by units.Scaling; the dimension and
	// access packages wrap it into ErrIncompatibleDimensions on their
	// mapping paths.
	ErrIncompatibleUnits = errors.New("nix: incompatible units")

	// ErrUninitializedEntity indicates a required entity is absent,
	// e.g. a Feature whose data array was never set.
	ErrUninitializedEntity = errors.New("nix: uninitialized entity")

	// ErrInvalidRank indicates an extent/window operation on a zero-rank
	// shape, or operands of differing ranks.
	ErrInvalidRank = errors.New("nix: invalid rank")
)
