// Package dbm: sentinel error set.
//
// Per the error policy followed across this module: sentinels are compared
// with errors.Is and are never wrapped with %w at the definition site; add
// context with fmt.Errorf("...: %w", ErrX) at call sites that need it.
package dbm

import "errors"

var (
	// ErrDimensionMismatch names the error class of combining two DBMs of
	// different dimension (e.g. Intersection), or of a clock identifier
	// outside [0, dim). No function of this package returns it: those
	// operations panic instead.
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrInvalidClock names the error class of a clock identifier that is
	// out of range, or (for reset targets) is the reference clock 0. No
	// function of this package returns it.
	ErrInvalidClock = errors.New("dbm: invalid clock identifier")

	// ErrNegativeReset names a reset-to-constant or reset-to-sum given a
	// negative constant; spec 3.1 requires k >= 0. It is not returned: the
	// reset code panics with its message.
	ErrNegativeReset = errors.New("dbm: reset constant must be non-negative")

	// ErrUnsafeResetContainer is returned by the in-place container applier
	// when it is handed a container that is not safe (spec 3.1: a target
	// clock also appears as a source). Callers must use the buffered path.
	ErrUnsafeResetContainer = errors.New("dbm: reset container is not safe for in-place application")
)
