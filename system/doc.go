// Package system holds the static, already-elaborated model produced by a
// (not-in-scope, spec 1) parser: processes, locations, edges,
// synchronisation vectors, and variable declarations (spec 6). It is pure
// data plus lookups; Builder exists only so tests and example scenarios
// can construct a System by hand.
package system
