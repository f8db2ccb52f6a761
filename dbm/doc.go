// Package dbm implements canonical-form arithmetic on Difference Bound
// Matrices: the symbolic representation of a zone (a convex set of
// real-valued clock vectors definable by conjunctions of xi - xj # c).
//
// A DBM is a dim x dim array of Bound values; dbm.At(i, j) represents the
// constraint xi - xj <= c (or < c for a strict bound). Identifier 0 is the
// reference clock, whose value is always zero; identifiers 1..dim-1 are
// automaton clocks.
//
// Every exported operation either returns a tight, consistent DBM or signals
// emptiness via the dbm[0,0] < (<=,0) sentinel (see IsEmpty0). Operations
// never leave a non-empty DBM non-tight: Close/CloseFrom are the only two
// primitives that restore tightness, and every other mutator either calls
// one of them before returning or (like OpenUp and the in-place resets)
// preserves tightness by construction.
package dbm
