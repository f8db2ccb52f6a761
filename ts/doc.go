// Package ts implements the transition system of spec 4.5: it composes a
// system.System, the vm package's bytecode interpreter, the pool/hash-cons
// machinery and a semantics/extrapolation policy into Initial, InitialEdges,
// OutgoingEdges, Next and Prev. ts.Status enumerates the full outcome
// taxonomy of spec 7; the TS never returns an error for these — they are
// plain values the exploration layer filters.
package ts
