// Package vm is the external bytecode-interpreter boundary named in
// spec 6: a single opaque entry point, Run, that evaluates a Program
// against an integer-variable assignment and appends any clock
// constraints/resets it produces to caller-supplied output buffers. The
// real compiler/interpreter is out of scope (spec 1); this package ships
// the contract plus a minimal reference interpreter (interp.go) able to
// express the guards, updates and invariants of the spec's own
// end-to-end scenarios.
package vm
