// Package state implements the composed-state model of spec 4.3: Vloc
// (location tuple), Intval (flat integer-variable array), the zone-graph
// State that conjoins both with a clock zone, and the Transition that
// next/prev populate while moving between states. Vloc and Intval are
// pool-allocated value carriers; States are hash-consed via the pool
// package's HashCons so structurally equal states share storage, while
// Transitions are plain values and are not interned.
package state
