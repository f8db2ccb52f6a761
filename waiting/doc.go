// Package waiting implements the FIFO/LIFO waiting containers the
// exploration algorithms drive (spec 4.6.2, 9): push stores a node, and
// Pop takes an isActive predicate, skipping (and physically discarding)
// entries for which it is false before returning the next active one.
// The containers have no Remove method: logical removal is the O(1)
// flag that the caller's predicate reads.
package waiting
