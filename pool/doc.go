// Package pool implements the block-allocated, reference-counted object
// pool and the content-addressed hash-cons table described in spec 4.4.
//
// Pool[T] hands out T values (typically pointer types embedding
// RefCounted) from a growable free list, grouped into blocks that are
// never shrunk once allocated — mirroring the teacher's "buckets are not
// shrunk" pool discipline. HashCons[T] interns values by content hash,
// returning the canonical representative for structurally equal candidates
// and growing its backing table when the load factor exceeds 0.75.
//
// Everything here assumes the single-threaded exploration model of spec 5:
// no locking, no atomics.
package pool
