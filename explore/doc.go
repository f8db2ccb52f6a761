// Package explore holds the shared frame the four exploration algorithms
// (spec 4.6) build on: a Node wrapping an interned state plus the edge
// that reached it, and a Stats struct each algorithm fills in. The
// algorithms themselves live in the reach, covreach, ndfs and couvreur
// subpackages; each drives a ts.TS. reach and covreach order their work
// with a waiting.Container, while ndfs and couvreur keep their own
// depth-first stacks.
package explore
