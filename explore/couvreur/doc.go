// Package couvreur implements Couvreur's SCC-based Büchi emptiness check
// (spec 4.6.4): a Tarjan-style single pass that collapses each strongly
// connected component as soon as it closes, merging an "accepting" flag
// into the surviving root whenever two components merge. A closing SCC
// that carries the accepting flag and contains an actual cycle (more
// than one state, or a direct self-loop) witnesses an accepting lasso.
package couvreur
