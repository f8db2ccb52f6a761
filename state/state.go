package state

import (
	"hash/fnv"

	"github.com/katalvlaran/tchecker-go/pool"
	"github.com/katalvlaran/tchecker-go/zone"
)

// State is a zone-graph state: (shared) vloc, intval and zone, plus the
// label set derived from vloc's locations (spec 4.3). Equality is the
// conjunction of component equalities; the hash combines component
// hashes. States are logically immutable once returned by the hash-cons
// table.
type State struct {
	pool.RefCounted
	Vloc    *Vloc
	Intval  *Intval
	Zone    *zone.Zone
	Labels  *Labels
	Initial bool
}

// New builds a candidate state from its three components and its derived
// label set. The caller is expected to pass this candidate to a
// pool.HashCons[*State] for interning.
func New(v *Vloc, iv *Intval, z *zone.Zone, labels *Labels, initial bool) *State {
	return &State{Vloc: v, Intval: iv, Zone: z, Labels: labels, Initial: initial}
}

// Equal is the conjunction of the three components' equalities (spec 8,
// composed-state invariants).
func (s *State) Equal(o *State) bool {
	return s.Vloc.Equal(o.Vloc) && s.Intval.Equal(o.Intval) && s.Zone.Equal(o.Zone)
}

// Hash mixes the three component hashes, Boost-style (spec 4.3): each
// component hash is folded in with a golden-ratio multiplier to spread
// bits, matching boost::hash_combine's well-known constant.
func (s *State) Hash() uint64 {
	h := s.Vloc.Hash()
	h = combine(h, s.Intval.Hash())
	h = combine(h, s.Zone.Hash())
	return h
}

const goldenRatio64 = 0x9e3779b97f4a7c15

func combine(seed, v uint64) uint64 {
	seed ^= v + goldenRatio64 + (seed << 6) + (seed >> 2)
	return seed
}

// Satisfies reports whether s's label set intersects target — the
// predicate exploration algorithms test against a reachability goal.
func (s *State) Satisfies(target *Labels) bool {
	if target == nil || target.IsEmpty() {
		return false
	}
	return s.Labels.Intersects(target)
}

// fnvOf hashes a byte-oriented payload with FNV-1a. Nothing in this
// package calls it; State.Hash delegates to its sub-objects' own Hash
// methods.
func fnvOf(b []byte) uint64 {
	h := fnv.New64a()
	h.Write(b)
	return h.Sum64()
}
