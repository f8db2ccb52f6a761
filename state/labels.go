package state

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Labels is the bitset of accepting labels attached to a state, derived
// from the labels on each location of its vloc (spec 4.3). Grounded on
// the teacher's pack-wide use of github.com/bits-and-blooms/bitset for
// compact flag sets, generalised here from the original_source's Boost
// dynamic_bitset (spec 9 cross-language remapping note).
type Labels struct {
	bits *bitset.BitSet
}

// NewLabels returns an empty label set over n known labels.
func NewLabels(n uint) *Labels {
	return &Labels{bits: bitset.New(n)}
}

// Set marks label i as present.
func (l *Labels) Set(i uint) { l.bits.Set(i) }

// Test reports whether label i is present.
func (l *Labels) Test(i uint) bool { return l.bits.Test(i) }

// Union returns a new Labels containing every label present in l or o.
func (l *Labels) Union(o *Labels) *Labels {
	return &Labels{bits: l.bits.Union(o.bits)}
}

// Intersects reports whether l and target share any label; this is the
// predicate the exploration algorithms use to test "state satisfies the
// target label set" (spec 4.6.1).
func (l *Labels) Intersects(target *Labels) bool {
	return l.bits.IntersectionCardinality(target.bits) > 0
}

// Satisfies reports whether every label in target is also in l (used for
// conjunctive label predicates, e.g. "accepting").
func (l *Labels) Satisfies(target *Labels) bool {
	return target.bits.DifferenceCardinality(l.bits) == 0
}

// IsEmpty reports whether no label is set.
func (l *Labels) IsEmpty() bool { return l.bits.None() }

// String renders the set labels by name, falling back to "L<i>" when
// names is nil or too short.
func (l *Labels) String(names []string) string {
	var parts []string
	for i, e := l.bits.NextSet(0); e; i, e = l.bits.NextSet(i + 1) {
		if int(i) < len(names) && names[i] != "" {
			parts = append(parts, names[i])
		} else {
			parts = append(parts, "L"+strconv.FormatUint(uint64(i), 10))
		}
	}
	return strings.Join(parts, ",")
}
