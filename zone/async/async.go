// Package async implements the reference-clock zone variant of spec 4.2.1:
// each automaton clock is paired with a per-process reference clock, so
// that inter-process clock differences that never participate in a
// synchronisation need not be kept tight against one another. Grounded on
// original_source's refdbm/async_zg model (reference-clock DBMs indexed by
// the same clock space as tchecker::refdbm).
package async

import (
	"github.com/katalvlaran/tchecker-go/dbm"
)

// Zone is a zone over a reference-clock DBM: dim clocks, each associated
// with the reference clock of its owning process via RefOf.
type Zone struct {
	dim  int
	refs []dbm.ClockID // refs[c] = reference clock id for clock c (refs[r] == r for a reference clock r)
	d    *dbm.DBM
}

// New returns the zero async zone for the given clock space.
func New(dim int, refs []dbm.ClockID) *Zone {
	if len(refs) != dim {
		panic("async: refs must have length dim")
	}
	return &Zone{dim: dim, refs: append([]dbm.ClockID(nil), refs...), d: dbm.ZeroDBM(dim)}
}

// Dim returns the zone's dimension.
func (z *Zone) Dim() int { return z.dim }

// DBM exposes the underlying reference-clock DBM.
func (z *Zone) DBM() *dbm.DBM { return z.d }

// RefOf returns the reference clock associated with clock c.
func (z *Zone) RefOf(c dbm.ClockID) dbm.ClockID { return z.refs[c] }

// Clone returns an independent, mutable copy of z.
func (z *Zone) Clone() *Zone {
	return &Zone{dim: z.dim, refs: z.refs, d: z.d.Clone()}
}

// IsEmpty reports whether the zone denotes the empty set.
func (z *Zone) IsEmpty() bool { return z.d.IsEmpty0() }

// Equal is structural equality of the reference-clock DBMs.
func (z *Zone) Equal(other *Zone) bool {
	return z.dim == other.dim && z.d.IsEqual(other.d)
}

// Le reports inclusion of z in other.
func (z *Zone) Le(other *Zone) bool { return z.d.IsLe(other.d) }

// Sync forces the given reference clocks to be equal, as required when a
// set of processes synchronise on a joint action (spec 4.2.1): for every
// pair of reference clocks in refs, constrain their difference to exactly
// zero, then re-tighten once.
func (z *Zone) Sync(refs []dbm.ClockID) dbm.Outcome {
	if len(refs) < 2 {
		return dbm.NonEmpty
	}
	for i := 1; i < len(refs); i++ {
		a, b := int(refs[0]), int(refs[i])
		if out := z.d.Constrain(a, b, dbm.Zero); out == dbm.Empty {
			return dbm.Empty
		}
		if out := z.d.Constrain(b, a, dbm.Zero); out == dbm.Empty {
			return dbm.Empty
		}
	}
	return dbm.NonEmpty
}
