package zone

import (
	"hash/fnv"
	"strconv"

	"github.com/katalvlaran/tchecker-go/dbm"
)

// Zone is the clock component of a composed state: a dim-dimensional
// convex set of clock valuations, represented by a tight DBM. Zones are
// immutable once published to a hash-cons table (spec 3.3, 5).
type Zone struct {
	dim int
	d   *dbm.DBM
}

// New returns the zero zone (all clocks 0) of the given dimension.
func New(dim int) *Zone {
	return &Zone{dim: dim, d: dbm.ZeroDBM(dim)}
}

// Universal returns the unconstrained zone of the given dimension.
func Universal(dim int) *Zone {
	return &Zone{dim: dim, d: dbm.Universal(dim)}
}

// FromDBM wraps an already-tight (or empty-flagged) DBM as a Zone. The
// caller transfers ownership of d to the Zone; it must not mutate d
// afterwards.
func FromDBM(d *dbm.DBM) *Zone {
	return &Zone{dim: d.Dim(), d: d}
}

// Dim returns the zone's dimension.
func (z *Zone) Dim() int { return z.dim }

// DBM exposes the underlying DBM for operations that need direct access
// (the ts package mutates a freshly cloned zone's DBM while building a
// successor, before the zone is interned and becomes logically immutable).
func (z *Zone) DBM() *dbm.DBM { return z.d }

// Clone returns an independent, mutable copy of z.
func (z *Zone) Clone() *Zone { return &Zone{dim: z.dim, d: z.d.Clone()} }

// IsEmpty reports whether the zone denotes the empty set of valuations.
func (z *Zone) IsEmpty() bool { return z.d.IsEmpty0() }

// IsUniversalPositive reports whether z places no constraint beyond clock
// positivity.
func (z *Zone) IsUniversalPositive() bool { return z.d.IsPositive() && z.d.IsUniversal() }

// Equal is structural equality of the two zones' tight DBMs (spec 4.2).
func (z *Zone) Equal(other *Zone) bool {
	if z.dim != other.dim {
		return false
	}
	return z.d.IsEqual(other.d)
}

// Le reports whether z is included in other (z's valuations are a subset).
func (z *Zone) Le(other *Zone) bool { return z.d.IsLe(other.d) }

// IsAMLe checks z <= aM(other) under the given bound map.
func (z *Zone) IsAMLe(other *Zone, m dbm.BoundMap) bool {
	return dbm.IsAMLe(z.d, other.d, m)
}

// IsALULe checks z <= aLU(other) under the given lower/upper bound maps.
func (z *Zone) IsALULe(other *Zone, l, u dbm.BoundMap) bool {
	return dbm.IsALULe(z.d, other.d, l, u)
}

// Hash combines the dimension and every DBM entry into a stable FNV-1a
// digest, used by the hash-cons table to bucket composed states (spec 4.3).
func (z *Zone) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putUint64(buf[:], uint64(z.dim))
	h.Write(buf[:])
	if z.d.IsEmpty0() {
		h.Write([]byte{0xEE})
		return h.Sum64()
	}
	for i := 0; i < z.dim; i++ {
		for j := 0; j < z.dim; j++ {
			b := z.d.At(i, j)
			putUint64(buf[:], uint64(uint32(b.Value))<<1|boolBit(b.Strict))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

// Compare gives a lexicographic order over flattened tight DBMs, for
// callers that need a deterministic order of zones.
// Empty zones sort before any non-empty zone of the same dimension.
func (z *Zone) Compare(other *Zone) int {
	if z.dim != other.dim {
		if z.dim < other.dim {
			return -1
		}
		return 1
	}
	ze, oe := z.d.IsEmpty0(), other.d.IsEmpty0()
	if ze != oe {
		if ze {
			return -1
		}
		return 1
	}
	if ze {
		return 0
	}
	for i := 0; i < z.dim; i++ {
		for j := 0; j < z.dim; j++ {
			if c := dbm.Cmp(z.d.At(i, j), other.d.At(i, j)); c != 0 {
				return c
			}
		}
	}
	return 0
}

// String renders the zone via its DBM's human-readable constraint list.
func (z *Zone) String() string {
	if z.IsEmpty() {
		return "false"
	}
	return z.d.String()
}

// ClockName renders clock id c using an optional name table, falling back
// to "x<id>".
func ClockName(names []string, c dbm.ClockID) string {
	if int(c) < len(names) && names[c] != "" {
		return names[c]
	}
	return "x" + strconv.Itoa(int(c))
}
