package state

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/katalvlaran/tchecker-go/pool"
)

// LocationID identifies a location within one process's location list.
type LocationID int

// Vloc is a fixed-length tuple of per-process location identifiers
// (spec 4.3). Pool-allocated with capacity equal to the process count.
type Vloc struct {
	pool.RefCounted
	locs []LocationID
}

// NewVloc returns a Vloc over a fresh copy of locs.
func NewVloc(locs []LocationID) *Vloc {
	return &Vloc{locs: append([]LocationID(nil), locs...)}
}

// Len returns the number of processes.
func (v *Vloc) Len() int { return len(v.locs) }

// Get returns the location of process pid.
func (v *Vloc) Get(pid int) LocationID { return v.locs[pid] }

// SetLoc mutates process pid's location in place; only safe on a
// freshly cloned/constructed, not-yet-interned Vloc.
func (v *Vloc) SetLoc(pid int, loc LocationID) { v.locs[pid] = loc }

// Slice returns an independent copy of the location tuple.
func (v *Vloc) Slice() []LocationID { return append([]LocationID(nil), v.locs...) }

// Clone returns an independent mutable copy, for use by next/prev before
// interning the result.
func (v *Vloc) Clone() *Vloc { return NewVloc(v.locs) }

// Init (re)initializes a pool-constructed Vloc's contents in place,
// reusing its backing array when large enough. Only meaningful on a cell
// fresh out of pool.Pool[*Vloc].Construct, before it is shared or
// interned.
func (v *Vloc) Init(locs []LocationID) {
	v.locs = append(v.locs[:0], locs...)
}

// With returns a copy of v with process pid set to loc, leaving v
// untouched.
func (v *Vloc) With(pid int, loc LocationID) *Vloc {
	c := v.Clone()
	c.locs[pid] = loc
	return c
}

// Equal is element-wise equality (spec 4.3).
func (v *Vloc) Equal(o *Vloc) bool {
	if len(v.locs) != len(o.locs) {
		return false
	}
	for i, l := range v.locs {
		if l != o.locs[i] {
			return false
		}
	}
	return true
}

// Hash combines every location id via FNV-1a.
func (v *Vloc) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, l := range v.locs {
		putU64(buf[:], uint64(l))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the tuple as "[l0, l1, ...]".
func (v *Vloc) String() string {
	parts := make([]string, len(v.locs))
	for i, l := range v.locs {
		parts[i] = strconv.Itoa(int(l))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func putU64(b []byte, x uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(x >> (8 * i))
	}
}
