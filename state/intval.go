package state

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/katalvlaran/tchecker-go/pool"
)

// Intval is a flat array of integer-variable values, one slot per flat
// integer variable declared by the system (spec 4.3). Pool-allocated.
type Intval struct {
	pool.RefCounted
	vals []int32
}

// NewIntval returns an Intval over a fresh copy of vals.
func NewIntval(vals []int32) *Intval {
	return &Intval{vals: append([]int32(nil), vals...)}
}

// Len returns the number of integer variables.
func (iv *Intval) Len() int { return len(iv.vals) }

// Get returns the value of variable id.
func (iv *Intval) Get(id int) int32 { return iv.vals[id] }

// Slice returns an independent copy of the value array.
func (iv *Intval) Slice() []int32 { return append([]int32(nil), iv.vals...) }

// Clone returns an independent mutable copy.
func (iv *Intval) Clone() *Intval { return NewIntval(iv.vals) }

// Init (re)initializes a pool-constructed Intval's contents in place,
// reusing its backing array when large enough. Only meaningful on a cell
// fresh out of pool.Pool[*Intval].Construct.
func (iv *Intval) Init(vals []int32) {
	iv.vals = append(iv.vals[:0], vals...)
}

// With returns a copy of iv with variable id set to v.
func (iv *Intval) With(id int, v int32) *Intval {
	c := iv.Clone()
	c.vals[id] = v
	return c
}

// Set mutates iv in place; only safe on a freshly cloned, not-yet-interned
// Intval (mirrors the zone's construction-then-intern discipline).
func (iv *Intval) Set(id int, v int32) { iv.vals[id] = v }

// Equal is element-wise equality.
func (iv *Intval) Equal(o *Intval) bool {
	if len(iv.vals) != len(o.vals) {
		return false
	}
	for i, v := range iv.vals {
		if v != o.vals[i] {
			return false
		}
	}
	return true
}

// Hash combines every value via FNV-1a.
func (iv *Intval) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	for _, v := range iv.vals {
		buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
		h.Write(buf[:])
	}
	return h.Sum64()
}

// String renders the array as "(v0, v1, ...)".
func (iv *Intval) String() string {
	parts := make([]string, len(iv.vals))
	for i, v := range iv.vals {
		parts[i] = strconv.Itoa(int(v))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
