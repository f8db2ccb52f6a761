package dbm

import (
	"fmt"
	"math"
)

// Bound is a difference bound (strictness, value) as defined in spec 3.1:
// a pair # in {<, <=} with a signed value, ordered so that a strict bound
// is tighter than a non-strict bound of the same value.
type Bound struct {
	Value  int32
	Strict bool // true: xi - xj < Value; false: xi - xj <= Value
}

// InfinityValue is the sentinel magnitude used for the unconstrained bound.
// It is small enough that Add never overflows int32 when combining two
// finite, in-range bounds, so callers can add without checking for infinity
// first (Add still special-cases it for speed and clarity).
const InfinityValue = math.MaxInt32 / 4

// Infinity is the distinguished "no constraint" bound: (<, +Inf).
var Infinity = Bound{Value: InfinityValue, Strict: true}

// LE builds a non-strict bound xi - xj <= v.
func LE(v int32) Bound { return Bound{Value: v, Strict: false} }

// LT builds a strict bound xi - xj < v.
func LT(v int32) Bound { return Bound{Value: v, Strict: true} }

// Zero is the non-strict bound (<=, 0), the diagonal value of a tight DBM.
var Zero = LE(0)

// IsInfinity reports whether b carries no constraint.
func (b Bound) IsInfinity() bool { return b.Value >= InfinityValue }

// Cmp orders bounds per spec 3.1: (s1,v1) <= (s2,v2) iff v1<v2, or v1=v2 and
// s1=<= implies s2=<=. Cmp returns -1, 0, or 1 the way sort comparators do:
// a strict bound is considered smaller than a non-strict bound of equal value,
// because x < c is a tighter constraint than x <= c.
func Cmp(a, b Bound) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	case a.Strict == b.Strict:
		return 0
	case a.Strict:
		return -1
	default:
		return 1
	}
}

// Min returns the tighter (smaller, per Cmp) of a and b.
func Min(a, b Bound) Bound {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// Add combines two bounds per spec 3.1: (s1,v1)+(s2,v2) = (min(s1,s2), v1+v2),
// with infinity absorbing (the sum is infinite if either operand is).
func Add(a, b Bound) Bound {
	if a.IsInfinity() || b.IsInfinity() {
		return Infinity
	}
	return Bound{Value: a.Value + b.Value, Strict: a.Strict || b.Strict}
}

// Negate flips strictness and sign, used when a bound on xi-xj must be read
// as a bound on xj-xi (e.g. by the aLU inclusion predicate). Never called on
// Infinity.
func Negate(b Bound) Bound {
	if b.IsInfinity() {
		panic("dbm: Negate of infinity is undefined")
	}
	return Bound{Value: -b.Value, Strict: !b.Strict}
}

func (b Bound) String() string {
	op := "<="
	if b.Strict {
		op = "<"
	}
	if b.IsInfinity() {
		return fmt.Sprintf("%sinf", op)
	}
	return fmt.Sprintf("%s%d", op, b.Value)
}
