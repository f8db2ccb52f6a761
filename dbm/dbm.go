package dbm

import (
	"strconv"
	"strings"
)

// Outcome classifies the emptiness status of an operation's result, per spec
// 4.1's failure semantics. Callers must not use a DBM after an operation
// returns Empty except to discard it.
type Outcome int

const (
	// NonEmpty: the result is a tight, consistent, non-empty DBM.
	NonEmpty Outcome = iota
	// Empty: the result represents the empty zone.
	Empty
	// MayBeEmpty: the operation does not itself determine emptiness; the
	// caller must inspect the result with IsEmpty0.
	MayBeEmpty
)

// DBM is a dim x dim array of difference bounds, stored row-major in a flat
// slice: At(i, j) == m[i*dim+j] is the bound on xi - xj.
type DBM struct {
	dim int
	m   []Bound
}

// Dim returns the DBM's dimension (number of clocks, including the
// reference clock 0).
func (d *DBM) Dim() int { return d.dim }

// At returns the bound on xi - xj.
func (d *DBM) At(i, j int) Bound { return d.m[i*d.dim+j] }

// set installs the bound on xi - xj directly, without tightening. Only
// constructors and the tightening/constrain/reset primitives in this
// package should call it; external callers should use Constrain.
func (d *DBM) set(i, j int, b Bound) { d.m[i*d.dim+j] = b }

func newRaw(dim int) *DBM {
	if dim <= 0 {
		panic("dbm: dimension must be positive")
	}
	return &DBM{dim: dim, m: make([]Bound, dim*dim)}
}

// Universal returns the dim x dim DBM with every entry unconstrained except
// the diagonal ((<=,0)) and the first row ((<=,0), enforcing positivity of
// the reference clock against every other clock). Tight by construction.
func Universal(dim int) *DBM {
	d := newRaw(dim)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			d.set(i, j, Infinity)
		}
		d.set(i, i, Zero)
	}
	for j := 0; j < dim; j++ {
		d.set(0, j, Zero)
	}
	return d
}

// UniversalPositive is Universal with the additional constraint dbm[0,i] =
// (<=,0) for all i, i.e. every clock is non-negative (already implied by
// Universal's first row, kept as a distinct named constructor per spec 4.1).
func UniversalPositive(dim int) *DBM {
	d := Universal(dim)
	for i := 0; i < dim; i++ {
		d.set(0, i, Zero)
	}
	return d
}

// ZeroDBM returns the single-point DBM x0 = x1 = ... = 0: every entry (<=,0).
// Tight by construction.
func ZeroDBM(dim int) *DBM {
	d := newRaw(dim)
	for i := range d.m {
		d.m[i] = Zero
	}
	return d
}

// EmptyDBM returns a DBM flagged empty (dbm[0,0] = (<,0)); other entries are
// unspecified and must not be read. Used only as an operation's output.
func EmptyDBM(dim int) *DBM {
	d := newRaw(dim)
	d.set(0, 0, LT(0))
	return d
}

// Clone returns an independent copy of d.
func (d *DBM) Clone() *DBM {
	c := &DBM{dim: d.dim, m: make([]Bound, len(d.m))}
	copy(c.m, d.m)
	return c
}

// IsEmpty0 is the cheap emptiness check: inspect dbm[0,0].
func (d *DBM) IsEmpty0() bool { return d.At(0, 0).Strict && d.At(0, 0).Value <= 0 }

// IsConsistent checks dbm[i,i] <= (<=,0) for all i and dbm[0,i] <= (<=,0)
// for all i (positivity).
func (d *DBM) IsConsistent() bool {
	for i := 0; i < d.dim; i++ {
		if Cmp(d.At(i, i), Zero) > 0 {
			return false
		}
		if Cmp(d.At(0, i), Zero) > 0 {
			return false
		}
	}
	return true
}

// IsTight checks dbm[i,j] <= dbm[i,k] + dbm[k,j] for all i,j,k.
func (d *DBM) IsTight() bool {
	n := d.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ij := d.At(i, j)
			for k := 0; k < n; k++ {
				if Cmp(ij, Add(d.At(i, k), d.At(k, j))) > 0 {
					return false
				}
			}
		}
	}
	return true
}

// IsUniversal reports whether every entry equals the Universal DBM's.
func (d *DBM) IsUniversal() bool {
	u := Universal(d.dim)
	return d.IsEqual(u)
}

// IsPositive reports whether dbm[0,i] = (<=,0) for all i.
func (d *DBM) IsPositive() bool {
	for i := 0; i < d.dim; i++ {
		if d.At(0, i) != Zero {
			return false
		}
	}
	return true
}

// IsEqual is structural, element-wise equality of two tight DBMs, or of two
// DBMs that are both empty. Dimension mismatch is treated as inequality.
func (d *DBM) IsEqual(other *DBM) bool {
	if d.dim != other.dim {
		return false
	}
	if d.IsEmpty0() || other.IsEmpty0() {
		return d.IsEmpty0() == other.IsEmpty0()
	}
	for i := range d.m {
		if d.m[i] != other.m[i] {
			return false
		}
	}
	return true
}

// IsLe reports whether every valuation of d also satisfies other, i.e.
// d's zone is included in other's zone. Both DBMs must be tight. An empty
// d is included in anything; a non-empty d is never included in an empty
// other.
func (d *DBM) IsLe(other *DBM) bool {
	if d.dim != other.dim {
		panic("dbm: IsLe dimension mismatch")
	}
	if d.IsEmpty0() {
		return true
	}
	if other.IsEmpty0() {
		return false
	}
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if Cmp(d.At(i, j), other.At(i, j)) > 0 {
				return false
			}
		}
	}
	return true
}

// String renders the DBM as a human-readable list of non-trivial
// constraints, for diagnostics and dot output.
func (d *DBM) String() string {
	if d.IsEmpty0() {
		return "false"
	}
	var parts []string
	for i := 0; i < d.dim; i++ {
		for j := 0; j < d.dim; j++ {
			if i == j {
				continue
			}
			b := d.At(i, j)
			if b.IsInfinity() {
				continue
			}
			parts = append(parts, clockDiffString(i, j, b))
		}
	}
	if len(parts) == 0 {
		return "true"
	}
	return strings.Join(parts, " && ")
}

func clockDiffString(i, j int, b Bound) string {
	op := "<="
	if b.Strict {
		op = "<"
	}
	val := strconv.FormatInt(int64(b.Value), 10)
	if j == 0 {
		return "x" + strconv.Itoa(i) + " " + op + " " + val
	}
	if i == 0 {
		return "-x" + strconv.Itoa(j) + " " + op + " " + val
	}
	return "x" + strconv.Itoa(i) + "-x" + strconv.Itoa(j) + " " + op + " " + val
}
