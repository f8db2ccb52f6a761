package dbm

// Constrain applies xi - xj # c (spec 4.1). If the new bound is no tighter
// than the current dbm[i,j] it is a no-op; otherwise it is installed and
// tightness is restored incrementally through the changed entry. Returns
// Empty if the constraint makes the zone empty, NonEmpty otherwise.
func (d *DBM) Constrain(i, j int, b Bound) Outcome {
	if i < 0 || i >= d.dim || j < 0 || j >= d.dim {
		panic("dbm: Constrain clock out of range")
	}
	if d.IsEmpty0() {
		return Empty
	}
	if Cmp(b, d.At(i, j)) >= 0 {
		return NonEmpty
	}
	d.set(i, j, b)
	return d.CloseFrom(i, j)
}

// Intersection computes the element-wise min of a and b, then tightens.
// Both must share the same dimension. Returns a new DBM and its emptiness
// outcome; a or b being already empty yields an empty result.
func Intersection(a, b *DBM) (*DBM, Outcome) {
	if a.dim != b.dim {
		panic("dbm: Intersection dimension mismatch")
	}
	if a.IsEmpty0() || b.IsEmpty0() {
		return EmptyDBM(a.dim), Empty
	}
	r := newRaw(a.dim)
	for idx := range r.m {
		r.m[idx] = Min(a.m[idx], b.m[idx])
	}
	out := r.Close()
	return r, out
}

// OpenUp elapses time: for all i>0, dbm[i,0] becomes (<,+inf). Tightness is
// preserved without needing a fresh closure, since relaxing an upper bound
// on xi-x0 can never tighten any other entry.
func (d *DBM) OpenUp() {
	if d.IsEmpty0() {
		return
	}
	for i := 1; i < d.dim; i++ {
		d.set(i, 0, Infinity)
	}
}
