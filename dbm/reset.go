package dbm

// resetToConstant applies x := k in place, per spec 4.1. Tight by
// construction given a tight input, so no closure call is needed.
func (d *DBM) resetToConstant(x ClockID, k int32) {
	d.set(int(x), 0, LE(k))
	d.set(0, int(x), LE(-k))
	for y := 1; y < d.dim; y++ {
		if ClockID(y) == x {
			continue
		}
		d.set(int(x), y, Add(d.At(0, y), LE(k)))
		d.set(y, int(x), Add(d.At(y, 0), LE(-k)))
	}
}

// resetToClock applies x := y in place: copy y's row/column into x, then
// re-zero the diagonal.
func (d *DBM) resetToClock(x, y ClockID) {
	for z := 0; z < d.dim; z++ {
		if ClockID(z) == x {
			continue
		}
		d.set(int(x), z, d.At(int(y), z))
		d.set(z, int(x), d.At(z, int(y)))
	}
	d.set(int(x), int(x), Zero)
}

// resetToSum applies x := y + k in place: y's row/column shifted by k.
func (d *DBM) resetToSum(x, y ClockID, k int32) {
	for z := 0; z < d.dim; z++ {
		if ClockID(z) == x {
			continue
		}
		d.set(int(x), z, Add(d.At(int(y), z), LE(k)))
		d.set(z, int(x), Add(d.At(z, int(y)), LE(-k)))
	}
	d.set(int(x), int(x), Zero)
}

// applyOne applies a single reset in place, dispatching on its normal form.
func (d *DBM) applyOne(r Reset) {
	if r.Target == 0 {
		panic("dbm: reset target must not be the reference clock")
	}
	if r.Value < 0 {
		panic("dbm: " + ErrNegativeReset.Error())
	}
	switch {
	case r.IsToConstant():
		d.resetToConstant(r.Target, r.Value)
	case r.Value == 0:
		d.resetToClock(r.Target, r.Source)
	default:
		d.resetToSum(r.Target, r.Source, r.Value)
	}
}

// IsSafeContainer reports whether the set of target clocks is disjoint from
// the set of source clocks (spec 3.1), i.e. the resets can be applied
// sequentially in place without one reset reading another's stale output.
func IsSafeContainer(resets []Reset) bool {
	targets := make(map[ClockID]bool, len(resets))
	for _, r := range resets {
		targets[r.Target] = true
	}
	for _, r := range resets {
		if !r.IsToConstant() && targets[r.Source] {
			return false
		}
	}
	return true
}

// ApplyResetsInPlace applies a safe reset container to d in place, in
// order. Returns ErrUnsafeResetContainer without modifying d if the
// container is not safe; callers must fall back to ApplyResetsBuffered.
func (d *DBM) ApplyResetsInPlace(resets []Reset) error {
	if !IsSafeContainer(resets) {
		return ErrUnsafeResetContainer
	}
	for _, r := range resets {
		d.applyOne(r)
	}
	return nil
}

// ApplyResetsBuffered applies an arbitrary (possibly unsafe) reset
// container, building the result from the old DBM per spec 4.1: for each
// clock z, let (src(z), off(z)) be (r.Source, r.Value) if z is some r.Target
// in resets, else (z, 0); then new[z1,z2] = old[src(z1),src(z2)] + (<=,
// off(z1)-off(z2)). The result is re-tightened before return.
func (d *DBM) ApplyResetsBuffered(resets []Reset) *DBM {
	src := make([]ClockID, d.dim)
	off := make([]int32, d.dim)
	for z := range src {
		src[z] = ClockID(z)
	}
	for _, r := range resets {
		src[r.Target] = r.Source
		off[r.Target] = r.Value
	}

	out := newRaw(d.dim)
	for z1 := 0; z1 < d.dim; z1++ {
		for z2 := 0; z2 < d.dim; z2++ {
			shift := LE(off[z1] - off[z2])
			out.set(z1, z2, Add(d.At(int(src[z1]), int(src[z2])), shift))
		}
	}
	out.Close()
	return out
}

// ApplyResets applies resets to d, using the cheaper in-place path when the
// container is safe and falling back to the buffered construction
// otherwise. Returns the resulting DBM (d itself, mutated, in the safe
// case; a fresh DBM otherwise).
func (d *DBM) ApplyResets(resets []Reset) *DBM {
	if IsSafeContainer(resets) {
		if err := d.ApplyResetsInPlace(resets); err != nil {
			panic(err)
		}
		return d
	}
	return d.ApplyResetsBuffered(resets)
}
