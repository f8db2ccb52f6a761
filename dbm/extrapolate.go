package dbm

// BoundMap gives, for each clock identifier, the greatest constant that
// clock is ever compared against in the system (or NoBound if the clock is
// never compared and so can be made unconstrained). Index 0 (the reference
// clock) is unused by convention and should be left zero.
type BoundMap []int32

// NoBound marks a clock as having no finite bound: every constraint on it
// is dropped by extrapolation.
const NoBound int32 = -1

func (m BoundMap) at(c ClockID) int32 {
	if int(c) >= len(m) {
		return NoBound
	}
	return m[c]
}

// ExtraM abstracts d in place using a single bound map M, per spec 4.1: an
// entry dbm[i,j] is weakened to infinity when it exceeds M(i), or when its
// implied lower bound on xj exceeds M(j); in the latter case, if i is the
// reference clock the entry is tightened to (<, -M(j)) rather than dropped
// entirely, preserving the fact that xj is known to exceed M(j). The DBM is
// re-tightened before return.
func (d *DBM) ExtraM(m BoundMap) {
	d.extraLU(m, m, false)
}

// ExtraMPlus is ExtraM's more aggressive sibling: beyond dropping
// out-of-bound entries to infinity, it also drops every entry dbm[i,j]
// (i != 0) whose clock xi has a lower bound above M(i), or whose clock xj
// (j != 0) has a lower bound above M(j). It only ever weakens entries, so
// its result includes both the input and ExtraM's result.
func (d *DBM) ExtraMPlus(m BoundMap) {
	d.extraLU(m, m, true)
}

// ExtraLU is ExtraM generalised to distinct lower (L) and upper (U) bound
// maps, following the Herbreteau-Srivathsan-Walukiewicz aLU abstraction.
func (d *DBM) ExtraLU(l, u BoundMap) {
	d.extraLU(l, u, false)
}

// ExtraLUPlus is the aggressive counterpart of ExtraLU, analogous to
// ExtraMPlus.
func (d *DBM) ExtraLUPlus(l, u BoundMap) {
	d.extraLU(l, u, true)
}

func (d *DBM) extraLU(l, u BoundMap, aggressive bool) {
	if d.IsEmpty0() {
		return
	}
	n := d.dim

	for i := 0; i < n; i++ {
		ui := u.at(ClockID(i))
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			entry := d.At(i, j)
			aboveUpper := !entry.IsInfinity() && (ui == NoBound || entry.Value > ui)
			lj := l.at(ClockID(j))
			ji := d.At(j, i)
			belowLower := !ji.IsInfinity() && (lj == NoBound || -ji.Value > lj)

			if aboveUpper || belowLower {
				d.set(i, j, Infinity)
			}
			if belowLower && i == 0 && lj != NoBound {
				d.set(i, j, LT(-lj))
			}
		}
	}

	if aggressive {
		for i := 1; i < n; i++ {
			ui := u.at(ClockID(i))
			lowI := -d.At(0, i).Value
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				lj := l.at(ClockID(j))
				if lowI > ui || (j != 0 && -d.At(0, j).Value > lj) {
					d.set(i, j, Infinity)
				}
			}
		}
	}

	d.Close()
}
