package dbm

// IsALULe checks A <= aLU(B) without materialising aLU(B), following the
// Herbreteau-Srivathsan-Walukiewicz characterisation (spec 4.1): the
// abstraction only cares about a clock difference up to the point where one
// of its two clocks has already run past what L/U can ever distinguish, so
// a per-entry mismatch is tolerated exactly when that entry is already
// "don't care" under the bound maps.
func IsALULe(a, b *DBM, l, u BoundMap) bool {
	if a.dim != b.dim {
		panic("dbm: IsALULe dimension mismatch")
	}
	if a.IsEmpty0() {
		return true
	}
	if b.IsEmpty0() {
		return false
	}
	n := a.dim
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Cmp(a.At(i, j), b.At(i, j)) <= 0 {
				continue
			}

			upperI := u.at(ClockID(i))
			ai0 := a.At(i, 0)
			iExceedsUpper := i != 0 &&
				(upperI == NoBound || ai0.IsInfinity() || ai0.Value >= upperI)

			lowerJ := l.at(ClockID(j))
			a0j := a.At(0, j)
			jExceedsLower := j != 0 &&
				(lowerJ == NoBound || a0j.IsInfinity() || -a0j.Value >= lowerJ)

			if !iExceedsUpper && !jExceedsLower {
				return false
			}
		}
	}
	return true
}

// IsAMLe is IsALULe specialised to a single bound map (L = U = M).
func IsAMLe(a, b *DBM, m BoundMap) bool {
	return IsALULe(a, b, m, m)
}
