package dbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// boundedClock returns a zero-started, opened-up, tight 2-dimensional DBM
// (reference clock 0, automaton clock 1) further constrained to lo<=x<=hi;
// hi may be Infinity's value sentinel via NoBound's absence (pass -1 for
// "no upper constraint").
func boundedClock(t *testing.T, lo, hi int32) *DBM {
	t.Helper()
	d := ZeroDBM(2)
	d.OpenUp()
	require.Equal(t, NonEmpty, d.Close())
	if lo > 0 {
		require.Equal(t, NonEmpty, d.Constrain(0, 1, LE(-lo)))
	}
	if hi >= 0 {
		require.Equal(t, NonEmpty, d.Constrain(1, 0, LE(hi)))
	}
	return d
}

func TestIsALULeTrivialWhenPlainInclusionHolds(t *testing.T) {
	a := boundedClock(t, 2, 5)
	b := boundedClock(t, 0, 5)
	require.True(t, a.IsLe(b))
	require.True(t, IsALULe(a, b, BoundMap{0, NoBound}, BoundMap{0, NoBound}))
}

func TestIsALULeToleratesMismatchBeyondUpperBound(t *testing.T) {
	a := boundedClock(t, 2, -1) // x in [2, +inf)
	b := boundedClock(t, 0, 1)  // x in [0, 1]
	require.False(t, a.IsLe(b), "without abstraction a is not included in b")

	u := BoundMap{0, 1} // U(x)=1: any value beyond 1 is indistinguishable
	require.True(t, IsALULe(a, b, BoundMap{0, NoBound}, u),
		"a's unbounded excess over b's x<=1 must be tolerated once beyond U(x)")
}

func TestIsALULeRejectsMismatchWithinBound(t *testing.T) {
	a := boundedClock(t, 3, 3) // x == 3, within the bound map's reach
	b := boundedClock(t, 0, 1) // x in [0, 1]
	require.False(t, a.IsLe(b))

	u := BoundMap{0, 5} // U(x)=5: x==3 is still distinguishable from x<=1
	require.False(t, IsALULe(a, b, BoundMap{0, NoBound}, u))
}

func TestIsALULeEmptyAIsAlwaysIncluded(t *testing.T) {
	a := EmptyDBM(2)
	b := boundedClock(t, 0, 1)
	require.True(t, IsALULe(a, b, BoundMap{0, NoBound}, BoundMap{0, NoBound}))
}

func TestIsALULeNonEmptyAVsEmptyBIsFalse(t *testing.T) {
	a := boundedClock(t, 0, 1)
	b := EmptyDBM(2)
	require.False(t, IsALULe(a, b, BoundMap{0, NoBound}, BoundMap{0, NoBound}))
}

func TestIsALULePanicsOnDimensionMismatch(t *testing.T) {
	a := boundedClock(t, 0, 1)
	b := EmptyDBM(3)
	require.Panics(t, func() { IsALULe(a, b, BoundMap{0, NoBound}, BoundMap{0, NoBound}) })
}

func TestIsAMLeDelegatesToSingleBoundMap(t *testing.T) {
	a := boundedClock(t, 2, -1)
	b := boundedClock(t, 0, 1)
	m := BoundMap{0, 1}
	require.Equal(t, IsALULe(a, b, m, m), IsAMLe(a, b, m))
	require.True(t, IsAMLe(a, b, m))
}
