package dbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloseUniversalStaysUniversal(t *testing.T) {
	d := Universal(3)
	out := d.Close()
	require.Equal(t, NonEmpty, out)
	require.True(t, d.IsUniversal())
}

func TestCloseDetectsNegativeCycle(t *testing.T) {
	d := Universal(2)
	// x1 - x0 <= -1 and x0 - x1 <= -1 is a negative cycle (x1<x0<x1).
	d.set(1, 0, LE(-1))
	d.set(0, 1, LE(-1))
	out := d.Close()
	require.Equal(t, Empty, out)
	require.True(t, d.IsEmpty0())
}

func TestCloseFromMatchesFullClose(t *testing.T) {
	d1 := Universal(3)
	d1.set(1, 0, LE(5))
	full := d1.Clone()
	full.Close()

	d2 := Universal(3)
	d2.set(1, 0, LE(5))
	d2.CloseFrom(1, 0)

	require.True(t, full.IsEqual(d2))
}

func TestCloseIsTightAfterConstraints(t *testing.T) {
	d := Universal(3)
	d.set(1, 0, LE(10))
	d.set(0, 2, LE(-2)) // x2 >= 2
	d.set(2, 1, LE(3))  // x2 - x1 <= 3
	d.Close()
	require.True(t, d.IsTight())
	require.True(t, d.IsConsistent())
}
