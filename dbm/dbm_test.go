package dbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUniversalIsTightAndConsistent(t *testing.T) {
	d := Universal(3)
	require.True(t, d.IsConsistent())
	require.True(t, d.IsTight())
	require.False(t, d.IsEmpty0())
	require.True(t, d.IsUniversal())
}

func TestZeroDBMIsTight(t *testing.T) {
	d := ZeroDBM(3)
	require.True(t, d.IsConsistent())
	require.True(t, d.IsTight())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, Zero, d.At(i, j))
		}
	}
}

func TestEmptyDBMSentinel(t *testing.T) {
	d := EmptyDBM(2)
	require.True(t, d.IsEmpty0())
}

func TestIsEqualIgnoresEmptyLayout(t *testing.T) {
	a := EmptyDBM(2)
	b := EmptyDBM(2)
	require.True(t, a.IsEqual(b))
}

func TestCloneIndependence(t *testing.T) {
	d := ZeroDBM(2)
	c := d.Clone()
	c.set(0, 1, LE(7))
	require.NotEqual(t, d.At(0, 1), c.At(0, 1))
}

func TestIsLeReflexiveAndUniversal(t *testing.T) {
	z := ZeroDBM(3)
	require.True(t, z.IsLe(z))
	u := Universal(3)
	require.True(t, z.IsLe(u))
	require.False(t, u.IsLe(z))
}
