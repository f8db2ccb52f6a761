package dbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstrainWeakerIsNoOp(t *testing.T) {
	d := Universal(2)
	d.Constrain(1, 0, LE(5))
	before := d.At(1, 0)
	out := d.Constrain(1, 0, LE(10))
	require.Equal(t, NonEmpty, out)
	require.Equal(t, before, d.At(1, 0))
}

func TestConstrainTightensAndPropagates(t *testing.T) {
	d := Universal(3)
	d.Constrain(1, 0, LE(5)) // x1 <= 5
	d.Constrain(0, 2, LE(-2)) // x2 >= 2
	out := d.Constrain(2, 1, LE(-4)) // x2 - x1 <= -4, i.e. x1 >= x2 + 4 >= 6, contradicts x1<=5
	require.Equal(t, Empty, out)
	require.True(t, d.IsEmpty0())
}

func TestConstrainStaysNonEmpty(t *testing.T) {
	d := Universal(3)
	out := d.Constrain(1, 0, LE(5))
	require.Equal(t, NonEmpty, out)
	out = d.Constrain(0, 1, LE(-2))
	require.Equal(t, NonEmpty, out)
	require.True(t, d.IsTight())
}

func TestIntersectionWithSelfIsSelf(t *testing.T) {
	d := Universal(3)
	d.Constrain(1, 0, LE(5))
	r, out := Intersection(d, d)
	require.Equal(t, NonEmpty, out)
	require.True(t, r.IsEqual(d))
}

func TestIntersectionWithUniversalIsSelf(t *testing.T) {
	d := Universal(3)
	d.Constrain(1, 0, LE(5))
	u := Universal(3)
	r, out := Intersection(d, u)
	require.Equal(t, NonEmpty, out)
	require.True(t, r.IsEqual(d))
}

func TestOpenUpIdempotentUpToTightening(t *testing.T) {
	d := ZeroDBM(3)
	d.OpenUp()
	once := d.Clone()
	d.OpenUp()
	d.Close()
	once.Close()
	require.True(t, d.IsEqual(once))
}
