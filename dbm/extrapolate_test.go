package dbm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtraMIsSound(t *testing.T) {
	d := ZeroDBM(2)
	d.OpenUp()
	d.Close()
	require.NoError(t, d.ApplyResetsInPlace([]Reset{{Target: 1, Source: 0, Value: 100}}))
	orig := d.Clone()

	m := BoundMap{0, 2}
	d.ExtraM(m)

	require.True(t, orig.IsLe(d), "ExtraM must only weaken the zone: A <= extraM(A)")
}

func TestExtraMIdempotent(t *testing.T) {
	d := ZeroDBM(2)
	d.OpenUp()
	d.Close()
	m := BoundMap{0, 2}
	d.ExtraM(m)
	once := d.Clone()
	d.ExtraM(m)
	require.True(t, d.IsEqual(once))
}

func TestExtraLUWithEqualBoundsMatchesExtraM(t *testing.T) {
	mk := func() *DBM {
		d := ZeroDBM(2)
		d.OpenUp()
		d.Close()
		require.NoError(t, d.ApplyResetsInPlace([]Reset{{Target: 1, Source: 0, Value: 5}}))
		return d
	}
	m := BoundMap{0, 3}
	a := mk()
	a.ExtraM(m)
	b := mk()
	b.ExtraLU(m, m)
	require.True(t, a.IsEqual(b))
}

func TestExtraMPlusNeverTighterThanInput(t *testing.T) {
	d := ZeroDBM(2)
	d.OpenUp()
	d.Close()
	orig := d.Clone()
	m := BoundMap{0, 4}
	d.ExtraMPlus(m)
	require.True(t, orig.IsLe(d))
}

func TestNoBoundDropsAllConstraints(t *testing.T) {
	d := ZeroDBM(2)
	d.OpenUp()
	d.Close()
	require.NoError(t, d.ApplyResetsInPlace([]Reset{{Target: 1, Source: 0, Value: 1000}}))
	m := BoundMap{0, NoBound}
	d.ExtraM(m)
	require.True(t, d.At(1, 0).IsInfinity())
}
