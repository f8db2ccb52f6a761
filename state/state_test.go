package state

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/zone"
	"github.com/stretchr/testify/require"
)

func TestVlocEqualAndHash(t *testing.T) {
	a := NewVloc([]LocationID{1, 2})
	b := NewVloc([]LocationID{1, 2})
	c := NewVloc([]LocationID{1, 3})
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(c))
}

func TestIntvalWithDoesNotMutateOriginal(t *testing.T) {
	iv := NewIntval([]int32{0, 5})
	next := iv.With(0, 9)
	require.Equal(t, int32(0), iv.Get(0))
	require.Equal(t, int32(9), next.Get(0))
}

func TestLabelsIntersects(t *testing.T) {
	a := NewLabels(4)
	a.Set(1)
	target := NewLabels(4)
	target.Set(1)
	target.Set(2)
	require.True(t, a.Intersects(target))

	b := NewLabels(4)
	b.Set(3)
	require.False(t, b.Intersects(target))
}

func TestStateEqualityIsComponentwise(t *testing.T) {
	v := NewVloc([]LocationID{0})
	iv := NewIntval([]int32{0})
	z := zone.Universal(2)
	labels := NewLabels(1)
	s1 := New(v, iv, z, labels, true)
	s2 := New(v.Clone(), iv.Clone(), z.Clone(), labels, true)
	require.True(t, s1.Equal(s2))
	require.Equal(t, s1.Hash(), s2.Hash())

	z2 := z.Clone()
	z2.DBM().Constrain(1, 0, dbm.LE(3))
	s3 := New(v.Clone(), iv.Clone(), z2, labels, true)
	require.False(t, s1.Equal(s3))
}

func TestSatisfiesRequiresNonEmptyTarget(t *testing.T) {
	s := New(NewVloc([]LocationID{0}), NewIntval(nil), zone.New(1), NewLabels(1), true)
	require.False(t, s.Satisfies(nil))
	require.False(t, s.Satisfies(NewLabels(1)))
}
