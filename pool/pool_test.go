package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type cell struct {
	RefCounted
	tag int
}

func TestConstructGrowsInBlocks(t *testing.T) {
	n := 0
	p := New(4, func() *cell { n++; return &cell{tag: n} })
	c := p.Construct()
	require.Equal(t, int32(1), c.RefCount())
	require.Equal(t, 1, p.Blocks())
	require.Equal(t, 4, p.Capacity())
	require.Equal(t, 1, p.Live())
}

func TestDestructRecyclesAtZeroRefcount(t *testing.T) {
	p := New(2, func() *cell { return &cell{} })
	a := p.Construct()
	require.NoError(t, p.Destruct(a))
	require.Equal(t, 0, p.Live())

	b := p.Construct()
	require.Same(t, a, b) // recycled from the free list
}

func TestShareIncrementsRefcount(t *testing.T) {
	p := New(2, func() *cell { return &cell{} })
	a := p.Construct()
	p.Share(a)
	require.Equal(t, int32(2), a.RefCount())
	require.NoError(t, p.Destruct(a))
	require.Equal(t, int32(1), a.RefCount())
	require.Equal(t, 1, p.Live()) // still live: one reference remains
}

func TestDestructRejectsAlreadyZero(t *testing.T) {
	p := New(1, func() *cell { return &cell{} })
	a := p.Construct()
	require.NoError(t, p.Destruct(a))
	require.ErrorIs(t, p.Destruct(a), ErrNegativeRelease)
}

func TestBlocksNeverShrink(t *testing.T) {
	p := New(2, func() *cell { return &cell{} })
	a, b, c := p.Construct(), p.Construct(), p.Construct()
	require.Equal(t, 2, p.Blocks())
	require.NoError(t, p.Destruct(a))
	require.NoError(t, p.Destruct(b))
	require.NoError(t, p.Destruct(c))
	require.Equal(t, 2, p.Blocks())
}
