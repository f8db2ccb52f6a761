package couvreur

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/stretchr/testify/require"
)

func buildSelfLoopSystem() (*system.System, int) {
	b := system.NewBuilder()
	p := b.Process("P")
	accepting := b.Label("accepting")
	a := b.Location(p, "a", true, false, false, nil, "accepting")
	b.Edge(p, a, a, 0, nil, nil)
	return b.Build(), accepting
}

func TestSelfLoopOnAcceptingLocationIsALasso(t *testing.T) {
	sys, accepting := buildSelfLoopSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.NoExtra}, 8, 16)

	want := state.NewLabels(1)
	want.Set(uint(accepting))

	stats, witness := Run(tsys, want)
	require.True(t, stats.Cycle)
	require.NotNil(t, witness)
	require.Equal(t, stats.Stored, stats.Visited)
}

func buildLinearChainSystem() (*system.System, int) {
	b := system.NewBuilder()
	p := b.Process("P")
	accepting := b.Label("accepting")
	a := b.Location(p, "a", true, false, false, nil)
	bb := b.Location(p, "b", false, false, false, nil)
	c := b.Location(p, "c", false, false, false, nil, "accepting")
	b.Edge(p, a, bb, 0, nil, nil)
	b.Edge(p, bb, c, 1, nil, nil)
	return b.Build(), accepting
}

func TestLinearChainHasNoLasso(t *testing.T) {
	sys, accepting := buildLinearChainSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.NoExtra}, 8, 16)

	want := state.NewLabels(1)
	want.Set(uint(accepting))

	stats, witness := Run(tsys, want)
	require.False(t, stats.Cycle)
	require.Nil(t, witness)
	require.Equal(t, 3, stats.Visited)
	require.Equal(t, 3, stats.Stored)
}
