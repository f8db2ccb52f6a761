package reach

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/stretchr/testify/require"
)

// buildPointSystem mirrors the ts package's scenario 1: one process, one
// initial location, no edges, no labels.
func buildPointSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	b.Location(p, "l0", true, false, false, nil)
	return b.Build()
}

func TestRunWithEmptyTargetIsNeverReachable(t *testing.T) {
	sys := buildPointSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.NoExtra}, 8, 16)

	stats, witness := Run(tsys, state.NewLabels(0), BFS)
	require.Equal(t, 1, stats.Visited)
	require.Equal(t, 1, stats.Stored)
	require.False(t, stats.Reachable)
	require.Nil(t, witness)
}

// buildDelayGuardSystem mirrors the ts package's scenario 2, but labels the
// target location "b" (since reach needs a label predicate, not a raw
// location id) reachable by waiting x up to 3 and firing edge e.
func buildDelayGuardSystem() (*system.System, int) {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	target := b.Label("target")
	a := b.Location(p, "a", true, false, false, nil)
	bb := b.Location(p, "b", false, false, false, nil, "target")
	guard := vm.NewBuilder().ClockGuardGE(1, 3, false).Build()
	reset := vm.NewBuilder().ClockResetConst(1, 0).Build()
	b.Edge(p, a, bb, 0, guard, reset)
	return b.Build(), target
}

func TestRunFindsTargetViaDelayAndGuard(t *testing.T) {
	sys, target := buildDelayGuardSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Elapsed, Extrapolation: ts.NoExtra}, 8, 16)

	want := state.NewLabels(1)
	want.Set(uint(target))

	stats, witness := Run(tsys, want, BFS)
	require.True(t, stats.Reachable)
	require.Equal(t, 2, stats.Visited)
	require.NotNil(t, witness)
	require.NotNil(t, witness.Parent)
	require.True(t, witness.State.Satisfies(want))
}

// buildCommittedSystem mirrors the ts package's scenario 3: the shared
// edge's guard y>=1 can never fire because committed Q forbids the delay
// needed to satisfy it, so the labelled target stays unreachable.
func buildCommittedSystem() (*system.System, int) {
	b := system.NewBuilder()
	p := b.Process("P")
	q := b.Process("Q")
	b.ClockVar("y", 1)
	target := b.Label("target")
	lp := b.Location(p, "lp", true, false, false, nil)
	lp2 := b.Location(p, "lp2", false, false, false, nil)
	lq := b.Location(q, "lq", true, true, false, nil)
	lq2 := b.Location(q, "lq2", false, false, false, nil, "target")
	guard := vm.NewBuilder().ClockGuardGE(1, 1, false).Build()
	b.Edge(p, lp, lp2, 0, nil, nil)
	b.Edge(q, lq, lq2, 0, guard, nil)
	b.Sync(system.SyncConstraint{Process: p, Event: 0, Strength: system.Strong}, system.SyncConstraint{Process: q, Event: 0, Strength: system.Strong})
	return b.Build(), target
}

func TestRunUnreachableUnderCommittedDelayProhibition(t *testing.T) {
	sys, target := buildCommittedSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Elapsed, Extrapolation: ts.NoExtra}, 8, 16)

	want := state.NewLabels(1)
	want.Set(uint(target))

	stats, witness := Run(tsys, want, DFS)
	require.False(t, stats.Reachable)
	require.Nil(t, witness)
	require.Equal(t, 1, stats.Visited) // the only successor candidate fails its guard
}
