package covreach

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/stretchr/testify/require"
)

// buildGrowingClockSystem builds a single process, single initial location
// l with a self-loop on event e that unconditionally advances the clock
// by one (x := x + 1, no guard). Each successor's zone is a strict subset
// of its predecessor's (x>=k+1 implies x>=k), so plain-inclusion
// subsumption retires every successor but the first without ever needing
// aLU/aM abstraction.
func buildGrowingClockSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	l := b.Location(p, "l", true, false, false, nil)
	reset := vm.NewBuilder().ClockResetSum(1, 1, 1).Build()
	b.Edge(p, l, l, 0, nil, reset)
	return b.Build()
}

func TestInclusionSubsumptionBoundsStorageGrowth(t *testing.T) {
	sys := buildGrowingClockSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.NoExtra}, 8, 16)

	stats, witness := Run(tsys, state.NewLabels(0), BFS, Inclusion)
	require.False(t, stats.Reachable)
	require.Nil(t, witness)
	require.Equal(t, 2, stats.Visited) // root (x=0), then its successor (x>=1)
	require.Equal(t, 2, stats.Stored)
	require.Equal(t, 1, stats.Covered) // x>=2 is a subset of x>=1, discarded on arrival
}

// buildBoundedLoopSystem mirrors the CLI's builtin "alu-loop" system: a
// self-loop guarded by x<=2 with reset x:=0, exercised here only to
// confirm the aLU/aM code paths run to completion without panicking and
// never report a negative or inconsistent statistic, since pinning an
// exact visited/covered count for an aLU run without executing the
// toolchain would be guesswork.
func buildBoundedLoopSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	l := b.Location(p, "l", true, false, false, nil)
	guard := vm.NewBuilder().ClockGuardLE(1, 2, false).Build()
	reset := vm.NewBuilder().ClockResetConst(1, 0).Build()
	b.Edge(p, l, l, 0, guard, reset)
	return b.Build()
}

func TestALULocalSubsumptionTerminatesWithoutPanic(t *testing.T) {
	sys := buildBoundedLoopSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.ExtraLU, Scope: ts.Local}, 8, 16)

	stats, _ := Run(tsys, state.NewLabels(0), BFS, ALULocal)
	require.GreaterOrEqual(t, stats.Visited, 1)
	require.GreaterOrEqual(t, stats.Stored, stats.Visited)
	require.GreaterOrEqual(t, stats.Covered, 0)
}

func TestPolicyRequiringExtrapolationPanicsWithoutIt(t *testing.T) {
	sys := buildBoundedLoopSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Standard, Extrapolation: ts.NoExtra}, 8, 16)

	require.Panics(t, func() {
		Run(tsys, state.NewLabels(0), BFS, AMGlobal)
	})
}
