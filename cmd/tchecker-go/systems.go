package main

import (
	"fmt"

	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/vm"
)

// builtinSystems names the small, self-contained systems the CLI can
// explore. There is no parser in scope (a model loader is assumed to
// hand the driver an already-elaborated *system.System); these stand in
// for it so the CLI has something concrete to point --system at.
var builtinSystems = map[string]func() *system.System{
	"point":       buildPointSystem,
	"delay-guard": buildDelayGuardSystem,
	"committed":   buildCommittedSystem,
	"alu-loop":    buildALULoopSystem,
	"lasso":       buildLassoSystem,
	"chain":       buildChainSystem,
}

func resolveSystem(name string) (*system.System, error) {
	build, ok := builtinSystems[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errUnknownSystem, name)
	}
	return build(), nil
}

// buildPointSystem is one process, one location, one clock, no edges:
// initial() yields a single non-reachable-beyond state.
func buildPointSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	b.Location(p, "l0", true, false, false, nil)
	return b.Build()
}

// buildDelayGuardSystem is a{initial} -> b on a guard x>=3, reset x:=0.
func buildDelayGuardSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	b.Label("target")
	a := b.Location(p, "a", true, false, false, nil)
	bb := b.Location(p, "b", false, false, false, nil, "target")
	guard := vm.NewBuilder().ClockGuardGE(1, 3, false).Build()
	reset := vm.NewBuilder().ClockResetConst(1, 0).Build()
	b.Edge(p, a, bb, 0, guard, reset)
	return b.Build()
}

// buildCommittedSystem has two processes strongly synchronised on event
// e; Q's initial location is committed, so its y>=1 guard can never be
// satisfied since delay is forbidden there.
func buildCommittedSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	q := b.Process("Q")
	b.ClockVar("x", 1)
	b.ClockVar("y", 1)
	b.Label("target")
	lp := b.Location(p, "lp", true, false, false, nil)
	lp2 := b.Location(p, "lp2", false, false, false, nil)
	lq := b.Location(q, "lq", true, true, false, nil)
	lq2 := b.Location(q, "lq2", false, false, false, nil, "target")
	const e = 0
	b.Edge(p, lp, lp2, e, nil, nil)
	guard := vm.NewBuilder().ClockGuardGE(2, 1, false).Build()
	b.Edge(q, lq, lq2, e, guard, nil)
	b.Sync(
		system.SyncConstraint{Process: p, Event: e, Strength: system.Strong},
		system.SyncConstraint{Process: q, Event: e, Strength: system.Strong},
	)
	return b.Build()
}

// buildALULoopSystem is a self-loop on l{initial} with reset x:=0; under
// aLU-local subsumption the repeated visit is covered after one step.
func buildALULoopSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	l := b.Location(p, "l", true, false, false, nil)
	guard := vm.NewBuilder().ClockGuardLE(1, 2, false).Build()
	reset := vm.NewBuilder().ClockResetConst(1, 0).Build()
	b.Edge(p, l, l, 0, guard, reset)
	return b.Build()
}

// buildLassoSystem is a single accepting self-loop location.
func buildLassoSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	b.Label("accepting")
	a := b.Location(p, "a", true, false, false, nil, "accepting")
	b.Edge(p, a, a, 0, nil, nil)
	return b.Build()
}

// buildChainSystem is a linear a -> b -> c{accepting} chain with no
// outgoing edge from c: no lasso exists.
func buildChainSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	b.Label("accepting")
	a := b.Location(p, "a", true, false, false, nil)
	bb := b.Location(p, "b", false, false, false, nil)
	c := b.Location(p, "c", false, false, false, nil, "accepting")
	b.Edge(p, a, bb, 0, nil, nil)
	b.Edge(p, bb, c, 0, nil, nil)
	return b.Build()
}
