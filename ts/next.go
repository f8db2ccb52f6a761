package ts

import (
	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/katalvlaran/tchecker-go/zone"
)

// Next computes the successor of s along ve, following spec 4.5's
// numbered steps exactly (with the source/target elapse order swapped
// between Standard and Elapsed semantics, per step 7).
func (t *TS) Next(s *state.State, ve state.Vedge) (Status, *state.State, *state.Transition) {
	participating := ve.Participating()

	vloc := t.vlocPool.Construct()
	vloc.Init(s.Vloc.Slice())
	intval := t.intvalPool.Construct()
	intval.Init(s.Intval.Slice())
	fail := func(st Status) (Status, *state.State, *state.Transition) {
		t.vlocPool.Destruct(vloc)
		t.intvalPool.Destruct(intval)
		return st, nil, nil
	}

	// Step 1: re-check source invariants of every participating process.
	srcInvProgs := make([]vm.Program, 0, len(participating))
	for _, pid := range participating {
		srcInvProgs = append(srcInvProgs, t.Sys.Location(vloc.Get(pid)).InvariantBytecode)
	}
	ok, srcConstraints, _ := runAll(srcInvProgs, intval)
	if !ok {
		return fail(IntvarsSrcInvariantViolated)
	}

	d := s.Zone.DBM().Clone()

	// Step 2/7: Standard semantics elapses in the source, before the vloc
	// update below; Elapsed semantics elapses later, in the target.
	if t.Policy.Semantics == Standard && delayAllowed(t.Sys, vloc) {
		d.OpenUp()
	}
	if applyConstraints(d, srcConstraints) == dbm.Empty {
		return fail(ClocksSrcInvariantViolated)
	}

	// Step 3: update vloc.
	for _, pid := range participating {
		e := t.Sys.Edge(ve[pid])
		vloc.SetLoc(pid, e.Tgt)
	}

	// Step 4/5: guards.
	guardProgs := make([]vm.Program, 0, len(participating))
	for _, pid := range participating {
		guardProgs = append(guardProgs, t.Sys.Edge(ve[pid]).GuardBytecode)
	}
	ok, guardConstraints, _ := runAll(guardProgs, intval)
	if !ok {
		return fail(IntvarsGuardViolated)
	}
	if applyConstraints(d, guardConstraints) == dbm.Empty {
		return fail(ClocksGuardViolated)
	}

	// Step 6: updates.
	updateProgs := make([]vm.Program, 0, len(participating))
	for _, pid := range participating {
		updateProgs = append(updateProgs, t.Sys.Edge(ve[pid]).UpdateBytecode)
	}
	ok, _, resets := runAll(updateProgs, intval)
	if !ok {
		return fail(IntvarsStatementFailed)
	}
	d = d.ApplyResets(resets)
	if d.IsEmpty0() {
		return fail(ClocksResetFailed)
	}

	// Async reference-clock synchronisation: force the participating
	// processes' reference clocks equal (spec 4.2.1).
	if t.Policy.Async && len(participating) > 1 {
		refs := make([]int, 0, len(participating))
		for _, pid := range participating {
			refs = append(refs, t.Policy.RefClocks[pid])
		}
		for i := 1; i < len(refs); i++ {
			a, b := refs[0], refs[i]
			if d.Constrain(a, b, dbm.Zero) == dbm.Empty || d.Constrain(b, a, dbm.Zero) == dbm.Empty {
				return fail(ClocksEmptySync)
			}
		}
	}

	// Step 7 (taxonomy): re-check target invariants of participating
	// processes, integer part then clock part.
	tgtInvProgs := make([]vm.Program, 0, len(participating))
	for _, pid := range participating {
		tgtInvProgs = append(tgtInvProgs, t.Sys.Location(vloc.Get(pid)).InvariantBytecode)
	}
	ok, tgtConstraints, _ := runAll(tgtInvProgs, intval)
	if !ok {
		return fail(IntvarsTgtInvariantViolated)
	}
	if applyConstraints(d, tgtConstraints) == dbm.Empty {
		return fail(ClocksTgtInvariantViolated)
	}

	// Step 7/8: Elapsed semantics elapses here, in the target.
	if t.Policy.Semantics == Elapsed && delayAllowed(t.Sys, vloc) {
		d.OpenUp()
	}

	// Step 8: extrapolation.
	t.extrapolate(d, vloc)

	labels := t.labelsFor(vloc)
	st := state.New(vloc, intval, zone.FromDBM(d), labels, false)
	canonical, _ := t.hc.FindOrInsert(st)

	tr := state.NewTransition(ve, t.syncIDFor(ve))
	tr.SrcInvariant = srcConstraints
	tr.Guard = guardConstraints
	tr.Reset = resets
	tr.TgtInvariant = tgtConstraints
	return Ok, canonical, tr
}

// syncIDFor returns the index of the Sync vector whose participating
// processes exactly match ve's, or state.NoSync if ve is driven by a
// single asynchronous edge (or no declared sync matches exactly).
func (t *TS) syncIDFor(ve state.Vedge) int {
	participating := ve.Participating()
	if len(participating) <= 1 {
		return state.NoSync
	}
	for si, s := range t.Sys.Syncs {
		if len(s.Constraints) != len(participating) {
			continue
		}
		match := true
		for _, c := range s.Constraints {
			if ve[c.Process] == state.NoEdge {
				match = false
				break
			}
		}
		if match {
			return si
		}
	}
	return state.NoSync
}
