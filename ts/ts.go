package ts

import (
	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/pool"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/katalvlaran/tchecker-go/zone"
)

// TS is the transition system of spec 4.5: it owns the system model, the
// pools and hash-cons table for vloc/intval/state, and the
// semantics/extrapolation Policy applied uniformly by Initial and Next.
type TS struct {
	Sys    *system.System
	Policy Policy

	vlocPool   *pool.Pool[*state.Vloc]
	intvalPool *pool.Pool[*state.Intval]
	statePool  *pool.Pool[*state.State]
	hc         *pool.HashCons[*state.State]

	numClocks  int
	numIntVars int

	globalL, globalU dbm.BoundMap
}

// New builds a TS over sys with the given policy. blockSize sizes every
// pool's allocation block; tableSize is not used directly (HashCons
// always starts at its own fixed initial size per spec 4.4) but kept on
// the signature so callers can size future tuning knobs without breaking
// the constructor.
func New(sys *system.System, policy Policy, blockSize int, _ int) *TS {
	t := &TS{
		Sys:        sys,
		Policy:     policy,
		numClocks:  sys.NumClocks(),
		numIntVars: sys.NumIntVars(),
	}
	t.vlocPool = pool.New(blockSize, func() *state.Vloc { return state.NewVloc(nil) })
	t.intvalPool = pool.New(blockSize, func() *state.Intval { return state.NewIntval(nil) })
	t.statePool = pool.New(blockSize, func() *state.State { return &state.State{} })
	t.hc = pool.NewHashCons[*state.State]()
	if policy.Scope == Global {
		t.globalL, t.globalU = GlobalBounds(sys, t.numClocks)
	}
	return t
}

// NumClocks returns the clock-space dimension, including the implicit
// reference clock 0.
func (t *TS) NumClocks() int { return t.numClocks }

// Bounds returns the lower/upper clock bound maps the TS would use to
// extrapolate a state with the given vloc, honoring Policy.Scope exactly
// as extrapolate does. covreach does not call it: its subsumption checks
// compute their bound maps through LocalBounds/GlobalBounds directly.
func (t *TS) Bounds(vloc *state.Vloc) (l, u dbm.BoundMap) {
	if t.Policy.Scope == Local {
		return LocalBounds(t.Sys, vloc, t.numClocks)
	}
	return t.globalL, t.globalU
}

// InitialEdges enumerates every tuple picking one initial location per
// process (spec 4.5); ordinarily exactly one per process, but a system
// with several initial locations in one process yields the cartesian
// product.
func (t *TS) InitialEdges() [][]state.LocationID {
	perProcess := make([][]state.LocationID, t.Sys.NumProcesses())
	for pid := range perProcess {
		for _, lid := range t.Sys.LocationsOf(pid) {
			if t.Sys.Location(lid).Initial {
				perProcess[pid] = append(perProcess[pid], lid)
			}
		}
	}
	return cartesian(perProcess)
}

func cartesian(perProcess [][]state.LocationID) [][]state.LocationID {
	result := [][]state.LocationID{{}}
	for _, choices := range perProcess {
		var next [][]state.LocationID
		for _, prefix := range result {
			for _, c := range choices {
				tuple := append(append([]state.LocationID(nil), prefix...), c)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}

func (t *TS) initialIntval() []int32 {
	vals := make([]int32, t.numIntVars)
	slot := 0
	for _, iv := range t.Sys.IntVariables {
		for k := 0; k < iv.Size; k++ {
			vals[slot] = iv.Initial
			slot++
		}
	}
	return vals
}

// Initial builds the initial state for one initial-location tuple
// (spec 4.5's numbered steps).
func (t *TS) Initial(tuple []state.LocationID) (Status, *state.State, *state.Transition) {
	vloc := t.vlocPool.Construct()
	vloc.Init(tuple)
	intval := t.intvalPool.Construct()
	intval.Init(t.initialIntval())

	var progs []vm.Program
	for _, lid := range tuple {
		progs = append(progs, t.Sys.Location(lid).InvariantBytecode)
	}
	ok, constraints, _ := runAll(progs, intval)
	if !ok {
		t.vlocPool.Destruct(vloc)
		t.intvalPool.Destruct(intval)
		return IntvarsSrcInvariantViolated, nil, nil
	}

	d := dbm.ZeroDBM(t.numClocks)
	if t.Policy.Semantics == Elapsed && delayAllowed(t.Sys, vloc) {
		d.OpenUp()
	}
	if applyConstraints(d, constraints) == dbm.Empty {
		t.vlocPool.Destruct(vloc)
		t.intvalPool.Destruct(intval)
		return ClocksSrcInvariantViolated, nil, nil
	}
	t.extrapolate(d, vloc)

	labels := t.labelsFor(vloc)
	st := state.New(vloc, intval, zone.FromDBM(d), labels, true)
	canonical, _ := t.hc.FindOrInsert(st)
	return Ok, canonical, NewTransitionForInitial(tuple)
}

// NewTransitionForInitial is a degenerate Transition describing "no
// discrete step taken" for an initial state (no participating edges).
func NewTransitionForInitial(tuple []state.LocationID) *state.Transition {
	ve := make(state.Vedge, len(tuple))
	for i := range ve {
		ve[i] = state.NoEdge
	}
	return state.NewTransition(ve, state.NoSync)
}

func runAll(progs []vm.Program, iv *state.Intval) (bool, []dbm.Constraint, []dbm.Reset) {
	var constraints []dbm.Constraint
	var resets []dbm.Reset
	ok := true
	for _, p := range progs {
		if p == nil {
			continue
		}
		if !vm.Run(p, iv, &constraints, &resets) {
			ok = false
		}
	}
	return ok, constraints, resets
}

func applyConstraints(d *dbm.DBM, constraints []dbm.Constraint) dbm.Outcome {
	for _, c := range constraints {
		if out := d.Constrain(int(c.I), int(c.J), c.Bound); out == dbm.Empty {
			return dbm.Empty
		}
	}
	return dbm.NonEmpty
}

func delayAllowed(sys *system.System, vloc *state.Vloc) bool {
	for pid := 0; pid < vloc.Len(); pid++ {
		loc := sys.Location(vloc.Get(pid))
		if loc.Committed || loc.Urgent {
			return false
		}
	}
	return true
}

func (t *TS) labelsFor(vloc *state.Vloc) *state.Labels {
	labels := state.NewLabels(uint(len(t.Sys.LabelNames)))
	for pid := 0; pid < vloc.Len(); pid++ {
		loc := t.Sys.Location(vloc.Get(pid))
		for _, name := range loc.Labels {
			if idx := t.Sys.LabelIndex(name); idx >= 0 {
				labels.Set(uint(idx))
			}
		}
	}
	return labels
}

func (t *TS) extrapolate(d *dbm.DBM, vloc *state.Vloc) {
	if t.Policy.Extrapolation == NoExtra {
		return
	}
	l, u := t.globalL, t.globalU
	if t.Policy.Scope == Local {
		l, u = LocalBounds(t.Sys, vloc, t.numClocks)
	}
	switch t.Policy.Extrapolation {
	case ExtraM:
		d.ExtraM(maxOf(l, u))
	case ExtraMPlus:
		d.ExtraMPlus(maxOf(l, u))
	case ExtraLU:
		d.ExtraLU(l, u)
	case ExtraLUPlus:
		d.ExtraLUPlus(l, u)
	}
}
