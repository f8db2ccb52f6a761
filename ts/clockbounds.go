package ts

import (
	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/vm"
)

// clockBoundsFromPrograms scans a set of bytecode programs for clock-guard
// emissions and folds in the largest constant seen per clock, split by
// comparison direction: a "clock >= c"/"clock > c" guard contributes to
// the lower-bound map L, a "clock <= c"/"clock < c" guard to the
// upper-bound map U. This is a syntactic (conservative-by-construction)
// approximation of the dedicated static analysis original_source runs in
// include/tchecker/ta/details/ta.hh to compute per-clock bound maps.
func clockBoundsFromPrograms(progs []vm.Program, dim int) (l, u dbm.BoundMap) {
	l = make(dbm.BoundMap, dim)
	u = make(dbm.BoundMap, dim)
	for i := range l {
		l[i] = dbm.NoBound
		u[i] = dbm.NoBound
	}
	for _, prog := range progs {
		for _, ins := range prog {
			v := ins.B
			if v < 0 {
				v = -v
			}
			switch ins.Op {
			case vm.OpClockGuardGE:
				c := dbm.ClockID(ins.A)
				if l[c] == dbm.NoBound || v > l[c] {
					l[c] = v
				}
			case vm.OpClockGuardLE:
				c := dbm.ClockID(ins.A)
				if u[c] == dbm.NoBound || v > u[c] {
					u[c] = v
				}
			}
		}
	}
	return l, u
}

// maxOf returns the component-wise maximum of l and u, treating NoBound
// as the identity element — the single bound map ExtraM/ExtraM+ need.
func maxOf(l, u dbm.BoundMap) dbm.BoundMap {
	m := make(dbm.BoundMap, len(l))
	for i := range m {
		switch {
		case l[i] == dbm.NoBound:
			m[i] = u[i]
		case u[i] == dbm.NoBound:
			m[i] = l[i]
		case l[i] > u[i]:
			m[i] = l[i]
		default:
			m[i] = u[i]
		}
	}
	return m
}

func systemPrograms(sys *system.System) []vm.Program {
	var progs []vm.Program
	for _, l := range sys.Locations {
		progs = append(progs, l.InvariantBytecode)
	}
	for _, e := range sys.Edges {
		progs = append(progs, e.GuardBytecode)
	}
	return progs
}

// GlobalBounds computes the lower/upper bound maps shared by every clock
// across the whole system (spec 4.1's "extraLU-global").
func GlobalBounds(sys *system.System, dim int) (l, u dbm.BoundMap) {
	return clockBoundsFromPrograms(systemPrograms(sys), dim)
}

// LocalBounds computes bound maps restricted to the programs reachable
// from vloc: each process's current location's invariant and its
// outgoing edges' guards (spec 4.1's "extraLU-local").
func LocalBounds(sys *system.System, vloc *state.Vloc, dim int) (l, u dbm.BoundMap) {
	var progs []vm.Program
	for pid := 0; pid < vloc.Len(); pid++ {
		loc := sys.Location(vloc.Get(pid))
		progs = append(progs, loc.InvariantBytecode)
		for _, eid := range sys.EdgesOf(pid) {
			e := sys.Edge(eid)
			if e.Src == vloc.Get(pid) {
				progs = append(progs, e.GuardBytecode)
			}
		}
	}
	return clockBoundsFromPrograms(progs, dim)
}
