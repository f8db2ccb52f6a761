package ts

import (
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/system"
)

func newVedge(n int) state.Vedge {
	ve := make(state.Vedge, n)
	for i := range ve {
		ve[i] = state.NoEdge
	}
	return ve
}

// OutgoingEdges enumerates every vedge enabled at vloc (spec 4.5): every
// asynchronous edge (whose event is not named by any synchronisation) of
// every process whose source matches vloc[pid], plus every
// synchronisation whose strong constraints are all enabled, joined with
// any weak constraints whose event happens to be enabled too.
func (t *TS) OutgoingEdges(vloc *state.Vloc) []state.Vedge {
	n := vloc.Len()
	enabled := make([]map[int][]state.EdgeID, n)
	for pid := 0; pid < n; pid++ {
		enabled[pid] = map[int][]state.EdgeID{}
		for _, eid := range t.Sys.EdgesOf(pid) {
			e := t.Sys.Edge(eid)
			if e.Src == vloc.Get(pid) {
				enabled[pid][e.Event] = append(enabled[pid][e.Event], eid)
			}
		}
	}

	syncEvents := map[int]bool{}
	for _, s := range t.Sys.Syncs {
		for _, c := range s.Constraints {
			syncEvents[c.Event] = true
		}
	}

	var result []state.Vedge
	for pid := 0; pid < n; pid++ {
		for ev, eids := range enabled[pid] {
			if syncEvents[ev] {
				continue
			}
			for _, eid := range eids {
				ve := newVedge(n)
				ve[pid] = eid
				result = append(result, ve)
			}
		}
	}

	for _, s := range t.Sys.Syncs {
		choices := make([][]state.EdgeID, len(s.Constraints))
		feasible := true
		for ci, c := range s.Constraints {
			eids := enabled[c.Process][c.Event]
			switch {
			case len(eids) == 0 && c.Strength == system.Strong:
				feasible = false
			case len(eids) == 0:
				choices[ci] = []state.EdgeID{state.NoEdge}
			case c.Strength == system.Weak:
				choices[ci] = append(append([]state.EdgeID(nil), eids...), state.NoEdge)
			default:
				choices[ci] = append([]state.EdgeID(nil), eids...)
			}
			if !feasible {
				break
			}
		}
		if !feasible {
			continue
		}
		for _, combo := range cartesianEdges(choices) {
			ve := newVedge(n)
			participates := false
			for ci, eid := range combo {
				if eid == state.NoEdge {
					continue
				}
				ve[s.Constraints[ci].Process] = eid
				participates = true
			}
			if participates {
				result = append(result, ve)
			}
		}
	}
	return result
}

func cartesianEdges(choices [][]state.EdgeID) [][]state.EdgeID {
	result := [][]state.EdgeID{{}}
	for _, options := range choices {
		var next [][]state.EdgeID
		for _, prefix := range result {
			for _, o := range options {
				tuple := append(append([]state.EdgeID(nil), prefix...), o)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}
