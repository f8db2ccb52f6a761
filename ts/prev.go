package ts

import (
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/zone"
)

// Prev checks one conjectured predecessor of s along ve: it builds the
// candidate state from the caller's conjecturalVloc, conjecturalIntval
// and conjecturalZone, replays Next from it along ve, and returns the
// candidate when the result matches s (spec 4.5: "prev is symmetric;
// implemented by running next from a conjectural predecessor and checking
// the target matches"). The candidate's zone is the caller's
// conjecturalZone, not a clone of s's zone, resolving spec 9's open
// question (ii): cloning would silently carry s's extrapolation artifacts
// backwards into a zone meant to represent the predecessor's own
// pre-extrapolation reachable set.
//
// conjecturalVloc and conjecturalIntval give the discrete predecessor
// the caller believes produced s via ve; since next's discrete part is
// deterministic given a vedge and an initial vloc/intval (spec 4.5), any
// mismatch between Next's result and s proves the conjecture wrong.
func (t *TS) Prev(s *state.State, ve state.Vedge, conjecturalVloc *state.Vloc, conjecturalIntval *state.Intval, conjecturalZone *zone.Zone) (Status, *state.State, *state.Transition) {
	candidate := state.New(conjecturalVloc, conjecturalIntval, conjecturalZone, t.labelsFor(conjecturalVloc), false)
	status, next, tr := t.Next(candidate, ve)
	if status != Ok {
		return IncompatibleEdge, nil, nil
	}
	if !next.Equal(s) {
		return IncompatibleEdge, nil, nil
	}
	return Ok, candidate, tr
}
