package ts

import (
	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/state"
)

// Step is one edge of a reconstructed trace: the transition taken to
// leave the previous state, the state it reaches, and a concrete delay
// elapsed immediately before the transition's guard was evaluated.
type Step struct {
	Delay int32
	Trans *state.Transition
	State *state.State
}

// Path flattens an explore.Node's parent chain into a root-to-leaf
// sequence of Steps and picks, for each step, one concrete non-negative
// delay that satisfies every lower-bound clock guard recorded on its
// transition — the single representative dense-time trace spec 1 allows
// ("constructing a single representative real-valued trace from a
// symbolic path" is not a non-goal; concretizing the full symbolic zone
// is). This is a minimal witness, not the unique or most permissive one:
// it only accounts for explicit "clock >= bound"/"clock > bound" guards,
// since those are the only constraints that force a minimum delay: an
// upper-bound guard only restricts how long a run may wait, never how
// little.
func Path(n *explore.Node) []Step {
	var steps []Step
	for cur := n; cur != nil && cur.Parent != nil; cur = cur.Parent {
		steps = append(steps, Step{Delay: minDelay(cur.Trans), Trans: cur.Trans, State: cur.State})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}

// minDelay returns the smallest non-negative integer delay that
// satisfies every lower-bound guard constraint on tr (a constraint of
// the form D[0,clock] <= -bound, i.e. clock - 0 >= bound).
func minDelay(tr *state.Transition) int32 {
	if tr == nil {
		return 0
	}
	var d int32
	for _, c := range tr.Guard {
		if c.I != 0 {
			continue
		}
		bound := -c.Bound.Value
		if c.Bound.Strict {
			bound++
		}
		if bound > d {
			d = bound
		}
	}
	return d
}

// Concretize is a convenience wrapper matching the original's
// "representative trace" framing from the caller's side: it reports the
// total elapsed delay and the ordered discrete events (vedges) of path.
func Concretize(n *explore.Node) (totalDelay int32, events []state.Vedge) {
	for _, step := range Path(n) {
		totalDelay += step.Delay
		if step.Trans != nil {
			events = append(events, step.Trans.Vedge)
		}
	}
	return totalDelay, events
}
