package state

import (
	"github.com/katalvlaran/tchecker-go/dbm"
)

// EdgeID identifies an edge within one process's edge list.
type EdgeID int

// NoEdge marks a non-participating process slot in a Vedge.
const NoEdge EdgeID = -1

// Vedge is a synchronisation vector: exactly one edge id per
// participating process, NoEdge elsewhere (spec glossary).
type Vedge []EdgeID

// Participating returns the process ids with an edge in v, in ascending
// order — next()/prev() apply guards and updates in this fixed order
// (spec 4.5).
func (v Vedge) Participating() []int {
	var pids []int
	for pid, e := range v {
		if e != NoEdge {
			pids = append(pids, pid)
		}
	}
	return pids
}

// Transition records the discrete and clock operations performed by one
// next()/prev() call: the vedge taken, an optional synchronisation id,
// and the four constraint/reset containers populated along the way
// (spec 4.3).
type Transition struct {
	Vedge        Vedge
	SyncID       int // -1 if the transition is not a declared synchronisation
	SrcInvariant []dbm.Constraint
	Guard        []dbm.Constraint
	Reset        []dbm.Reset
	TgtInvariant []dbm.Constraint
}

// NoSync marks a transition driven by a single asynchronous edge.
const NoSync = -1

// NewTransition returns an empty transition for the given vedge.
func NewTransition(v Vedge, syncID int) *Transition {
	return &Transition{Vedge: v, SyncID: syncID}
}
