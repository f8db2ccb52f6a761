package explore

import (
	"github.com/katalvlaran/tchecker-go/state"
)

// Node wraps one interned state together with the edge that reached it,
// for trace reconstruction after exploration (ts/path.go).
type Node struct {
	State  *state.State
	Parent *Node
	Trans  *state.Transition // transition from Parent to this node; nil for roots
}

// NewRoot wraps an initial state with no parent.
func NewRoot(s *state.State) *Node { return &Node{State: s} }

// NewChild wraps a state reached from parent via tr.
func NewChild(parent *Node, tr *state.Transition, s *state.State) *Node {
	return &Node{State: s, Parent: parent, Trans: tr}
}

// Stats is the common statistics block every algorithm fills in; fields
// unused by a given algorithm are left at their zero value.
type Stats struct {
	Visited   int  // nodes popped from the waiting container
	Stored    int  // nodes ever inserted into the hash-set (spec 8: "stored states equals total intern count")
	Covered   int  // successors discarded or nodes marked inactive by subsumption (covreach only)
	Reachable bool // reach/covreach: some visited state satisfied the target labels
	Cycle     bool // ndfs/couvreur: an accepting lasso was found
}
