package system

import (
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/vm"
)

// SyncStrength is the strength of one participant in a synchronisation
// vector (spec 6).
type SyncStrength int

const (
	Strong SyncStrength = iota
	Weak
)

// IntVariable declares a flat integer variable (spec 6).
type IntVariable struct {
	Name    string
	Size    int // array size; 1 for a scalar
	Min     int32
	Max     int32
	Initial int32
}

// ClockVariable declares one or more clocks (spec 6).
type ClockVariable struct {
	Name string
	Size int
}

// Location is one process's control location (spec 6).
type Location struct {
	Process           int
	Name              string
	Initial           bool
	Committed         bool
	Urgent            bool
	InvariantBytecode vm.Program
	Labels            []string // accepting-label names attached to this location
}

// Edge is one process-local transition (spec 6).
type Edge struct {
	Process        int
	Src, Tgt       state.LocationID
	Event          int
	GuardBytecode  vm.Program
	UpdateBytecode vm.Program
}

// SyncConstraint is one participant of a synchronisation vector: process
// Process must take an edge labelled Event, with the given strength.
type SyncConstraint struct {
	Process  int
	Event    int
	Strength SyncStrength
}

// Sync is a full synchronisation vector (spec 6).
type Sync struct {
	Constraints []SyncConstraint
}

// Process names one automaton participant.
type Process struct {
	Name string
}

// System is the fully elaborated, static model a (not-in-scope) parser
// would produce: processes, their locations and edges, the declared
// synchronisations, and the integer/clock variable tables (spec 6).
type System struct {
	Processes      []Process
	Locations      []Location   // global location table; LocationID indexes here
	Edges          []Edge       // global edge table; EdgeID indexes here
	Syncs          []Sync
	IntVariables   []IntVariable
	ClockVariables []ClockVariable
	LabelNames     []string // accepting-label name table, index == bit position in state.Labels

	locationsByProcess [][]state.LocationID
	edgesByProcess     [][]state.EdgeID
}

// NumProcesses returns the number of automaton participants.
func (s *System) NumProcesses() int { return len(s.Processes) }

// NumClocks returns the total number of declared clock instances,
// including the implicit reference clock 0.
func (s *System) NumClocks() int {
	n := 1
	for _, c := range s.ClockVariables {
		n += c.Size
	}
	return n
}

// NumIntVars returns the total number of flat integer-variable slots.
func (s *System) NumIntVars() int {
	n := 0
	for _, v := range s.IntVariables {
		n += v.Size
	}
	return n
}

// Location looks up a location by id.
func (s *System) Location(id state.LocationID) *Location { return &s.Locations[id] }

// Edge looks up an edge by id.
func (s *System) Edge(id state.EdgeID) *Edge { return &s.Edges[id] }

// LocationsOf returns every location id belonging to process pid, built
// lazily on first use (and cached) since the index is derived, not
// declared, data.
func (s *System) LocationsOf(pid int) []state.LocationID {
	s.ensureIndex()
	return s.locationsByProcess[pid]
}

// EdgesOf returns every edge id whose source process is pid.
func (s *System) EdgesOf(pid int) []state.EdgeID {
	s.ensureIndex()
	return s.edgesByProcess[pid]
}

func (s *System) ensureIndex() {
	if s.locationsByProcess != nil {
		return
	}
	s.locationsByProcess = make([][]state.LocationID, len(s.Processes))
	s.edgesByProcess = make([][]state.EdgeID, len(s.Processes))
	for i, l := range s.Locations {
		s.locationsByProcess[l.Process] = append(s.locationsByProcess[l.Process], state.LocationID(i))
	}
	for i, e := range s.Edges {
		s.edgesByProcess[e.Process] = append(s.edgesByProcess[e.Process], state.EdgeID(i))
	}
}

// LabelIndex returns the bit position of label name, or -1 if undeclared.
func (s *System) LabelIndex(name string) int {
	for i, n := range s.LabelNames {
		if n == name {
			return i
		}
	}
	return -1
}
