package system

import (
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/vm"
)

// Builder assembles a System incrementally, the way the teacher's
// builder package assembles a graph from functional option calls —
// generalised here from graph topology to automata declarations, since
// no parser is in scope (spec 1).
type Builder struct {
	sys System
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Process declares a new process and returns its id.
func (b *Builder) Process(name string) int {
	b.sys.Processes = append(b.sys.Processes, Process{Name: name})
	return len(b.sys.Processes) - 1
}

// Location declares a new location for process pid and returns its id.
func (b *Builder) Location(pid int, name string, initial, committed, urgent bool, invariant vm.Program, labels ...string) state.LocationID {
	b.sys.Locations = append(b.sys.Locations, Location{
		Process: pid, Name: name, Initial: initial, Committed: committed, Urgent: urgent,
		InvariantBytecode: invariant, Labels: labels,
	})
	return state.LocationID(len(b.sys.Locations) - 1)
}

// Edge declares a new edge for process pid and returns its id.
func (b *Builder) Edge(pid int, src, tgt state.LocationID, event int, guard, update vm.Program) state.EdgeID {
	b.sys.Edges = append(b.sys.Edges, Edge{
		Process: pid, Src: src, Tgt: tgt, Event: event, GuardBytecode: guard, UpdateBytecode: update,
	})
	return state.EdgeID(len(b.sys.Edges) - 1)
}

// Sync declares a synchronisation vector.
func (b *Builder) Sync(constraints ...SyncConstraint) {
	b.sys.Syncs = append(b.sys.Syncs, Sync{Constraints: constraints})
}

// IntVar declares an integer variable and returns its slot id.
func (b *Builder) IntVar(name string, size int, min, max, initial int32) int {
	b.sys.IntVariables = append(b.sys.IntVariables, IntVariable{Name: name, Size: size, Min: min, Max: max, Initial: initial})
	return len(b.sys.IntVariables) - 1
}

// ClockVar declares a clock variable (or array of clocks) and returns the
// id of its first instance. Clock ids are 1-based: id 0 is the implicit
// always-zero reference clock.
func (b *Builder) ClockVar(name string, size int) int {
	first := 1
	for _, c := range b.sys.ClockVariables {
		first += c.Size
	}
	b.sys.ClockVariables = append(b.sys.ClockVariables, ClockVariable{Name: name, Size: size})
	return first
}

// Label declares an accepting-label name and returns its bit index.
func (b *Builder) Label(name string) int {
	b.sys.LabelNames = append(b.sys.LabelNames, name)
	return len(b.sys.LabelNames) - 1
}

// Build returns the assembled System.
func (b *Builder) Build() *System {
	s := b.sys
	return &s
}
