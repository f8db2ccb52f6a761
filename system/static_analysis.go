package system

import (
	"errors"

	"github.com/katalvlaran/tchecker-go/vm"
)

// Sentinel errors returned by Validate, reported before exploration
// begins (spec 7: "user-visible failures... reported before exploration
// begins"). ErrUnknownEvent names a synchronisation on an unknown event;
// Validate does not check events and never returns it.
var (
	ErrUnknownProcess  = errors.New("system: location or edge references an unknown process")
	ErrUnknownLocation = errors.New("system: edge references an unknown location")
	ErrUnknownEvent    = errors.New("system: synchronisation references an unknown event")
	ErrNoInitial       = errors.New("system: process has no initial location")
	ErrWeakSyncGuard   = errors.New("system: weakly synchronised edge carries a non-trivial clock guard under asynchronous-zone semantics")
)

// Validate runs the structural pre-pass of spec 7/9: out-of-range
// process/location references, processes with no initial location, and
// (when async is true, i.e. the transition system will use the
// reference-clock zone variant) weakly synchronised edges that carry a
// clock guard. The last check resolves spec 9's open question (i) as a
// conservative rejection — see DESIGN.md.
//
// Grounded on original_source's src/ta/static_analysis.cc and
// src/statement/static_analysis.cc, which run an equivalent structural
// pass before a system is accepted for exploration.
func Validate(s *System, async bool) error {
	nproc := len(s.Processes)
	hasInitial := make([]bool, nproc)

	for _, l := range s.Locations {
		if l.Process < 0 || l.Process >= nproc {
			return ErrUnknownProcess
		}
		if l.Initial {
			hasInitial[l.Process] = true
		}
	}
	for pid, ok := range hasInitial {
		_ = pid
		if !ok {
			return ErrNoInitial
		}
	}

	nloc := len(s.Locations)
	for _, e := range s.Edges {
		if e.Process < 0 || e.Process >= nproc {
			return ErrUnknownProcess
		}
		if int(e.Src) < 0 || int(e.Src) >= nloc || int(e.Tgt) < 0 || int(e.Tgt) >= nloc {
			return ErrUnknownLocation
		}
	}

	for _, sync := range s.Syncs {
		for _, c := range sync.Constraints {
			if c.Process < 0 || c.Process >= nproc {
				return ErrUnknownProcess
			}
			if async && c.Strength == Weak && edgeHasClockGuard(s, c.Process, c.Event) {
				return ErrWeakSyncGuard
			}
		}
	}
	return nil
}

func edgeHasClockGuard(s *System, pid, event int) bool {
	for _, e := range s.Edges {
		if e.Process == pid && e.Event == event && guardMentionsClock(e.GuardBytecode) {
			return true
		}
	}
	return false
}

func guardMentionsClock(prog vm.Program) bool {
	for _, ins := range prog {
		if ins.Op == vm.OpClockGuardGE || ins.Op == vm.OpClockGuardLE {
			return true
		}
	}
	return false
}
