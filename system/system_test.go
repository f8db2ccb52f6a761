package system

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/state"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/stretchr/testify/require"
)

func TestBuilderBuildsIndexedSystem(t *testing.T) {
	b := NewBuilder()
	p := b.Process("P")
	l0 := b.Location(p, "l0", true, false, false, nil)
	l1 := b.Location(p, "l1", false, false, false, nil)
	e := b.Edge(p, l0, l1, 0, nil, nil)
	sys := b.Build()

	require.Equal(t, 1, sys.NumProcesses())
	require.Equal(t, []state.LocationID{l0, l1}, sys.LocationsOf(p))
	require.Equal(t, []state.EdgeID{e}, sys.EdgesOf(p))
	require.NoError(t, Validate(sys, false))
}

func TestValidateRejectsMissingInitial(t *testing.T) {
	b := NewBuilder()
	p := b.Process("P")
	b.Location(p, "l0", false, false, false, nil)
	sys := b.Build()
	require.ErrorIs(t, Validate(sys, false), ErrNoInitial)
}

func TestValidateRejectsWeakSyncWithClockGuard(t *testing.T) {
	b := NewBuilder()
	p := b.Process("P")
	q := b.Process("Q")
	lp := b.Location(p, "lp", true, false, false, nil)
	lq := b.Location(q, "lq", true, false, false, nil)
	guard := vm.NewBuilder().ClockGuardGE(1, 1, false).Build()
	b.Edge(p, lp, lp, 0, guard, nil)
	b.Edge(q, lq, lq, 0, nil, nil)
	b.Sync(SyncConstraint{Process: p, Event: 0, Strength: Weak}, SyncConstraint{Process: q, Event: 0, Strength: Strong})
	sys := b.Build()

	require.NoError(t, Validate(sys, false))
	require.ErrorIs(t, Validate(sys, true), ErrWeakSyncGuard)
}
