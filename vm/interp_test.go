package vm

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/dbm"
	"github.com/katalvlaran/tchecker-go/state"
	"github.com/stretchr/testify/require"
)

func TestRunPlainIntegerGuard(t *testing.T) {
	iv := state.NewIntval([]int32{5})
	prog := NewBuilder().PushVar(0).PushConst(3).GE().Build()
	var constraints []dbm.Constraint
	var resets []dbm.Reset
	ok := Run(prog, iv, &constraints, &resets)
	require.True(t, ok)
	require.Empty(t, constraints)
	require.Empty(t, resets)
}

func TestRunFailingGuard(t *testing.T) {
	iv := state.NewIntval([]int32{1})
	prog := NewBuilder().PushVar(0).PushConst(3).GE().Build()
	var constraints []dbm.Constraint
	var resets []dbm.Reset
	require.False(t, Run(prog, iv, &constraints, &resets))
}

func TestRunAssignMutatesIntval(t *testing.T) {
	iv := state.NewIntval([]int32{0})
	prog := NewBuilder().PushConst(7).Assign(0).Pop().Build()
	var constraints []dbm.Constraint
	var resets []dbm.Reset
	require.True(t, Run(prog, iv, &constraints, &resets))
	require.Equal(t, int32(7), iv.Get(0))
}

func TestRunEmitsClockGuardAndReset(t *testing.T) {
	iv := state.NewIntval(nil)
	prog := NewBuilder().
		ClockGuardGE(1, 3, false).
		ClockResetConst(1, 0).
		Build()
	var constraints []dbm.Constraint
	var resets []dbm.Reset
	require.True(t, Run(prog, iv, &constraints, &resets))
	require.Equal(t, []dbm.Constraint{{I: 0, J: 1, Bound: dbm.LE(-3)}}, constraints)
	require.Equal(t, []dbm.Reset{{Target: 1, Source: 0, Value: 0}}, resets)
}
