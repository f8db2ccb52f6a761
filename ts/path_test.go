package ts

import (
	"testing"

	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/stretchr/testify/require"
)

func TestPathReconstructsDelayFromGuard(t *testing.T) {
	sys, _, _ := buildDelayGuardSystem()
	tsys := New(sys, Policy{Semantics: Elapsed, Extrapolation: NoExtra}, 8, 16)

	edges := tsys.InitialEdges()
	status, init, _ := tsys.Initial(edges[0])
	require.Equal(t, Ok, status)

	succs := tsys.OutgoingEdges(init.Vloc)
	require.Len(t, succs, 1)
	status, next, tr := tsys.Next(init, succs[0])
	require.Equal(t, Ok, status)

	root := explore.NewRoot(init)
	leaf := explore.NewChild(root, tr, next)

	steps := Path(leaf)
	require.Len(t, steps, 1)
	require.Equal(t, int32(3), steps[0].Delay) // guard x>=3 forces a delay of at least 3

	total, events := Concretize(leaf)
	require.Equal(t, int32(3), total)
	require.Len(t, events, 1)
}
