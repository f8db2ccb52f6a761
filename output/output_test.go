package output

import (
	"strings"
	"testing"

	"github.com/katalvlaran/tchecker-go/explore"
	"github.com/katalvlaran/tchecker-go/system"
	"github.com/katalvlaran/tchecker-go/ts"
	"github.com/katalvlaran/tchecker-go/vm"
	"github.com/stretchr/testify/require"
)

func buildSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.ClockVar("x", 1)
	a := b.Location(p, "a", true, false, false, nil)
	bb := b.Location(p, "b", false, false, false, nil)
	guard := vm.NewBuilder().ClockGuardGE(1, 3, false).Build()
	reset := vm.NewBuilder().ClockResetConst(1, 0).Build()
	b.Edge(p, a, bb, 0, guard, reset)
	return b.Build()
}

func TestDotRendersNodesAndEdges(t *testing.T) {
	sys := buildSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Elapsed, Extrapolation: ts.NoExtra}, 8, 16)

	edges := tsys.InitialEdges()
	status, init, _ := tsys.Initial(edges[0])
	require.Equal(t, ts.Ok, status)
	succs := tsys.OutgoingEdges(init.Vloc)
	require.Len(t, succs, 1)
	status, next, tr := tsys.Next(init, succs[0])
	require.Equal(t, ts.Ok, status)

	root := explore.NewRoot(init)
	leaf := explore.NewChild(root, tr, next)

	var buf strings.Builder
	require.NoError(t, Dot(&buf, "g", sys, []*explore.Node{root, leaf}))
	out := buf.String()
	require.Contains(t, out, "digraph g {")
	require.Contains(t, out, "n0 [")
	require.Contains(t, out, "n0 -> n1")
	require.Contains(t, out, "P@a")
	require.Contains(t, out, "P@b")
}

func TestRawRendersOneLinePerNode(t *testing.T) {
	sys := buildSystem()
	tsys := ts.New(sys, ts.Policy{Semantics: ts.Elapsed, Extrapolation: ts.NoExtra}, 8, 16)

	edges := tsys.InitialEdges()
	status, init, _ := tsys.Initial(edges[0])
	require.Equal(t, ts.Ok, status)

	var buf strings.Builder
	require.NoError(t, Raw(&buf, sys, []*explore.Node{explore.NewRoot(init)}))
	require.Contains(t, buf.String(), "initial")
	require.Contains(t, buf.String(), "P@a")
}
