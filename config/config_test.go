package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tchecker-go/system"
)

// buildTargetSystem declares a two-location, single-process system whose
// second location carries the "target" label, reached unconditionally
// (no guard, no reset).
func buildTargetSystem() *system.System {
	b := system.NewBuilder()
	p := b.Process("P")
	b.Label("target")
	a := b.Location(p, "a", true, false, false, nil)
	t := b.Location(p, "b", false, false, false, nil, "target")
	b.Edge(p, a, t, 0, nil, nil)
	return b.Build()
}

func TestRunDefaultsToReachAndFindsTarget(t *testing.T) {
	sys := buildTargetSystem()
	stats, witness := Run(sys, WithLabels("target"))
	require.True(t, stats.Reachable)
	require.NotNil(t, witness)
}

func TestRunWithUnknownLabelNeverReaches(t *testing.T) {
	sys := buildTargetSystem()
	stats, witness := Run(sys, WithLabels("nonexistent"))
	require.False(t, stats.Reachable)
	require.Nil(t, witness)
}

func TestRunSelectsCovreachAlgorithm(t *testing.T) {
	sys := buildTargetSystem()
	stats, witness := Run(sys, WithAlgorithm(Covreach), WithLabels("target"))
	require.True(t, stats.Reachable)
	require.NotNil(t, witness)
}

func TestRunSelectsNDFSAlgorithm(t *testing.T) {
	sys := buildTargetSystem()
	stats, _ := Run(sys, WithAlgorithm(NDFS), WithLabels("target"))
	require.False(t, stats.Cycle)
}

func TestWithBlockSizeIgnoresNonPositive(t *testing.T) {
	c := newConfig(WithBlockSize(0))
	require.Equal(t, 64, c.blockSize)
	c2 := newConfig(WithBlockSize(128))
	require.Equal(t, 128, c2.blockSize)
}
