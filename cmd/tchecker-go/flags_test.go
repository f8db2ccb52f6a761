package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tchecker-go/config"
	"github.com/katalvlaran/tchecker-go/explore/covreach"
	"github.com/katalvlaran/tchecker-go/ts"
)

func TestParseAlgorithmDefaultsToReach(t *testing.T) {
	a, err := parseAlgorithm("")
	require.NoError(t, err)
	require.Equal(t, config.Reach, a)
}

func TestParseAlgorithmRejectsUnknown(t *testing.T) {
	_, err := parseAlgorithm("bogus")
	require.ErrorIs(t, err, errUnknownAlgorithm)
}

func TestParseCoveringCoversAllFivePolicies(t *testing.T) {
	cases := map[string]covreach.Policy{
		"inclusion": covreach.Inclusion,
		"aLUl":      covreach.ALULocal,
		"aLUg":      covreach.ALUGlobal,
		"aMl":       covreach.AMLocal,
		"aMg":       covreach.AMGlobal,
	}
	for in, want := range cases {
		got, err := parseCovering(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := parseCovering("nonsense")
	require.ErrorIs(t, err, errUnknownPolicy)
}

func TestParseExtrapolationAndScope(t *testing.T) {
	e, err := parseExtrapolation("extraLU")
	require.NoError(t, err)
	require.Equal(t, ts.ExtraLU, e)

	s, err := parseScope("local")
	require.NoError(t, err)
	require.Equal(t, ts.Local, s)
}

func TestResolveSystemRejectsUnknownName(t *testing.T) {
	_, err := resolveSystem("does-not-exist")
	require.ErrorIs(t, err, errUnknownSystem)
}

func TestResolveSystemBuildsEachBuiltin(t *testing.T) {
	for name := range builtinSystems {
		sys, err := resolveSystem(name)
		require.NoError(t, err)
		require.NotNil(t, sys)
		require.Greater(t, sys.NumProcesses(), 0)
	}
}
