package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssp/hgraph"
)

func TestCA_ContainsEverySubstring(t *testing.T) {
	strs := []string{"abc", "bcd", "cde"}
	got, err := hgraph.CA(strs)
	require.NoError(t, err)
	for _, s := range strs {
		require.Containsf(t, got, s, "CA(%v) = %q", strs, got)
	}
}

func TestCA_InvalidInput(t *testing.T) {
	_, err := hgraph.CA(nil)
	require.ErrorIs(t, err, hgraph.ErrInvalidInput)
}

func TestCA_SingleString(t *testing.T) {
	got, err := hgraph.CA([]string{"abc"})
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestCollapsingConjecture_SpotChecks(t *testing.T) {
	cases := [][]string{
		{"abc", "bcd", "cde"},
		{"cde", "bcd", "abc"},
		{"abcde", "dedef", "fabc"},
		{"GAA", "TGG", "GGA"},
	}

	for _, strs := range cases {
		ghaGraph, err := hgraph.BuildGHAGraph(strs)
		require.NoErrorf(t, err, "%v", strs)
		caGraph := hgraph.CollapseGraph(ghaGraph, strs)
		require.Truef(t, hgraph.EqualGraphs(ghaGraph, caGraph), "%v: CA(GHA) must equal GHA", strs)
	}
}
