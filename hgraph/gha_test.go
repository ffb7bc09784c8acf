package hgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssp/hgraph"
)

func TestGHA_DeterministicExample(t *testing.T) {
	got, err := hgraph.GHA([]string{"abc", "bcd", "cde"})
	require.NoError(t, err)
	require.Len(t, got, 5)
	for _, s := range []string{"abc", "bcd", "cde"} {
		require.Containsf(t, got, s, "GHA result %q", got)
	}
}

func TestGHA_OrderDeterminism(t *testing.T) {
	a, err := hgraph.GHA([]string{"ccaeae", "eaeaea", "aeaecc"})
	require.NoError(t, err)
	b, err := hgraph.GHA([]string{"ccaeae", "aeaecc", "eaeaea"})
	require.NoError(t, err)
	require.Equal(t, a, b, "GHA must be order-independent on this instance")
	require.Equal(t, "eaeaeaccaeaecc", a)
}

func TestGHA_InvalidInput(t *testing.T) {
	_, err := hgraph.GHA(nil)
	require.ErrorIs(t, err, hgraph.ErrInvalidInput)

	_, err = hgraph.GHA([]string{"ab", "a"})
	require.ErrorIs(t, err, hgraph.ErrInvalidInput)
}

func TestGHA_ContainsEverySubstring(t *testing.T) {
	strs := []string{"ab", "bc", "ca", "de", "ef", "fd"}
	got, err := hgraph.GHA(strs)
	require.NoError(t, err)
	for _, s := range strs {
		require.Containsf(t, got, s, "GHA(%v) = %q", strs, got)
	}
}
