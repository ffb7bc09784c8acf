package ssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssp"
)

func TestGREEDY_DeterministicExample(t *testing.T) {
	got, err := ssp.GREEDY([]string{"cde", "bcd", "ab"})
	require.NoError(t, err)
	require.Equal(t, "abcde", got)
}

func TestTGREEDY_DeterministicLength(t *testing.T) {
	strs := []string{"ab", "bc", "ca", "de", "ef", "fd"}
	got, err := ssp.TGREEDY(strs)
	require.NoError(t, err)
	require.Len(t, got, 8)
	for _, s := range strs {
		require.Containsf(t, got, s, "TGREEDY(%v) = %q", strs, got)
	}
}

func TestGHA_DeterministicLength(t *testing.T) {
	got, err := ssp.GHA([]string{"abc", "bcd", "cde"})
	require.NoError(t, err)
	require.Len(t, got, 5)
}

func TestCA_ContainsEveryInput(t *testing.T) {
	strs := []string{"abc", "bcd", "cde"}
	got, err := ssp.CA(strs)
	require.NoError(t, err)
	for _, s := range strs {
		require.Containsf(t, got, s, "CA(%v) = %q", strs, got)
	}
}

func TestEnsureSubstringFree_RemovesSubstringsAndDuplicates(t *testing.T) {
	got := ssp.EnsureSubstringFree([]string{"ab", "abc", "ab", "d"})
	require.Equal(t, []string{"abc", "d"}, got)
}

func TestAllSolvers_RejectInvalidInput(t *testing.T) {
	bad := []string{"ab", "a"}
	solvers := map[string]func([]string) (string, error){
		"GREEDY":  ssp.GREEDY,
		"TGREEDY": ssp.TGREEDY,
		"GHA":     ssp.GHA,
		"CA":      ssp.CA,
	}
	for name, solve := range solvers {
		_, err := solve(bad)
		require.ErrorIsf(t, err, ssp.ErrInvalidInput, "%s", name)
	}
}
