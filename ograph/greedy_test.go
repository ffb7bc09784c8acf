package ograph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ssp/ograph"
)

func TestGREEDY_DeterministicExamples(t *testing.T) {
	got, err := ograph.GREEDY([]string{"cde", "bcd", "ab"})
	require.NoError(t, err)
	require.Equal(t, "abcde", got)

	got, err = ograph.GREEDY([]string{"a", "b", "c"})
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	got, err = ograph.GREEDY([]string{"abc"})
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestGREEDY_ContainsEverySubstring(t *testing.T) {
	inputs := [][]string{
		{"cde", "bcd", "ab"},
		{"a", "b", "c"},
		{"ab", "bc", "ca", "de", "ef", "fd"},
		{"GAA", "TGG", "GGA"},
	}
	for _, in := range inputs {
		got, err := ograph.GREEDY(in)
		require.NoError(t, err)
		for _, s := range in {
			require.Containsf(t, got, s, "GREEDY(%v) = %q", in, got)
		}
	}
}

func TestGREEDY_InvalidInput(t *testing.T) {
	_, err := ograph.GREEDY([]string{"ab", "abc"})
	require.ErrorIs(t, err, ograph.ErrInvalidInput)

	_, err = ograph.GREEDY(nil)
	require.ErrorIs(t, err, ograph.ErrInvalidInput)
}

func TestGREEDY_AlphabetConflict(t *testing.T) {
	_, err := ograph.GREEDY([]string{"a#b", "xyz"})
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "sentinel"))
}
