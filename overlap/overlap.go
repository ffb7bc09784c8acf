package overlap

// config holds the tunable knobs for an Overlap call. Overlap starts from
// sentinel byte '#' before applying options; the zero value (sentinel 0)
// is not the default.
type config struct {
	sentinel byte
}

// Option configures a single Overlap call, in the same functional-option
// shape as core.GraphOption/core.EdgeOption in the wider graph toolkit this
// package grew out of.
type Option func(*config)

// WithSentinel overrides the KMP separator byte used between b and a. The
// default, '#', is correct for any alphabet that does not itself contain
// '#' (the common case for DNA/text instances). Callers whose alphabet can
// contain '#' (e.g. raw byte streams) should pick a byte provably absent
// from their inputs.
func WithSentinel(b byte) Option {
	return func(c *config) { c.sentinel = b }
}

// Overlap returns ov(a, b): the length of the longest suffix of a that
// equals a prefix of b, at most min(|a|, |b|). The whole of a counts, so
// ov("a", "a") is 1; ov("", "") is 0.
//
// Computed via the failure function (the "pi" array) of the KMP automaton
// over the composed string b + sentinel + a: the last entry of that array
// is exactly the length of the longest border of the composed string that
// lies entirely within b (i.e. does not cross the sentinel), which is
// precisely ov(a, b).
//
// Overlap fails with ErrAlphabetConflict if the sentinel byte occurs in
// either a or b — the composed string would then be ambiguous.
func Overlap(a, b string, opts ...Option) (int, error) {
	cfg := config{sentinel: '#'}
	for _, opt := range opts {
		opt(&cfg)
	}

	for i := 0; i < len(a); i++ {
		if a[i] == cfg.sentinel {
			return 0, ErrAlphabetConflict
		}
	}
	for i := 0; i < len(b); i++ {
		if b[i] == cfg.sentinel {
			return 0, ErrAlphabetConflict
		}
	}

	composed := make([]byte, 0, len(b)+1+len(a))
	composed = append(composed, b...)
	composed = append(composed, cfg.sentinel)
	composed = append(composed, a...)

	pi := failureFunction(composed)
	if len(pi) == 0 {
		return 0, nil
	}

	return pi[len(pi)-1], nil
}

// failureFunction computes the standard KMP prefix-function array: pi[i] is
// the length of the longest proper prefix of s[:i+1] that is also a suffix
// of s[:i+1].
func failureFunction(s []byte) []int {
	pi := make([]int, len(s))
	for i := 1; i < len(s); i++ {
		j := pi[i-1]
		for j > 0 && s[i] != s[j] {
			j = pi[j-1]
		}
		if s[i] == s[j] {
			j++
		}
		pi[i] = j
	}

	return pi
}
