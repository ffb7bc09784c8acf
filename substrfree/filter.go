package substrfree

import "strings"

// EnsureSubstringFree returns a deduplicated copy of input containing only
// the maximal elements: a string x survives iff no distinct string y in
// input has x as a substring of y. Survivors are returned in first-seen
// order (their order of first occurrence in input), which is this
// package's deterministic choice for the otherwise-unspecified result
// order.
func EnsureSubstringFree(input []string) []string {
	order := make([]string, 0, len(input))
	seen := make(map[string]struct{}, len(input))
	for _, s := range input {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		order = append(order, s)
	}

	maximal := make([]string, 0, len(order))
	for _, x := range order {
		if isMaximal(x, order) {
			maximal = append(maximal, x)
		}
	}

	return maximal
}

// isMaximal reports whether x is not a proper-or-equal substring of any
// other distinct element of candidates.
func isMaximal(x string, candidates []string) bool {
	for _, y := range candidates {
		if x == y {
			continue
		}
		if strings.Contains(y, x) {
			return false
		}
	}

	return true
}

// IsSubstringFree reports whether input already satisfies the
// substring-free property: no duplicates, and no element a substring of a
// distinct element.
func IsSubstringFree(input []string) bool {
	if len(input) == 0 {
		return false
	}

	seen := make(map[string]struct{}, len(input))
	for _, s := range input {
		if _, ok := seen[s]; ok {
			return false
		}
		seen[s] = struct{}{}
	}

	for _, x := range input {
		if !isMaximal(x, input) {
			return false
		}
	}

	return true
}
