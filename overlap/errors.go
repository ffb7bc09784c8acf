package overlap

import "errors"

// ErrAlphabetConflict indicates that the KMP sentinel byte collides with a
// byte actually present in one of the two input strings. Overlap cannot
// separate the composed string b+sentinel+a from a genuine occurrence of
// the sentinel inside a or b, so the result would be unreliable.
var ErrAlphabetConflict = errors.New("overlap: sentinel byte occurs in input alphabet")
