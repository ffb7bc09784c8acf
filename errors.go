package ssp

import "errors"

// ErrInvalidInput is returned by every solver when its input is empty or
// not substring-free. It does not distinguish which underlying package
// detected the violation; errors.Is matches it regardless of which
// solver returned it.
var ErrInvalidInput = errors.New("ssp: input is empty or not substring-free")
