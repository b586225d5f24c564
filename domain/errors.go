package domain

import "errors"

// ErrInvalidParameter is returned when an input would make the arithmetic
// meaningless (non-positive home price, non-positive loan term). Out-of-range
// shares and premiums are deliberately not rejected; the caller owns clamping.
var ErrInvalidParameter = errors.New("invalid parameter")
