package access

import "errors"

var (
	// ErrAccessDenied is returned for a missing relationship and a missing
	// capability flag alike.
	ErrAccessDenied    = errors.New("access denied")
	ErrUpstream        = errors.New("upstream failure")
	ErrUnknownCategory = errors.New("unknown data category")
)
