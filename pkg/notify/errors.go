package notify

import "errors"

var (
	// ErrInvalidSelector reports a selector that does not return the address
	// of a field of the evaluated struct.
	ErrInvalidSelector = errors.New("notify: invalid selector")

	// ErrNilTarget reports an evaluator built for a nil target.
	ErrNilTarget = errors.New("notify: nil target")
)
