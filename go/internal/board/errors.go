package board

import "errors"

var (
	// ErrNoPicks indicates a league with no draft rows at all.
	ErrNoPicks = errors.New("no draft picks")

	// ErrMalformedDraftOrder indicates slot order could not be derived
	// because round 1 does not cover every team in the pick set.
	ErrMalformedDraftOrder = errors.New("malformed draft order")
)
