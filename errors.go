package loancalc

import "errors"

// Sentinel errors returned by the engine. Callers match them with
// errors.Is; the wrapped message carries the specifics.
var (
	// ErrInvalidInput reports a malformed or contradictory loan
	// specification: wrong count of unknown variables, non-positive
	// values, or a model/variable combination that has no meaning.
	ErrInvalidInput = errors.New("invalid loan input")

	// ErrArithmeticDomain reports a mathematically unsolvable
	// configuration, typically a payment too small to ever amortize
	// the principal.
	ErrArithmeticDomain = errors.New("unsolvable loan configuration")
)
