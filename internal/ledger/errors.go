package ledger

import "errors"

// Error kinds returned by ledger operations. Callers match them with
// errors.Is; the wrapped message carries the offending input.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Kind returns a short label for the error kind, or "internal" when err is
// not one of the ledger's errors.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidState):
		return "invalid_state"
	default:
		return "internal"
	}
}
