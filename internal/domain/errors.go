package domain

import "errors"

// All of these are correctable input conditions; none is fatal to the
// process. The shell re-prompts on the first two, and the last two guard
// preconditions the validated input path should never violate.
var (
	ErrUnknownItemCode = errors.New("unknown item code")
	ErrNoLineItems     = errors.New("a hire must contain at least one item line")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidNights   = errors.New("nights must be at least 1")
)
