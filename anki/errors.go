package anki

import "errors"

var (
	// ErrInvalidArgument is returned when a creation or lookup invariant is
	// violated: unknown deck or note type id, duplicate name or id, more
	// field values than the note type has fields, and so on. The caller can
	// recover by correcting the input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInconsistentData is returned when a persisted collection cannot be
	// represented by the domain model, e.g. a note whose cards are spread
	// over more than one deck.
	ErrInconsistentData = errors.New("inconsistent data")
)
