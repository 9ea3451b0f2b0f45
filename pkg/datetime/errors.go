package datetime

import "errors"

// Sentinel errors for date parsing and configuration.
var (
	// ErrEmptyDate is returned when the input carries no date at all.
	ErrEmptyDate = errors.New("datetime: empty date")

	// ErrInvalidDate is returned when the input cannot be read as a date.
	ErrInvalidDate = errors.New("datetime: invalid date")

	// ErrUnknownPhraser is returned by PhraserByName for unregistered names.
	ErrUnknownPhraser = errors.New("datetime: unknown relative phraser")
)
