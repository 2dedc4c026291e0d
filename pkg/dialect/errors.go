package dialect

import "errors"

var (
	// ErrMissingComma is returned when no field delimiter is configured.
	ErrMissingComma = errors.New("dialect: field delimiter is required")
	// ErrMissingQuote is returned when no enclosure character is configured.
	ErrMissingQuote = errors.New("dialect: enclosure character is required")
	// ErrControlConflict is returned when two control characters are equal.
	ErrControlConflict = errors.New("dialect: control characters must be distinct")
	// ErrLineBreakControl is returned when a control character is a line break.
	ErrLineBreakControl = errors.New("dialect: control characters cannot be line breaks")
)
