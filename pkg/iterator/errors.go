package iterator

import "errors"

var (
	// ErrDelimiterWidth is returned when the delimiter option is not
	// exactly one character.
	ErrDelimiterWidth = errors.New("iterator: delimiter must be exactly one character")
	// ErrEnclosureWidth is returned when the enclosure option is not
	// exactly one character.
	ErrEnclosureWidth = errors.New("iterator: enclosure must be exactly one character")
	// ErrEscapeWidth is returned when the escape option is more than
	// one character. An empty escape disables escape processing.
	ErrEscapeWidth = errors.New("iterator: escape must be at most one character")
)
