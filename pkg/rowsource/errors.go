package rowsource

import "errors"

var (
	// ErrIsDirectory is returned when the configured path refers to a
	// directory instead of a readable file.
	ErrIsDirectory = errors.New("rowsource: path is a directory")
	// ErrNegativeSeek is returned when Seek is given a negative row index.
	ErrNegativeSeek = errors.New("rowsource: negative row index")
)
