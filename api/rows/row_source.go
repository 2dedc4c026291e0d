package rows

// RowSource represents sequential access to the raw records of a
// delimited text stream. Blank lines are skipped and do not occupy
// a row index.
type RowSource interface {
	// Advance moves the cursor to the next non-empty record.
	// It reports whether a record is available at the new position.
	Advance() bool

	// AtEnd reports whether the cursor has moved past the last record.
	AtEnd() bool

	// CurrentIndex returns the zero-based row index of the cursor.
	// It returns a negative value before the first Advance.
	CurrentIndex() int

	// Current returns the raw fields of the record at the cursor,
	// or nil when no record is available.
	Current() []string

	// Rewind resets the cursor to the start of the stream.
	Rewind() error

	// Seek positions the cursor at row index n. The stream is
	// forward-oriented, so Seek rewinds and re-advances.
	Seek(n int) error

	// Close releases the underlying stream.
	Close() error
}
