package rows

// RowIterator is the full reader contract: the cursor operations of a
// row stream extended with column naming, header resolution, value
// filtering, and row materialization.
type RowIterator interface {
	// Advance moves the cursor to the next non-empty record and
	// reports whether one is available.
	Advance() bool

	// AtEnd reports whether the cursor has moved past the last record.
	AtEnd() bool

	// CurrentIndex returns the zero-based row index of the cursor.
	CurrentIndex() int

	// Rewind resets the cursor to the start of the stream.
	Rewind() error

	// Seek positions the cursor at row index n.
	Seek(n int) error

	// Close releases the underlying stream.
	Close() error

	// SetColumnNames replaces the column names after normalization.
	// An empty input is a no-op.
	SetColumnNames(names []string) RowIterator

	// GetColumnNames returns the current ordered column names,
	// empty if never set.
	GetColumnNames() []string

	// SetValueFilter installs f as the per-value transformation
	// applied during materialization. Passing nil resets to identity.
	SetValueFilter(f ValueFilter)

	// UseFirstRowAsHeader derives column names from the first record
	// of the stream, renaming via the supplied map, and excludes that
	// record from subsequent iteration.
	UseFirstRowAsHeader(rename map[string]string) RowIterator

	// Current materializes the record at the cursor into a mapping
	// from column name to filtered value. It returns an empty map
	// when no record is available.
	Current() map[string]string

	// ColumnOrder returns the effective ordered key list of the
	// record at the cursor, including synthetic names for extra
	// fields.
	ColumnOrder() []string

	// Count returns the number of data records in the stream,
	// excluding a designated header row.
	Count() int
}
