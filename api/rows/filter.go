package rows

// FilterContext carries the position of the value being transformed.
// Row is the zero-based row index of the cursor; Column identifies the
// column the value belongs to. During header resolution no column names
// exist yet, so Column holds the positional index rendered as a string.
type FilterContext struct {
	Row    int
	Column string
}

// ValueFilter transforms one field value. It is invoked column by
// column, left to right, within a row; no ordering beyond that may be
// assumed. A nil ValueFilter means identity.
type ValueFilter func(value string, ctx FilterContext) string
