package iterator

import (
	"log/slog"
	"strconv"

	"csvfileiterator/api/rows"
	"csvfileiterator/pkg/columns"
	"csvfileiterator/pkg/dialect"
	"csvfileiterator/pkg/rowsource"
)

var _ rows.RowIterator = (*FileIterator)(nil)

// FileIterator streams the records of one delimited text file. Column
// names come from an explicit assignment or from the first record of
// the file; each record is materialized on demand into a mapping from
// column name to filtered value.
//
// The iterator owns its stream cursor exclusively and is not safe for
// concurrent use.
type FileIterator struct {
	src    *rowsource.Source
	cols   columns.Registry
	filter rows.ValueFilter

	// firstRowHeader is set once by UseFirstRowAsHeader and never
	// cleared. Rewind and Seek leave it untouched.
	firstRowHeader bool
}

// New opens the file at path with the default comma/double-quote/backslash
// dialect, adjusted by opts.
func New(path string, opts ...Option) (*FileIterator, error) {
	cfg := config{d: dialect.Default()}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	var srcOpts []rowsource.Option
	if cfg.enc != nil {
		srcOpts = append(srcOpts, rowsource.WithEncoding(cfg.enc))
	}
	src, err := rowsource.Open(path, cfg.d, srcOpts...)
	if err != nil {
		return nil, err
	}
	return &FileIterator{src: src}, nil
}

// prime performs the lazy first advance so a fresh or rewound cursor
// sits on row 0.
func (it *FileIterator) prime() {
	if it.src.CurrentIndex() < 0 && !it.src.AtEnd() {
		it.src.Advance()
	}
}

// position primes the cursor and steps over a designated header row.
func (it *FileIterator) position() {
	it.prime()
	if it.firstRowHeader && it.src.CurrentIndex() == 0 && !it.src.AtEnd() {
		it.src.Advance()
	}
}

// SetValueFilter installs f as the per-value transformation applied
// during materialization. Passing nil resets to identity. The filter
// affects subsequent materializations only.
func (it *FileIterator) SetValueFilter(f rows.ValueFilter) {
	it.filter = f
}

// SetColumnNames replaces the column names after normalization. An
// empty input is a no-op. Returns the iterator for chaining.
func (it *FileIterator) SetColumnNames(names []string) rows.RowIterator {
	it.cols.Set(names)
	return it
}

// GetColumnNames returns the current ordered column names, empty if
// never set.
func (it *FileIterator) GetColumnNames() []string {
	return it.cols.Names()
}

// UseFirstRowAsHeader derives the column names from the first record of
// the file. The record passes through the installed value filter with
// row index 0 before non-empty names are substituted via rename and the
// result is normalized. The record is excluded from subsequent
// iteration, and the cursor is restored to where it was before the
// call. On a file with no records the column names stay empty.
func (it *FileIterator) UseFirstRowAsHeader(rename map[string]string) rows.RowIterator {
	it.prime()
	save := it.src.CurrentIndex()
	if save > 0 {
		if err := it.src.Rewind(); err != nil {
			slog.Warn("iterator: header rewind failed", slog.Any("error", err))
			return it
		}
		it.src.Advance()
	}
	if raw := it.src.Current(); raw != nil {
		names := make([]string, len(raw))
		for i, v := range raw {
			name := it.apply(v, 0, strconv.Itoa(i))
			if name != "" {
				if mapped, ok := rename[name]; ok {
					name = mapped
				}
			}
			names[i] = name
		}
		it.cols.Set(names)
	}
	it.firstRowHeader = true
	if save > 0 {
		if err := it.src.Seek(save); err != nil {
			slog.Warn("iterator: header cursor restore failed", slog.Any("error", err))
		}
	}
	return it
}

// Current materializes the record at the cursor. Column and record
// widths are reconciled: missing trailing fields become empty values,
// extra fields get synthetic COL_<i> names for this materialization
// only. The mapping is built fresh on every call, so it always reflects
// the currently installed column names and filter.
func (it *FileIterator) Current() map[string]string {
	it.position()
	raw := it.src.Current()
	row := make(map[string]string, len(raw))
	if raw == nil {
		return row
	}
	names := it.effectiveNames(len(raw))
	idx := it.src.CurrentIndex()
	for i, name := range names {
		var v string
		if i < len(raw) {
			v = raw[i]
		}
		if _, ok := row[name]; ok {
			continue
		}
		row[name] = it.apply(v, idx, name)
	}
	return row
}

// ColumnOrder returns the effective ordered key list for the record at
// the cursor: the stored column names plus synthetic names for any
// extra fields. With no record available it returns the stored names.
func (it *FileIterator) ColumnOrder() []string {
	it.position()
	raw := it.src.Current()
	if raw == nil {
		return it.cols.Names()
	}
	return it.effectiveNames(len(raw))
}

// Count scans the whole stream and returns the number of data records,
// excluding a designated header row. The cursor is restored afterwards.
func (it *FileIterator) Count() int {
	it.prime()
	save := it.src.CurrentIndex()
	if err := it.src.Rewind(); err != nil {
		slog.Warn("iterator: count rewind failed", slog.Any("error", err))
		return 0
	}
	n := 0
	for it.src.Advance() {
		if it.firstRowHeader && it.src.CurrentIndex() == 0 {
			continue
		}
		n++
	}
	if save >= 0 {
		if err := it.src.Seek(save); err != nil {
			slog.Warn("iterator: count cursor restore failed", slog.Any("error", err))
		}
	}
	return n
}

// Advance moves the cursor to the next data record and reports whether
// one is available.
func (it *FileIterator) Advance() bool {
	it.position()
	return it.src.Advance()
}

// AtEnd reports whether the cursor has moved past the last data record.
func (it *FileIterator) AtEnd() bool {
	it.position()
	return it.src.AtEnd()
}

// CurrentIndex returns the zero-based row index of the cursor.
func (it *FileIterator) CurrentIndex() int {
	it.prime()
	if i := it.src.CurrentIndex(); i >= 0 {
		return i
	}
	return 0
}

// Rewind resets the cursor to the start of the file. The header flag is
// unaffected, so a designated header row stays excluded.
func (it *FileIterator) Rewind() error { return it.src.Rewind() }

// Seek positions the cursor at row index n.
func (it *FileIterator) Seek(n int) error { return it.src.Seek(n) }

// Close releases the underlying file.
func (it *FileIterator) Close() error { return it.src.Close() }

// effectiveNames returns the working column list for a record of
// rowLen fields. The stored names are never mutated.
func (it *FileIterator) effectiveNames(rowLen int) []string {
	names := it.cols.Names()
	for i := len(names); i < rowLen; i++ {
		names = append(names, columns.SyntheticName(i))
	}
	return names
}

func (it *FileIterator) apply(v string, row int, column string) string {
	if it.filter == nil {
		return v
	}
	return it.filter(v, rows.FilterContext{Row: row, Column: column})
}
