package rowsource

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"csvfileiterator/api/rows"
	"csvfileiterator/pkg/dialect"
)

var _ rows.RowSource = (*Source)(nil)

// Source is a file-backed row source. It parses one record at a time
// under a configurable dialect, skipping blank lines. The cursor starts
// before the first record; the first Advance moves it to row index 0.
type Source struct {
	f   *os.File
	enc *charmap.Charmap
	br  *bufio.Reader
	d   dialect.Dialect

	rec   []string
	idx   int
	atEnd bool
}

// Open opens path for sequential record access under d.
func Open(path string, d dialect.Dialect, opts ...Option) (*Source, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("rowsource: stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rowsource: open %s: %w", path, err)
	}
	s := &Source{f: f, d: d}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			f.Close()
			return nil, err
		}
	}
	s.reset()
	return s, nil
}

func (s *Source) reset() {
	var r io.Reader = s.f
	if s.enc != nil {
		r = transform.NewReader(s.f, s.enc.NewDecoder())
	}
	s.br = bufio.NewReader(r)
	s.rec = nil
	s.idx = -1
	s.atEnd = false
}

// Advance moves the cursor to the next non-empty record and reports
// whether one is available.
func (s *Source) Advance() bool {
	if s.atEnd {
		return false
	}
	rec, err := s.readRecord()
	if err != nil {
		if err != io.EOF {
			slog.Warn("rowsource: read failed", slog.Any("error", err))
		}
		s.rec = nil
		s.atEnd = true
		return false
	}
	s.rec = rec
	s.idx++
	return true
}

// AtEnd reports whether the cursor has moved past the last record.
func (s *Source) AtEnd() bool { return s.atEnd }

// CurrentIndex returns the zero-based row index of the cursor, or -1
// before the first Advance.
func (s *Source) CurrentIndex() int { return s.idx }

// Current returns the raw fields at the cursor, nil when none.
func (s *Source) Current() []string { return s.rec }

// Rewind resets the cursor to the start of the file.
func (s *Source) Rewind() error {
	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rowsource: rewind: %w", err)
	}
	s.reset()
	return nil
}

// Seek positions the cursor at row index n by rewinding and
// re-advancing. Seeking past the last record leaves the source at end.
func (s *Source) Seek(n int) error {
	if n < 0 {
		return ErrNegativeSeek
	}
	if err := s.Rewind(); err != nil {
		return err
	}
	for s.idx < n && s.Advance() {
	}
	return nil
}

// Close releases the underlying file.
func (s *Source) Close() error { return s.f.Close() }

// readRecord parses one record, which may span physical lines when a
// field is enclosed. Blank lines are consumed silently. Malformed input
// is handled best-effort: a bare enclosure character inside an
// unenclosed field is kept literally, and an enclosure left open at EOF
// yields whatever was collected.
func (s *Source) readRecord() ([]string, error) {
	var (
		fields     []string
		field      strings.Builder
		inQuotes   bool
		sawContent bool
	)
	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
	}
	for {
		r, _, err := s.br.ReadRune()
		if err != nil {
			if err != io.EOF {
				return nil, err
			}
			if !sawContent {
				return nil, io.EOF
			}
			endField()
			return fields, nil
		}

		if inQuotes {
			switch {
			case s.d.Escape != 0 && r == s.d.Escape:
				next, _, nerr := s.br.ReadRune()
				if nerr != nil {
					field.WriteRune(r)
					continue
				}
				if next == s.d.Quote {
					field.WriteRune(s.d.Quote)
				} else {
					field.WriteRune(r)
					field.WriteRune(next)
				}
			case r == s.d.Quote:
				next, _, nerr := s.br.ReadRune()
				if nerr == nil && next == s.d.Quote {
					// doubled enclosure inside an enclosed field
					field.WriteRune(s.d.Quote)
					continue
				}
				if nerr == nil {
					s.br.UnreadRune()
				}
				inQuotes = false
			default:
				field.WriteRune(r)
			}
			continue
		}

		switch {
		case r == s.d.Comma:
			sawContent = true
			endField()
		case r == '\n':
			if !sawContent {
				continue
			}
			endField()
			return fields, nil
		case r == '\r':
			next, _, nerr := s.br.ReadRune()
			if nerr == nil && next != '\n' {
				s.br.UnreadRune()
			}
			if !sawContent {
				continue
			}
			endField()
			return fields, nil
		case r == s.d.Quote:
			sawContent = true
			if field.Len() == 0 {
				inQuotes = true
			} else {
				field.WriteRune(r)
			}
		default:
			sawContent = true
			field.WriteRune(r)
		}
	}
}
