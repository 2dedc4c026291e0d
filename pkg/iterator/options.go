package iterator

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"csvfileiterator/pkg/dialect"
)

type config struct {
	d   dialect.Dialect
	enc *charmap.Charmap
}

// Option configures a FileIterator before the underlying file is opened.
type Option func(*config) error

// WithDelimiter sets the field delimiter character.
func WithDelimiter(s string) Option {
	return func(c *config) error {
		r, err := singleRune(s, ErrDelimiterWidth)
		if err != nil {
			return err
		}
		c.d.Comma = r
		return nil
	}
}

// WithEnclosure sets the field enclosure character.
func WithEnclosure(s string) Option {
	return func(c *config) error {
		r, err := singleRune(s, ErrEnclosureWidth)
		if err != nil {
			return err
		}
		c.d.Quote = r
		return nil
	}
}

// WithEscape sets the escape character used inside enclosed fields.
// The empty string disables escape processing.
func WithEscape(s string) Option {
	return func(c *config) error {
		if s == "" {
			c.d.Escape = 0
			return nil
		}
		r, err := singleRune(s, ErrEscapeWidth)
		if err != nil {
			return err
		}
		c.d.Escape = r
		return nil
	}
}

// WithEncoding decodes the input from the given legacy character map
// before parsing.
func WithEncoding(cm *charmap.Charmap) Option {
	return func(c *config) error {
		c.enc = cm
		return nil
	}
}

func singleRune(s string, widthErr error) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, widthErr
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
