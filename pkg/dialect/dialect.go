package dialect

// Dialect holds the control characters of a delimited-text format.
// Escape set to zero disables escape processing inside enclosed fields.
type Dialect struct {
	Comma  rune
	Quote  rune
	Escape rune
}

// Default returns the RFC-4180-like dialect: comma delimited,
// double-quote enclosed, backslash escaped.
func Default() Dialect {
	return Dialect{Comma: ',', Quote: '"', Escape: '\\'}
}

// Validate checks the control characters for internal consistency.
func (d Dialect) Validate() error {
	if d.Comma == 0 {
		return ErrMissingComma
	}
	if d.Quote == 0 {
		return ErrMissingQuote
	}
	for _, r := range []rune{d.Comma, d.Quote, d.Escape} {
		if r == '\n' || r == '\r' {
			return ErrLineBreakControl
		}
	}
	if d.Comma == d.Quote {
		return ErrControlConflict
	}
	if d.Escape != 0 && (d.Escape == d.Comma || d.Escape == d.Quote) {
		return ErrControlConflict
	}
	return nil
}
