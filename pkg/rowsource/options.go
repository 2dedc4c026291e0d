package rowsource

import "golang.org/x/text/encoding/charmap"

// Option configures a Source.
type Option func(*Source) error

// WithEncoding decodes the underlying file from the given legacy
// character map (for example charmap.Windows1252) before parsing.
func WithEncoding(cm *charmap.Charmap) Option {
	return func(s *Source) error {
		s.enc = cm
		return nil
	}
}
