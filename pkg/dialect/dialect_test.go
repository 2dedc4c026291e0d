package dialect

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		d       Dialect
		wantErr error
	}{
		{
			name:    "default dialect",
			d:       Default(),
			wantErr: nil,
		},
		{
			name:    "escape disabled",
			d:       Dialect{Comma: ';', Quote: '\''},
			wantErr: nil,
		},
		{
			name:    "missing delimiter",
			d:       Dialect{Quote: '"'},
			wantErr: ErrMissingComma,
		},
		{
			name:    "missing enclosure",
			d:       Dialect{Comma: ','},
			wantErr: ErrMissingQuote,
		},
		{
			name:    "delimiter equals enclosure",
			d:       Dialect{Comma: '"', Quote: '"'},
			wantErr: ErrControlConflict,
		},
		{
			name:    "escape equals delimiter",
			d:       Dialect{Comma: ',', Quote: '"', Escape: ','},
			wantErr: ErrControlConflict,
		},
		{
			name:    "newline delimiter",
			d:       Dialect{Comma: '\n', Quote: '"'},
			wantErr: ErrLineBreakControl,
		},
		{
			name:    "carriage return escape",
			d:       Dialect{Comma: ',', Quote: '"', Escape: '\r'},
			wantErr: ErrLineBreakControl,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
