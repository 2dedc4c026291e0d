package columns

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "already unique",
			input: []string{"a", "b", "c"},
			want:  []string{"a", "b", "c"},
		},
		{
			name:  "empty entry gets positional name",
			input: []string{"a", "", "c"},
			want:  []string{"a", "COL_1", "c"},
		},
		{
			name:  "all entries empty",
			input: []string{"", "", ""},
			want:  []string{"COL_0", "COL_1", "COL_2"},
		},
		{
			name:  "later duplicate renamed, first kept",
			input: []string{"a", "b", "a"},
			want:  []string{"a", "b", "a_2"},
		},
		{
			name:  "repeated duplicates each get their index",
			input: []string{"x", "x", "x"},
			want:  []string{"x", "x_1", "x_2"},
		},
		{
			name:  "empty entries can collide after renaming",
			input: []string{"", "COL_0"},
			want:  []string{"COL_0", "COL_0_1"},
		},
		{
			name:  "rename result never collides with a later entry",
			input: []string{"a", "a", "a_1"},
			want:  []string{"a", "a_1", "a_1_2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := []string{"a", "", "a"}
	Normalize(input)
	if !reflect.DeepEqual(input, []string{"a", "", "a"}) {
		t.Errorf("Normalize mutated its input: %v", input)
	}
}

func TestRegistrySet(t *testing.T) {
	var r Registry

	r.Set(nil)
	if got := r.Names(); len(got) != 0 {
		t.Errorf("Set(nil) should be a no-op, got %v", got)
	}

	r.Set([]string{"a", "b"})
	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Names() = %v, want [a b]", got)
	}

	// Empty input keeps the previous assignment.
	r.Set([]string{})
	if got := r.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Set([]) should be a no-op, got %v", got)
	}

	r.Set([]string{"x", "x"})
	if got := r.Names(); !reflect.DeepEqual(got, []string{"x", "x_1"}) {
		t.Errorf("Names() after duplicate set = %v, want [x x_1]", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistryNamesReturnsCopy(t *testing.T) {
	var r Registry
	r.Set([]string{"a", "b"})
	got := r.Names()
	got[0] = "mutated"
	if again := r.Names(); again[0] != "a" {
		t.Errorf("Names() exposed internal storage: %v", again)
	}
}

func TestSyntheticName(t *testing.T) {
	if got := SyntheticName(7); got != "COL_7" {
		t.Errorf("SyntheticName(7) = %q, want COL_7", got)
	}
}
