package columns

import "fmt"

// SyntheticName returns the generated name for an unnamed column at
// positional index i. It is also used for extra fields encountered
// beyond the declared column count.
func SyntheticName(i int) string {
	return fmt.Sprintf("COL_%d", i)
}

// Normalize returns a copy of names with empty and duplicate entries
// rewritten so the result contains no empty and no repeated names.
// An empty entry at index i becomes COL_<i>. A later duplicate at
// index j becomes <value>_<j>; the first occurrence keeps its form.
func Normalize(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		if name == "" {
			name = SyntheticName(i)
		}
		out[i] = name
	}
	seen := make(map[string]int, len(out))
	for i, name := range out {
		if _, ok := seen[name]; ok {
			out[i] = fmt.Sprintf("%s_%d", name, i)
		}
		seen[out[i]] = i
	}
	return out
}

// Registry holds the canonical ordered column names of one reader.
// The zero value is an empty registry ready for use.
type Registry struct {
	names []string
}

// Set replaces the registry contents with a normalized copy of names.
// An empty input is a no-op. The replacement is atomic: readers never
// observe a partially updated list.
func (r *Registry) Set(names []string) {
	if len(names) == 0 {
		return
	}
	r.names = Normalize(names)
}

// Names returns a copy of the current ordered column names.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of stored column names.
func (r *Registry) Len() int { return len(r.names) }
