package filters

import (
	"testing"

	"csvfileiterator/api/rows"
)

var noCtx = rows.FilterContext{}

func TestTrimSpace(t *testing.T) {
	if got := TrimSpace("  a b \t", noCtx); got != "a b" {
		t.Errorf("TrimSpace = %q, want %q", got, "a b")
	}
}

func TestToLower(t *testing.T) {
	if got := ToLower("Main St", noCtx); got != "main st" {
		t.Errorf("ToLower = %q, want %q", got, "main st")
	}
}

func TestNormalizeDecimal(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"plain number", "42", "42"},
		{"currency and thousands separators", "€1,234.50", "1234.50"},
		{"dollar with spaces", " $ 99.90 ", "99.90"},
		{"non-numeric left untouched", "n/a", "n/a"},
		{"empty left untouched", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDecimal(tt.value, noCtx); got != tt.want {
				t.Errorf("NormalizeDecimal(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestChainAppliesLeftToRight(t *testing.T) {
	first := func(v string, _ rows.FilterContext) string { return v + "1" }
	second := func(v string, _ rows.FilterContext) string { return v + "2" }
	f := Chain(first, nil, second)
	if got := f("v", noCtx); got != "v12" {
		t.Errorf("Chain = %q, want %q", got, "v12")
	}
}

func TestChainPropagatesContext(t *testing.T) {
	var seen []rows.FilterContext
	record := func(v string, ctx rows.FilterContext) string {
		seen = append(seen, ctx)
		return v
	}
	ctx := rows.FilterContext{Row: 3, Column: "price"}
	Chain(record, record)("v", ctx)
	if len(seen) != 2 || seen[0] != ctx || seen[1] != ctx {
		t.Errorf("chained filters saw %v, want two copies of %v", seen, ctx)
	}
}
