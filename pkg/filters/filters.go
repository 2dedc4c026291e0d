package filters

import (
	"log/slog"
	"strings"

	apd "github.com/cockroachdb/apd/v3"

	"csvfileiterator/api/rows"
)

// TrimSpace removes leading and trailing whitespace from each value.
func TrimSpace(value string, _ rows.FilterContext) string {
	return strings.TrimSpace(value)
}

// ToLower lowercases each value.
func ToLower(value string, _ rows.FilterContext) string {
	return strings.ToLower(value)
}

// Chain composes filters left to right into one ValueFilter.
func Chain(fs ...rows.ValueFilter) rows.ValueFilter {
	return func(value string, ctx rows.FilterContext) string {
		for _, f := range fs {
			if f == nil {
				continue
			}
			value = f(value, ctx)
		}
		return value
	}
}

// NormalizeDecimal strips currency symbols, thousands separators and
// spaces from a numeric value and reformats it as a plain decimal.
// Values that do not parse are returned untouched.
func NormalizeDecimal(value string, ctx rows.FilterContext) string {
	cleaned := value
	for _, junk := range []string{"$", "€", "£", ",", " "} {
		cleaned = strings.Replace(cleaned, junk, "", -1)
	}
	cleaned = strings.TrimSpace(cleaned)
	d, _, err := apd.NewFromString(cleaned)
	if err != nil {
		slog.Debug("filters: value is not a decimal",
			slog.String("value", value),
			slog.String("column", ctx.Column),
			slog.Int("row", ctx.Row),
		)
		return value
	}
	return d.String()
}
