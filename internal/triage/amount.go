package triage

import (
	"strconv"
	"strings"
)

// ParseAmount reduces a currency-like string ("$12,500.00") to a numeric
// value. It strips every rune that is not a digit or a decimal point and
// parses the remainder. Anything unparseable reports ok=false rather than an
// error, so threshold comparisons downstream fail safe. It is not tied to any
// particular monetary field.
func ParseAmount(raw string) (float64, bool) {
	if raw == "" {
		return 0, false
	}

	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
