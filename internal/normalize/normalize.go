package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

// Locale pages write decimals with either a comma or a period. Exactly one
// separator is allowed; anything with embedded grouping ("1.234,5") is
// rejected rather than guessed at.
var numberPattern = regexp.MustCompile(`^[-+]?\d+(?:[.,]\d+)?$`)

// Number parses a locale-formatted decimal like "58,5" or "12.5".
// It returns false for anything it cannot parse unambiguously; callers omit
// the field instead of treating this as an error.
func Number(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !numberPattern.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Integer parses a plain integer with optional surrounding whitespace.
func Integer(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}

// CollapseSpace trims s and joins any internal runs of whitespace (including
// newlines from nested markup) with a single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
