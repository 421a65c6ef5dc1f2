package normalize

import (
	"regexp"
	"time"
)

// Layouts attempted for absolute report timestamps, most specific first.
// Single-digit layout tokens also accept zero-padded input.
var reportTimeLayouts = []string{
	"2.1.2006, 15:04",
	"2.1.2006 15:04",
	"2.1.2006",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// Layouts without a year; the year is taken from the reference date.
var yearlessLayouts = []string{
	"2.1., 15:04",
	"Jan 2, 15:04",
}

// ReportTime parses a trail-report timestamp such as "Heute, 11:52" or
// "05.01.2024, 14:30". A case-insensitive occurrence of todayKeyword is
// replaced with ref's calendar date before parsing, so results are
// deterministic for a fixed reference date. Returns false when the text
// matches no known shape.
func ReportTime(text, todayKeyword string, ref time.Time) (time.Time, bool) {
	text = CollapseSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	if todayKeyword != "" {
		text = replaceToday(text, todayKeyword, ref.Format("02.01.2006"))
	}

	for _, layout := range reportTimeLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}

	for _, layout := range yearlessLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return time.Date(ref.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location()), true
		}
	}

	return time.Time{}, false
}

// replaceToday substitutes the first case-insensitive occurrence of the today
// keyword with the reference date. Matching runs on the original text, so
// characters whose lowercase form has a different byte length cannot skew the
// splice offsets.
func replaceToday(text, keyword, date string) string {
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(keyword))
	loc := re.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + date + text[loc[1]:]
}
