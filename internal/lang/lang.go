package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// ErrUnsupportedLanguage is returned when a language code has no keyword entry.
// Callers are expected to validate codes up front; this package never falls
// back to a default language silently.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Keywords holds the literal label substrings used on one language's page
// variant. Matching against page text is case-insensitive, so all values are
// stored lowercase.
type Keywords struct {
	TrailReport string // label of the trail-report timestamp row
	Operation   string // label of the operating-status row
	Classical   string // identifies the classical trail distance
	Skating     string // identifies the skating trail distance
	Today       string // relative-date marker in report timestamps
	Closed      string // closure marker anywhere in the status text
}

// The Austrian, German and Swiss page variants share the German labels.
var german = Keywords{
	TrailReport: "loipenbericht",
	Operation:   "betrieb",
	Classical:   "klassisch",
	Skating:     "skating",
	Today:       "heute",
	Closed:      "geschlossen",
}

var keywords = map[string]Keywords{
	"at": german,
	"de": german,
	"ch": german,
	"en": {
		TrailReport: "trail report",
		Operation:   "operation",
		Classical:   "classic",
		Skating:     "skating",
		Today:       "today",
		Closed:      "closed",
	},
	"it": {
		TrailReport: "rapporto piste",
		Operation:   "esercizio",
		Classical:   "classico",
		Skating:     "skating",
		Today:       "oggi",
		Closed:      "chiuso",
	},
	"fr": {
		TrailReport: "rapport des pistes",
		Operation:   "exploitation",
		Classical:   "classique",
		Skating:     "skating",
		Today:       "aujourd'hui",
		Closed:      "fermé",
	},
}

// Get returns the keyword set for a language code. Plain site codes ("at",
// "de", "en", ...) are looked up directly; BCP 47 tags like "de-AT" resolve
// through their region or base language.
func Get(code string) (Keywords, error) {
	if kw, ok := keywords[strings.ToLower(strings.TrimSpace(code))]; ok {
		return kw, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return Keywords{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	// "de-AT" → "at" keyword entry. Only trust regions that were actually
	// present in the tag, not ones inferred by the matcher.
	if region, conf := tag.Region(); conf >= language.High {
		if kw, ok := keywords[strings.ToLower(region.String())]; ok {
			return kw, nil
		}
	}
	if base, conf := tag.Base(); conf >= language.High {
		if kw, ok := keywords[base.String()]; ok {
			return kw, nil
		}
	}

	return Keywords{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Supported returns the plain language codes with a keyword entry, sorted.
func Supported() []string {
	codes := make([]string, 0, len(keywords))
	for code := range keywords {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
