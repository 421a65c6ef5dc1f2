// Package parser extracts structured ski-resort data from bergfex HTML pages.
//
// The parsers target the site's current markup conventions: the overview
// table carries the CSS class "snow", numeric cells expose canonical values
// in data-value attributes, lift status is encoded in icon-status marker
// classes, and cross-country reports use a definition list (or a simpler
// card layout) with language-specific labels. When those conventions break,
// parsing degrades to empty or partial results instead of crashing.
//
// All parsers are pure functions of their input: no I/O, no clock reads, no
// state between invocations. Independent callers may run them concurrently.
// The only fatal condition is a missing top-level container
// (ErrStructureNotFound); every individual field is best-effort and omitted
// on failure with a debug diagnostic.
package parser
