package parser

import "errors"

// ErrStructureNotFound indicates that the top-level container a parser
// expects (the snow table, or a detail page's title and report blocks) is
// absent. That usually means the wrong page was fetched or the site layout
// changed; callers should treat it as "no data this cycle", not as a crash.
var ErrStructureNotFound = errors.New("expected page structure not found")
