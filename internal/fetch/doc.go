// Package fetch retrieves bergfex pages over HTTP.
//
// Fetching is deliberately separate from parsing: the parsers in
// internal/parser are pure functions over already-retrieved text, and this
// package owns all network concerns (timeouts, retries, rate limiting).
package fetch
