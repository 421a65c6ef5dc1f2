// Package report provides the record types produced by the parsing engine and
// snapshot-based change detection between overview fetches.
//
// Overview records are keyed by the resort's URL path, which is the only
// stable identifier the source pages expose. Diffing two snapshots yields
// newly-listed resorts, open/closed transitions, and fresh snowfall.
package report
