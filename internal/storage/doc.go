// Package storage persists per-country overview snapshots as JSON files in a
// data directory, enabling change detection between CLI runs. The parsing
// engine itself never touches storage.
package storage
