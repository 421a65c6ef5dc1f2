package report

import "sort"

// Snapshot is the recorded result of one overview fetch for a country.
type Snapshot struct {
	Resorts   map[string]OverviewRecord `json:"resorts"`    // keyed by URL path
	UpdatedAt string                    `json:"updated_at"` // RFC3339 timestamp
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Resorts: make(map[string]OverviewRecord),
	}
}

// CreateSnapshot creates a snapshot from parsed overview records
func CreateSnapshot(records map[string]OverviewRecord, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt
	for path, rec := range records {
		snap.Resorts[path] = rec
	}
	return snap
}

// DiffResult contains the differences between two overview fetches
type DiffResult struct {
	NewlyListed []string           `json:"newly_listed,omitempty"` // resorts seen for the first time
	Opened      []string           `json:"opened,omitempty"`       // status flipped to Open
	Closed      []string           `json:"closed,omitempty"`       // status flipped from Open to Closed
	FreshSnow   map[string]float64 `json:"fresh_snow,omitempty"`   // path → reported new snow in cm
}

// HasChanges reports whether the diff contains anything worth reporting.
func (d *DiffResult) HasChanges() bool {
	return len(d.NewlyListed) > 0 || len(d.Opened) > 0 || len(d.Closed) > 0 || len(d.FreshSnow) > 0
}

// Diff compares current overview records against a previous snapshot.
// Fresh snow is reported when a resort now lists new snowfall that the
// previous run didn't have, or lists more than before.
func Diff(previous *Snapshot, current map[string]OverviewRecord) *DiffResult {
	result := &DiffResult{
		FreshSnow: make(map[string]float64),
	}

	if previous == nil {
		previous = NewSnapshot()
	}

	for path, rec := range current {
		prev, seen := previous.Resorts[path]
		if !seen {
			result.NewlyListed = append(result.NewlyListed, path)
		} else {
			if rec.Status == StatusOpen && prev.Status != StatusOpen && prev.Status != "" {
				result.Opened = append(result.Opened, path)
			}
			if rec.Status == StatusClosed && prev.Status == StatusOpen {
				result.Closed = append(result.Closed, path)
			}
		}

		if rec.NewSnowCm != nil && *rec.NewSnowCm > 0 {
			if !seen || prev.NewSnowCm == nil || *prev.NewSnowCm < *rec.NewSnowCm {
				result.FreshSnow[path] = *rec.NewSnowCm
			}
		}
	}

	// Sort for consistent output
	sort.Strings(result.NewlyListed)
	sort.Strings(result.Opened)
	sort.Strings(result.Closed)

	return result
}
