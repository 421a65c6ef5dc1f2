package storage

import (
	"testing"

	"github.com/mfeller/bergfex-snow/internal/report"
)

func floatPtr(f float64) *float64 { return &f }

func TestSnapshotRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	records := map[string]report.OverviewRecord{
		"/achensee/schneebericht/": {
			SnowValleyCm: floatPtr(45),
			Status:       report.StatusOpen,
			LastUpdate:   "2024-01-15T08:00",
		},
		"/soelden/schneebericht/": {
			Status: report.StatusClosed,
		},
	}

	if err := store.CreateSnapshotFromRecords(records, "austria"); err != nil {
		t.Fatalf("CreateSnapshotFromRecords failed: %v", err)
	}

	loaded, err := store.LoadSnapshot("austria")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}

	if len(loaded.Resorts) != 2 {
		t.Fatalf("expected 2 resorts, got %d", len(loaded.Resorts))
	}
	rec := loaded.Resorts["/achensee/schneebericht/"]
	if rec.SnowValleyCm == nil || *rec.SnowValleyCm != 45 {
		t.Errorf("snow_valley_cm not round-tripped: %v", rec.SnowValleyCm)
	}
	if rec.Status != report.StatusOpen {
		t.Errorf("status = %q", rec.Status)
	}
	if loaded.UpdatedAt == "" {
		t.Error("UpdatedAt should be stamped on save")
	}

	// Absent optional fields must stay absent after a round trip.
	closed := loaded.Resorts["/soelden/schneebericht/"]
	if closed.SnowValleyCm != nil || closed.LiftsOpenCount != nil {
		t.Error("absent fields reappeared after round trip")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snap, err := store.LoadSnapshot("austria")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(snap.Resorts) != 0 {
		t.Errorf("expected empty snapshot, got %d resorts", len(snap.Resorts))
	}
}

func TestSnapshotsArePerCountry(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	records := map[string]report.OverviewRecord{
		"/achensee/schneebericht/": {Status: report.StatusOpen},
	}
	if err := store.CreateSnapshotFromRecords(records, "austria"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	other, err := store.LoadSnapshot("switzerland")
	if err != nil {
		t.Fatalf("LoadSnapshot failed: %v", err)
	}
	if len(other.Resorts) != 0 {
		t.Error("snapshots should be isolated per country")
	}
}
