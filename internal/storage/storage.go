package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mfeller/bergfex-snow/internal/report"
)

// Storage handles persistence of overview snapshots
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// snapshotPath returns the path to a country's snapshot file
func (s *Storage) snapshotPath(country string) string {
	return filepath.Join(s.dataDir, fmt.Sprintf("snapshot_%s.json", strings.ToLower(country)))
}

// LoadSnapshot loads a country's snapshot from disk. A missing file yields
// an empty snapshot, so first runs report everything as new.
func (s *Storage) LoadSnapshot(country string) (*report.Snapshot, error) {
	data, err := os.ReadFile(s.snapshotPath(country))
	if err != nil {
		if os.IsNotExist(err) {
			return report.NewSnapshot(), nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot report.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}

	if snapshot.Resorts == nil {
		snapshot.Resorts = make(map[string]report.OverviewRecord)
	}

	return &snapshot, nil
}

// SaveSnapshot saves a country's snapshot to disk
func (s *Storage) SaveSnapshot(snapshot *report.Snapshot, country string) error {
	snapshot.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	if err := os.WriteFile(s.snapshotPath(country), data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	return nil
}

// CreateSnapshotFromRecords creates and saves a snapshot from parsed records
func (s *Storage) CreateSnapshotFromRecords(records map[string]report.OverviewRecord, country string) error {
	snapshot := report.CreateSnapshot(records, time.Now().UTC().Format(time.RFC3339))
	return s.SaveSnapshot(snapshot, country)
}
