package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mfeller/bergfex-snow/internal/report"
)

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"", FormatText, false},
		{"yaml", "", true},
	}

	for _, tt := range tests {
		got, err := parseFormat(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseFormat(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseFormat(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestWriteOverviewTextChanges(t *testing.T) {
	var buf bytes.Buffer
	result := &OverviewResult{
		Country: "austria",
		Changes: &report.DiffResult{
			Opened:    []string{"/achensee/schneebericht/"},
			FreshSnow: map[string]float64{"/soelden/schneebericht/": 12.5},
		},
	}

	if err := WriteOverview(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOverview failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Fresh snow:",
		"12.5 cm  /soelden/schneebericht/",
		"Opened:",
		"/achensee/schneebericht/",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteOverviewTextNoChanges(t *testing.T) {
	var buf bytes.Buffer
	result := &OverviewResult{
		Country: "austria",
		Changes: &report.DiffResult{},
	}

	if err := WriteOverview(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOverview failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No changes since last check.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestWriteOverviewTextAllResorts(t *testing.T) {
	var buf bytes.Buffer
	result := &OverviewResult{
		Country: "austria",
		Resorts: map[string]report.OverviewRecord{
			"/achensee/schneebericht/": {
				SnowValleyCm:    floatPtr(45),
				NewSnowCm:       floatPtr(5),
				LiftsOpenCount:  intPtr(3),
				LiftsTotalCount: intPtr(8),
				Status:          report.StatusOpen,
				LastUpdate:      "2024-01-15T08:00",
			},
			"/soelden/schneebericht/": {},
		},
	}

	if err := WriteOverview(&buf, result, FormatText); err != nil {
		t.Fatalf("WriteOverview failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Resorts (2):",
		"valley 45 cm | mountain - | new 5 cm | lifts 3/8 | Open | updated 2024-01-15T08:00",
		"valley - | mountain - | new - | lifts -",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Sorted by path.
	if strings.Index(out, "/achensee/") > strings.Index(out, "/soelden/") {
		t.Error("resorts not sorted by path")
	}
}

func TestWriteOverviewJSON(t *testing.T) {
	var buf bytes.Buffer
	result := &OverviewResult{
		CheckedAt: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		Country:   "austria",
		Changes: &report.DiffResult{
			NewlyListed: []string{"/achensee/schneebericht/"},
		},
	}

	if err := WriteOverview(&buf, result, FormatJSON); err != nil {
		t.Fatalf("WriteOverview failed: %v", err)
	}

	var decoded OverviewResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Country != "austria" {
		t.Errorf("country = %q", decoded.Country)
	}
	if len(decoded.Changes.NewlyListed) != 1 {
		t.Errorf("changes not round-tripped: %+v", decoded.Changes)
	}
}

func TestWriteCrossCountryText(t *testing.T) {
	var buf bytes.Buffer
	rep := &report.CrossCountryReport{
		ResortName:          "Achensee - Tirols Sport & Vital Park",
		ClassicalDistanceKm: floatPtr(58.5),
		ClassicalCondition:  "gespurt (sehr gut)",
		SkatingDistanceKm:   floatPtr(82.5),
		OperationStatus:     "täglich",
		Status:              report.StatusOpen,
		LastUpdate:          time.Date(2024, 1, 15, 11, 52, 0, 0, time.UTC),
	}

	if err := WriteCrossCountry(&buf, rep, FormatText); err != nil {
		t.Fatalf("WriteCrossCountry failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Achensee - Tirols Sport & Vital Park",
		"Classical: 58.5 km, gespurt (sehr gut)",
		"Skating:   82.5 km",
		"Operation: täglich",
		"Status:    Open",
		"Updated:   15.01.2024 11:52",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteCrossCountryTextSparse(t *testing.T) {
	var buf bytes.Buffer
	rep := &report.CrossCountryReport{
		ResortName: "Seefeld",
		Status:     report.StatusClosed,
	}

	if err := WriteCrossCountry(&buf, rep, FormatText); err != nil {
		t.Fatalf("WriteCrossCountry failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "Classical") || strings.Contains(out, "Updated") {
		t.Errorf("sparse report should omit absent fields:\n%s", out)
	}
	if !strings.Contains(out, "Status:    Closed") {
		t.Errorf("status missing:\n%s", out)
	}
}

func TestWriteDirectoryText(t *testing.T) {
	var buf bytes.Buffer
	resorts := map[string]string{
		"/soelden/schneebericht/":  "Sölden",
		"/achensee/schneebericht/": "Achensee",
	}

	if err := WriteDirectory(&buf, resorts, FormatText); err != nil {
		t.Fatalf("WriteDirectory failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "/achensee/") {
		t.Errorf("listing not sorted by path: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Sölden") {
		t.Errorf("resort name missing: %q", lines[1])
	}
}

func TestWriteDirectoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDirectory(&buf, map[string]string{}, FormatText); err != nil {
		t.Fatalf("WriteDirectory failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No resorts found.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestFormatLifts(t *testing.T) {
	tests := []struct {
		open, total *int
		want        string
	}{
		{intPtr(3), intPtr(8), "3/8"},
		{intPtr(5), nil, "5"},
		{nil, intPtr(8), "?/8"},
		{nil, nil, "-"},
	}

	for _, tt := range tests {
		if got := formatLifts(tt.open, tt.total); got != tt.want {
			t.Errorf("formatLifts(%v, %v) = %q, want %q", tt.open, tt.total, got, tt.want)
		}
	}
}
