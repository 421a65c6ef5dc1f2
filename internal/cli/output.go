package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mfeller/bergfex-snow/internal/report"
)

// OutputFormat selects how command results are rendered.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

func parseFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q (use text or json)", s)
}

// OverviewResult is the printable outcome of one overview check.
type OverviewResult struct {
	CheckedAt time.Time                        `json:"checked_at"`
	Country   string                           `json:"country"`
	Resorts   map[string]report.OverviewRecord `json:"resorts,omitempty"`
	Changes   *report.DiffResult               `json:"changes,omitempty"`
}

// WriteOverview renders an overview check result
func WriteOverview(w io.Writer, result *OverviewResult, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, result)
	}

	if result.Changes != nil {
		writeChanges(w, result.Changes)
	}
	if result.Resorts != nil {
		if result.Changes != nil {
			fmt.Fprintln(w)
		}
		writeResorts(w, result.Resorts)
	}
	return nil
}

func writeChanges(w io.Writer, diff *report.DiffResult) {
	if !diff.HasChanges() {
		fmt.Fprintln(w, "No changes since last check.")
		return
	}

	if len(diff.FreshSnow) > 0 {
		fmt.Fprintln(w, "Fresh snow:")
		paths := make([]string, 0, len(diff.FreshSnow))
		for path := range diff.FreshSnow {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Fprintf(w, "  %s cm  %s\n", formatFloat(diff.FreshSnow[path]), path)
		}
	}
	if len(diff.Opened) > 0 {
		fmt.Fprintln(w, "Opened:")
		for _, path := range diff.Opened {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
	if len(diff.Closed) > 0 {
		fmt.Fprintln(w, "Closed:")
		for _, path := range diff.Closed {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
	if len(diff.NewlyListed) > 0 {
		fmt.Fprintln(w, "Newly listed:")
		for _, path := range diff.NewlyListed {
			fmt.Fprintf(w, "  %s\n", path)
		}
	}
}

func writeResorts(w io.Writer, resorts map[string]report.OverviewRecord) {
	paths := make([]string, 0, len(resorts))
	for path := range resorts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	fmt.Fprintf(w, "Resorts (%d):\n", len(paths))
	for _, path := range paths {
		fmt.Fprintf(w, "  %s\n    %s\n", path, formatRecord(resorts[path]))
	}
}

// formatRecord renders one overview row on a single line
func formatRecord(rec report.OverviewRecord) string {
	parts := []string{
		"valley " + formatCm(rec.SnowValleyCm),
		"mountain " + formatCm(rec.SnowMountainCm),
		"new " + formatCm(rec.NewSnowCm),
		"lifts " + formatLifts(rec.LiftsOpenCount, rec.LiftsTotalCount),
	}
	if rec.Status != "" {
		parts = append(parts, string(rec.Status))
	}
	if rec.LastUpdate != "" {
		parts = append(parts, "updated "+rec.LastUpdate)
	}
	return strings.Join(parts, " | ")
}

func formatCm(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v) + " cm"
}

func formatLifts(open, total *int) string {
	switch {
	case open != nil && total != nil:
		return fmt.Sprintf("%d/%d", *open, *total)
	case open != nil:
		return strconv.Itoa(*open)
	case total != nil:
		return fmt.Sprintf("?/%d", *total)
	}
	return "-"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WriteCrossCountry renders a cross-country trail report
func WriteCrossCountry(w io.Writer, rep *report.CrossCountryReport, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, rep)
	}

	fmt.Fprintln(w, rep.ResortName)
	if rep.ClassicalDistanceKm != nil {
		fmt.Fprintf(w, "  Classical: %s km%s\n", formatFloat(*rep.ClassicalDistanceKm), formatCondition(rep.ClassicalCondition))
	}
	if rep.SkatingDistanceKm != nil {
		fmt.Fprintf(w, "  Skating:   %s km%s\n", formatFloat(*rep.SkatingDistanceKm), formatCondition(rep.SkatingCondition))
	}
	if rep.OperationStatus != "" {
		fmt.Fprintf(w, "  Operation: %s\n", rep.OperationStatus)
	}
	fmt.Fprintf(w, "  Status:    %s\n", rep.Status)
	if !rep.LastUpdate.IsZero() {
		fmt.Fprintf(w, "  Updated:   %s\n", rep.LastUpdate.Format("02.01.2006 15:04"))
	}
	return nil
}

func formatCondition(condition string) string {
	if condition == "" {
		return ""
	}
	return ", " + condition
}

// WriteDirectory renders a resort path → name listing
func WriteDirectory(w io.Writer, resorts map[string]string, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, resorts)
	}

	if len(resorts) == 0 {
		fmt.Fprintln(w, "No resorts found.")
		return nil
	}

	paths := make([]string, 0, len(resorts))
	for path := range resorts {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fmt.Fprintf(w, "%s  %s\n", path, resorts[path])
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
