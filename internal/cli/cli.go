package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfeller/bergfex-snow/internal/config"
	"github.com/mfeller/bergfex-snow/internal/fetch"
	"github.com/mfeller/bergfex-snow/internal/lang"
	"github.com/mfeller/bergfex-snow/internal/logger"
	"github.com/mfeller/bergfex-snow/internal/parser"
	"github.com/mfeller/bergfex-snow/internal/report"
	"github.com/mfeller/bergfex-snow/internal/storage"
)

const (
	ExitError   = 1
	ExitChanges = 2
)

var (
	flagFormat  string
	flagBaseURL string
	flagVerbose bool

	flagCountry string
	flagDataDir string
	flagAll     bool
	flagRefresh bool

	flagResort string
	flagLang   string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "bergfex-snow",
		Short: "Check bergfex snow and cross-country trail reports",
		Long: `A CLI tool to extract snow depths, lift status and cross-country trail
reports from bergfex overview and resort detail pages.
Overview runs are compared against the previous run so that fresh snow and
newly opened resorts can be reported.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := logger.ParseLevel(cfg.LogLevel)
			if flagVerbose {
				level = logger.LevelDebug
			}
			logger.SetDefault(logger.New(level, os.Stderr))
		},
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", cfg.BaseURL, "Base URL of the bergfex site")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSnowCmd(cfg), newXCCmd(cfg), newResortsCmd(cfg))

	return cmd
}

// newSnowCmd creates the overview check command
func newSnowCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snow",
		Short: "Check a country's snow overview for changes",
		RunE:  runSnow,
	}

	cmd.Flags().StringVar(&flagCountry, "country", "", fmt.Sprintf("Country name: %s (required)", strings.Join(countryNames(), ", ")))
	cmd.Flags().StringVar(&flagDataDir, "data-dir", cfg.DataDir, "Data directory for snapshots")
	cmd.Flags().BoolVar(&flagAll, "all", false, "Print every resort instead of only changes")
	cmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Refresh the snapshot without reporting changes")

	cmd.MarkFlagRequired("country")

	return cmd
}

// runSnow is the overview command logic
func runSnow(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	country := strings.ToLower(strings.TrimSpace(flagCountry))
	path, ok := fetch.Countries[country]
	if !ok {
		return fmt.Errorf("unknown country %q (supported: %s)", flagCountry, strings.Join(countryNames(), ", "))
	}

	html, err := fetch.New(flagBaseURL).Get(path)
	if err != nil {
		return fmt.Errorf("fetching overview: %w", err)
	}

	records, err := parser.ParseOverview(html)
	if errors.Is(err, parser.ErrStructureNotFound) {
		// Upstream glitch or site redesign; treat as "no data this cycle"
		// rather than a crash.
		fmt.Fprintln(os.Stderr, "No snow data available this cycle.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("parsing overview: %w", err)
	}

	logger.Debug("parsed overview page", logger.Fields{
		"country": country,
		"resorts": len(records),
	})

	store, err := storage.New(flagDataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	// A refresh reseeds the snapshot; there is no previous state worth
	// diffing against in that mode.
	var diff *report.DiffResult
	if !flagRefresh {
		previous, err := store.LoadSnapshot(country)
		if err != nil {
			return fmt.Errorf("loading snapshot: %w", err)
		}
		diff = report.Diff(previous, records)
	}

	if err := store.CreateSnapshotFromRecords(records, country); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}

	if flagRefresh && format == FormatText {
		fmt.Println("Snapshot refreshed successfully.")
		logParseTelemetry()
		return nil
	}

	result := &OverviewResult{
		CheckedAt: time.Now().UTC(),
		Country:   country,
		Changes:   diff,
	}
	if flagAll {
		result.Resorts = records
	}

	if err := WriteOverview(os.Stdout, result, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logParseTelemetry()

	if diff != nil && diff.HasChanges() {
		logger.Info("changes since last check", logger.Fields{
			"newly_listed": len(diff.NewlyListed),
			"opened":       len(diff.Opened),
			"closed":       len(diff.Closed),
			"fresh_snow":   len(diff.FreshSnow),
		})
		os.Exit(ExitChanges)
	}
	return nil
}

// logParseTelemetry emits the accumulated skip/drop counters, so a verbose
// run shows how much of a page the parsers could not use.
func logParseTelemetry() {
	counts := logger.CountersSnapshot()
	if len(counts) == 0 {
		return
	}
	fields := make(logger.Fields, len(counts))
	for name, n := range counts {
		fields[name] = n
	}
	logger.Debug("parse telemetry", fields)
}

// newXCCmd creates the cross-country detail command
func newXCCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "xc",
		Short: "Parse a resort's cross-country trail report",
		RunE:  runXC,
	}

	cmd.Flags().StringVar(&flagResort, "resort", "", "Resort URL path, e.g. /achensee/langlauf/ (required)")
	cmd.Flags().StringVar(&flagLang, "lang", cfg.Language, fmt.Sprintf("Page language: %s", strings.Join(lang.Supported(), ", ")))

	cmd.MarkFlagRequired("resort")

	return cmd
}

// runXC is the cross-country command logic
func runXC(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	// Validate the language up front; the keyword table never guesses.
	kw, err := lang.Get(flagLang)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(lang.Supported(), ", "))
	}

	html, err := fetch.New(flagBaseURL).Get(flagResort)
	if err != nil {
		return fmt.Errorf("fetching resort page: %w", err)
	}

	rep, err := parser.ParseCrossCountry(html, kw, time.Now())
	if err != nil {
		return fmt.Errorf("parsing cross-country page: %w", err)
	}

	if err := WriteCrossCountry(os.Stdout, &rep, format); err != nil {
		return err
	}
	logParseTelemetry()
	return nil
}

// newResortsCmd creates the directory listing command
func newResortsCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resorts",
		Short: "List a country's resorts for selection",
		RunE:  runResorts,
	}

	cmd.Flags().StringVar(&flagCountry, "country", "", fmt.Sprintf("Country name: %s (required)", strings.Join(countryNames(), ", ")))

	cmd.MarkFlagRequired("country")

	return cmd
}

// runResorts is the directory command logic
func runResorts(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	country := strings.ToLower(strings.TrimSpace(flagCountry))
	path, ok := fetch.Countries[country]
	if !ok {
		return fmt.Errorf("unknown country %q (supported: %s)", flagCountry, strings.Join(countryNames(), ", "))
	}

	html, err := fetch.New(flagBaseURL).Get(path)
	if err != nil {
		return fmt.Errorf("fetching overview: %w", err)
	}

	return WriteDirectory(os.Stdout, parser.ListResorts(html), format)
}

func countryNames() []string {
	names := make([]string, 0, len(fetch.Countries))
	for name := range fetch.Countries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
