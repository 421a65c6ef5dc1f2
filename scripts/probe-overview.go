package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/mfeller/bergfex-snow/internal/fetch"
	"github.com/mfeller/bergfex-snow/internal/parser"
)

// Manual probe against the live site. Run it when bergfex changes its markup
// to see what the overview parser still picks up:
//
//	go run scripts/probe-overview.go [country]
func main() {
	country := "austria"
	if len(os.Args) > 1 {
		country = os.Args[1]
	}

	path, ok := fetch.Countries[country]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown country %q\n", country)
		os.Exit(1)
	}

	html, err := fetch.New("").Get(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	records, err := parser.ParseOverview(html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d resorts from %s%s\n\n", len(records), fetch.DefaultBaseURL, path)

	paths := make([]string, 0, len(records))
	for p := range records {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	shown := 0
	for _, p := range paths {
		if shown == 10 {
			fmt.Printf("... and %d more\n", len(paths)-shown)
			break
		}
		rec := records[p]
		fmt.Printf("%s\n  valley=%s mountain=%s new=%s status=%s updated=%s\n",
			p, fmtCm(rec.SnowValleyCm), fmtCm(rec.SnowMountainCm), fmtCm(rec.NewSnowCm),
			rec.Status, rec.LastUpdate)
		shown++
	}
}

func fmtCm(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%gcm", *v)
}
