package parser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mfeller/bergfex-snow/internal/logger"
	"github.com/mfeller/bergfex-snow/internal/normalize"
	"github.com/mfeller/bergfex-snow/internal/report"
)

// Placeholder the site renders for "no data" in numeric and text cells.
const noDataMarker = "-"

// ParseOverview extracts one OverviewRecord per resort row from a country
// overview page. The returned map is keyed by the resort's URL path, taken
// from the hyperlink in each row's first cell.
//
// A missing snow table yields an empty map together with ErrStructureNotFound.
// Malformed rows are skipped; failures in individual fields never abort the
// row or the page.
func ParseOverview(html string) (map[string]report.OverviewRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	results := make(map[string]report.OverviewRecord)

	table := doc.Find("table.snow").First()
	if table.Length() == 0 {
		logger.Warn("overview data table with class 'snow' not found", nil)
		return results, ErrStructureNotFound
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 { // header row
			return
		}

		cols := row.Find("td")
		if cols.Length() < 6 {
			logger.IncrCounter("overview.rows_skipped")
			return
		}

		// The hyperlink target is the record's key; rows without one are
		// navigation or spacer rows.
		path, ok := cols.Eq(0).Find("a").First().Attr("href")
		if !ok || path == "" {
			logger.IncrCounter("overview.rows_skipped")
			return
		}

		var rec report.OverviewRecord
		rec.SnowValleyCm = dataValueNumber(cols.Eq(1), "snow_valley")
		rec.SnowMountainCm = dataValueNumber(cols.Eq(2), "snow_mountain")
		rec.NewSnowCm = dataValueNumber(cols.Eq(3), "new_snow")

		liftsCell := cols.Eq(4)
		rec.Status = liftStatus(liftsCell)
		rec.LiftsOpenCount, rec.LiftsTotalCount = liftCounts(liftsCell.Text())

		rec.LastUpdate = lastUpdate(cols.Eq(5))

		results[path] = rec
	})

	return results, nil
}

// dataValueNumber reads a numeric cell's machine-readable data-value
// attribute, avoiding the locale ambiguity of the rendered text. A dash or
// empty value means "no measurement" and yields nil so the field is omitted.
func dataValueNumber(cell *goquery.Selection, name string) *float64 {
	raw, ok := cell.Attr("data-value")
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == noDataMarker {
		return nil
	}
	n, ok := normalize.Number(raw)
	if !ok {
		logger.Debug("unparseable snow value", logger.Fields{"field": name, "raw": raw})
		logger.IncrCounter("overview.fields_dropped")
		return nil
	}
	return &n
}

// liftStatus reads the open/closed marker nested in the lifts cell.
// An unrecognized marker class maps to Unknown; a missing marker element
// leaves the status unset.
func liftStatus(cell *goquery.Selection) report.Status {
	marker := cell.Find("div.icon-status").First()
	if marker.Length() == 0 {
		return ""
	}
	switch {
	case marker.HasClass("icon-status1"):
		return report.StatusOpen
	case marker.HasClass("icon-status0"):
		return report.StatusClosed
	default:
		return report.StatusUnknown
	}
}

// liftCounts parses the lifts cell's visible text. "open/total" yields both
// counts with each side recovered independently; a bare integer yields only
// the open count; anything else yields neither.
func liftCounts(text string) (open, total *int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	if strings.Contains(text, "/") {
		parts := strings.Split(text, "/")
		if len(parts) != 2 {
			logger.Debug("unrecognized lifts cell text", logger.Fields{"raw": text})
			return nil, nil
		}
		if n, ok := normalize.Integer(parts[0]); ok {
			open = &n
		} else {
			logger.Debug("unparseable lifts open count", logger.Fields{"raw": parts[0]})
			logger.IncrCounter("overview.fields_dropped")
		}
		if n, ok := normalize.Integer(parts[1]); ok {
			total = &n
		} else {
			logger.Debug("unparseable lifts total count", logger.Fields{"raw": parts[1]})
			logger.IncrCounter("overview.fields_dropped")
		}
		return open, total
	}

	if n, ok := normalize.Integer(text); ok {
		return &n, nil
	}

	logger.Debug("unrecognized lifts cell text", logger.Fields{"raw": text})
	return nil, nil
}

// lastUpdate prefers the machine-readable timestamp attribute on the final
// cell and falls back to its trimmed visible text.
func lastUpdate(cell *goquery.Selection) string {
	value, ok := cell.Attr("data-value")
	if !ok {
		value = cell.Text()
	}
	value = strings.TrimSpace(value)
	if value == noDataMarker {
		return ""
	}
	return value
}
