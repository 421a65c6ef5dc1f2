package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/mfeller/bergfex-snow/internal/lang"
	"github.com/mfeller/bergfex-snow/internal/logger"
	"github.com/mfeller/bergfex-snow/internal/normalize"
	"github.com/mfeller/bergfex-snow/internal/report"
)

// Trail distances read like "58,5 km gespurt (sehr gut)": a locale-formatted
// number, an optional km unit, then free-form condition text.
var distancePattern = regexp.MustCompile(`^([-+]?\d+(?:[.,]\d+)?)(?:\s*km\b)?\s*(.*)$`)

// ParseCrossCountry extracts the trail report from a single resort's
// cross-country detail page. Field labels are located through the given
// keyword set, so the same parser handles every supported page language.
// ref resolves the "today" marker in report timestamps; passing a fixed
// reference date makes parsing deterministic.
//
// A page without both the title block and a report block yields
// ErrStructureNotFound. A missing report block alone degrades the result to
// name and status only.
func ParseCrossCountry(html string, kw lang.Keywords, ref time.Time) (report.CrossCountryReport, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return report.CrossCountryReport{}, fmt.Errorf("parsing HTML: %w", err)
	}

	var rep report.CrossCountryReport
	rep.ResortName = resortName(doc)

	// Strategy A: definition-list report. Strategy B: simple card layout,
	// used on pages without the list.
	found := parseReportList(doc, kw, ref, &rep)
	if !found {
		found = parseReportCards(doc, kw, &rep)
	}

	if rep.ResortName == "" && !found {
		logger.Warn("neither title block nor report block found", nil)
		return report.CrossCountryReport{}, ErrStructureNotFound
	}

	// Default to Open unless the page text carries an explicit closure
	// keyword. A page with no status text of either kind therefore reads as
	// open; see the keyword table for the per-language closure markers.
	rep.Status = report.StatusOpen
	if containsFold(doc.Text(), kw.Closed) {
		rep.Status = report.StatusClosed
	}

	return rep, nil
}

// resortName joins the sub-spans of the page's primary heading (category
// label plus proper name) with single spaces.
func resortName(doc *goquery.Document) string {
	heading := doc.Find("h1").First()
	if heading.Length() == 0 {
		return ""
	}

	spans := heading.Find("span")
	if spans.Length() == 0 {
		return normalize.CollapseSpace(heading.Text())
	}

	parts := make([]string, 0, spans.Length())
	spans.Each(func(_ int, span *goquery.Selection) {
		if text := normalize.CollapseSpace(span.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}

// parseReportList walks every definition list on the page and classifies each
// label/value pair against the keyword set. Unmatched labels are ignored.
// Returns whether any label matched.
func parseReportList(doc *goquery.Document, kw lang.Keywords, ref time.Time, rep *report.CrossCountryReport) bool {
	matched := false

	doc.Find("dl dt").Each(func(_ int, dt *goquery.Selection) {
		dd := dt.NextFiltered("dd")
		if dd.Length() == 0 {
			return
		}
		label := dt.Text()

		switch {
		case containsFold(label, kw.Classical):
			matched = true
			if d, cond, ok := distanceAndCondition(dd.Text()); ok {
				rep.ClassicalDistanceKm = &d
				rep.ClassicalCondition = cond
			} else {
				logger.Debug("unparseable classical distance", logger.Fields{"raw": normalize.CollapseSpace(dd.Text())})
				logger.IncrCounter("xc.fields_dropped")
			}
		case containsFold(label, kw.Skating):
			matched = true
			if d, cond, ok := distanceAndCondition(dd.Text()); ok {
				rep.SkatingDistanceKm = &d
				rep.SkatingCondition = cond
			} else {
				logger.Debug("unparseable skating distance", logger.Fields{"raw": normalize.CollapseSpace(dd.Text())})
				logger.IncrCounter("xc.fields_dropped")
			}
		case containsFold(label, kw.TrailReport):
			matched = true
			if t, ok := normalize.ReportTime(dd.Text(), kw.Today, ref); ok {
				rep.LastUpdate = t
			} else {
				logger.Debug("unparseable trail report time", logger.Fields{"raw": normalize.CollapseSpace(dd.Text())})
				logger.IncrCounter("xc.fields_dropped")
			}
		case containsFold(label, kw.Operation):
			matched = true
			if v := normalize.CollapseSpace(dd.Text()); v != "" {
				rep.OperationStatus = v
			}
		}
	})

	return matched
}

// parseReportCards handles the simpler card layout: a large-type numeric
// value with a unit, next to a label naming the trail type.
func parseReportCards(doc *goquery.Document, kw lang.Keywords, rep *report.CrossCountryReport) bool {
	matched := false

	doc.Find(".report-info").Each(func(_ int, card *goquery.Selection) {
		label := card.Find(".report-label").Text()
		raw := card.Find(".report-value .big").First().Text()

		d, ok := normalize.Number(raw)
		if !ok {
			logger.Debug("unparseable report card value", logger.Fields{"raw": strings.TrimSpace(raw)})
			logger.IncrCounter("xc.fields_dropped")
			return
		}

		switch {
		case containsFold(label, kw.Classical):
			matched = true
			rep.ClassicalDistanceKm = &d
		case containsFold(label, kw.Skating):
			matched = true
			rep.SkatingDistanceKm = &d
		}
	})

	return matched
}

// distanceAndCondition splits a value like "58,5 km gespurt (sehr gut)" into
// the normalized distance and the remaining condition text, with fragments
// from nested markup joined by single spaces.
func distanceAndCondition(text string) (float64, string, bool) {
	text = normalize.CollapseSpace(text)
	m := distancePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	d, ok := normalize.Number(m[1])
	if !ok {
		return 0, "", false
	}
	return d, strings.TrimSpace(m[2]), true
}

// containsFold reports whether s contains substr, ignoring case. An empty
// substr never matches.
func containsFold(s, substr string) bool {
	if substr == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
