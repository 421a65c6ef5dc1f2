package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mfeller/bergfex-snow/internal/logger"
)

// ListResorts extracts the resort navigation entries from a country overview
// page: a mapping from resort URL path to display name. It is used during
// interactive selection only, never on the polling path.
//
// The listing is advisory, so a page without the table yields an empty map
// rather than an error; callers show "no choices" instead of failing.
func ListResorts(html string) map[string]string {
	resorts := make(map[string]string)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Warn("unreadable directory page", nil)
		return resorts
	}

	table := doc.Find("table.snow").First()
	if table.Length() == 0 {
		logger.Warn("resort directory table with class 'snow' not found", nil)
		return resorts
	}

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 { // header row
			return
		}
		link := row.Find("a").First()
		path, ok := link.Attr("href")
		name := strings.TrimSpace(link.Text())
		if !ok || path == "" || name == "" {
			return
		}
		resorts[path] = name
	})

	return resorts
}
