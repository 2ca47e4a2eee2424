package source

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoHost is returned when the selector matches nothing.
var ErrNoHost = errors.New("selector matched no element")

// FromHTML snapshots the first element matching selector. Column titles come
// from "thead th"; rows are the "tbody tr" rows the pager would page through.
// A host without rows yields an empty table, not an error.
func FromHTML(r io.Reader, selector string) (Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("parsing html: %w", err)
	}

	host := doc.Find(selector).First()
	if host.Length() == 0 {
		return Table{}, fmt.Errorf("%w: %q", ErrNoHost, selector)
	}

	t := Table{Name: host.AttrOr("id", selector)}

	host.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		t.Columns = append(t.Columns, cellText(th))
	})

	host.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var row []string
		tr.Children().Each(func(_ int, cell *goquery.Selection) {
			row = append(row, cellText(cell))
		})
		t.Rows = append(t.Rows, row)
	})

	return t, nil
}

// cellText collapses the whitespace of a cell's text.
func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
