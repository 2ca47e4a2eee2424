package htmldom_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/tablepager/internal/htmldom"
	"github.com/rshade/tablepager/internal/pager"
)

// tableHTML builds a page with one table of n body rows.
func tableHTML(id string, n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<table id=%q><thead><tr><th>#</th></tr></thead><tbody>`, id)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "<tr><td>%d</td></tr>", i)
	}
	b.WriteString("</tbody></table>")
	return b.String()
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := htmldom.Parse(strings.NewReader("<html><body>" + body + "</body></html>"))
	require.NoError(t, err)
	return doc
}

// visibleCells returns the text of every body row not hidden by the pager.
func visibleCells(sel *goquery.Selection) []string {
	var out []string
	sel.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		if !htmldom.IsHidden(row) {
			out = append(out, strings.TrimSpace(row.Text()))
		}
	})
	return out
}

func TestSimplePagination_MarkupContract(t *testing.T) {
	doc := parse(t, tableHTML("orders", 12))

	sel, err := htmldom.Select(doc, "#orders").SimplePagination(context.Background(),
		pager.NewConfig(pager.WithContainer("pager", "text-center")))
	require.NoError(t, err)
	require.Len(t, sel.Pagers(), 1)

	container := doc.Find("#orders").Next()
	assert.Equal(t, "pager", container.AttrOr("id", ""))
	assert.Equal(t, "text-center", container.AttrOr("class", ""))
	assert.False(t, htmldom.IsHidden(container))

	children := container.Children()
	require.Equal(t, 5, children.Length())

	wantTags := []string{"button", "button", "span", "button", "button"}
	wantText := []string{"First", "Prev", "1 to 5 of 12 entries", "Next", "Last"}
	wantAction := []string{"first", "previous", "", "next", "last"}
	children.Each(func(i int, child *goquery.Selection) {
		assert.Equal(t, wantTags[i], goquery.NodeName(child))
		assert.Equal(t, wantText[i], child.Text())
		assert.Equal(t, wantAction[i], child.AttrOr(htmldom.ActionAttr, ""))
		if wantTags[i] == "button" {
			assert.Equal(t, "btn btn-default", child.AttrOr("class", ""))
		}
	})

	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleCells(doc.Selection))
	assert.False(t, htmldom.IsHidden(doc.Find("thead tr")), "header rows are not paged")
}

func TestSimplePagination_ClickNavigation(t *testing.T) {
	doc := parse(t, tableHTML("orders", 12))
	sel, err := htmldom.Select(doc, "table").SimplePagination(context.Background(), pager.DefaultConfig())
	require.NoError(t, err)

	require.NoError(t, sel.Click(0, pager.ControlNext))
	require.NoError(t, sel.Click(0, pager.ControlNext))

	assert.Equal(t, []string{"11", "12"}, visibleCells(doc.Selection))
	assert.Equal(t, "11 to 12 of 12 entries", doc.Find("#pager span").Text())

	require.NoError(t, sel.Click(0, pager.ControlFirst))
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleCells(doc.Selection))

	require.NoError(t, sel.Click(0, pager.ControlLast))
	assert.Equal(t, 3, sel.Pagers()[0].CurrentPage())

	require.Error(t, sel.Click(3, pager.ControlNext))
}

func TestSimplePagination_SinglePageHidesControls(t *testing.T) {
	doc := parse(t, tableHTML("small", 3))
	_, err := htmldom.Select(doc, "#small").SimplePagination(context.Background(), pager.DefaultConfig())
	require.NoError(t, err)

	container := doc.Find("#pager")
	require.Equal(t, 1, container.Length())
	assert.True(t, htmldom.IsHidden(container))
	assert.Equal(t, "1 to 3 of 3 entries", container.Find("span").Text())
	assert.Equal(t, []string{"1", "2", "3"}, visibleCells(doc.Selection))
}

func TestSimplePagination_HostWithoutRows(t *testing.T) {
	doc := parse(t, `<div id="host"><p>nothing here</p></div>`)
	sel, err := htmldom.Select(doc, "#host").SimplePagination(context.Background(), pager.DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, 0, sel.Pagers()[0].RowCount())
	assert.True(t, htmldom.IsHidden(doc.Find("#pager")))
	assert.Equal(t, "1 to 0 of 0 entries", doc.Find("#pager span").Text())
}

func TestSimplePagination_ReinitializeKeepsSingleControlGroup(t *testing.T) {
	doc := parse(t, tableHTML("orders", 12))
	ctx := context.Background()

	_, err := htmldom.Select(doc, "#orders").SimplePagination(ctx, pager.DefaultConfig())
	require.NoError(t, err)
	_, err = htmldom.Select(doc, "#orders").SimplePagination(ctx, pager.NewConfig(pager.WithPerPage(4)))
	require.NoError(t, err)

	assert.Equal(t, 1, doc.Find("#pager").Length())
	assert.Equal(t, "1 to 4 of 12 entries", doc.Find("#pager span").Text())
	assert.Equal(t, []string{"1", "2", "3", "4"}, visibleCells(doc.Selection))
}

func TestSimplePagination_MultipleHostsAreIndependent(t *testing.T) {
	doc := parse(t,
		`<section>`+tableHTML("a", 12)+`</section>`+
			`<section>`+tableHTML("b", 7)+`</section>`)

	sel, err := htmldom.Select(doc, "table").SimplePagination(context.Background(),
		pager.NewConfig(pager.WithPerPage(5)))
	require.NoError(t, err)
	require.Equal(t, 2, sel.Len())

	require.NoError(t, sel.Click(1, pager.ControlNext))

	assert.Equal(t, 1, sel.Pagers()[0].CurrentPage())
	assert.Equal(t, 2, sel.Pagers()[1].CurrentPage())
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, visibleCells(doc.Find("#a")))
	assert.Equal(t, []string{"6", "7"}, visibleCells(doc.Find("#b")))
	assert.Equal(t, 2, doc.Find("[id=pager]").Length())

	sel.ClickAll(pager.ControlLast)
	assert.Equal(t, 3, sel.Pagers()[0].CurrentPage())
	assert.Equal(t, 2, sel.Pagers()[1].CurrentPage())
}

func TestSimplePagination_SiblingHostsKeepTheirControls(t *testing.T) {
	doc := parse(t, tableHTML("a", 12)+tableHTML("b", 7))
	ctx := context.Background()

	sel, err := htmldom.Select(doc, "table").SimplePagination(ctx, pager.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 2, sel.Len())

	assert.Equal(t, 2, doc.Find("[id=pager]").Length())
	assert.Equal(t, "pager", doc.Find("#a").Next().AttrOr("id", ""))
	assert.Equal(t, "pager", doc.Find("#b").Next().AttrOr("id", ""))
	assert.Equal(t, "1 to 5 of 12 entries", doc.Find("#a").Next().Find("span").Text())
	assert.Equal(t, "1 to 5 of 7 entries", doc.Find("#b").Next().Find("span").Text())

	require.NoError(t, sel.Click(0, pager.ControlNext))
	assert.Equal(t, []string{"6", "7", "8", "9", "10"}, visibleCells(doc.Find("#a")))
	assert.Equal(t, "6 to 10 of 12 entries", doc.Find("#a").Next().Find("span").Text())

	// Applying again replaces both groups instead of stacking them.
	_, err = htmldom.Select(doc, "table").SimplePagination(ctx, pager.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("[id=pager]").Length())
	assert.Equal(t, "1 to 5 of 12 entries", doc.Find("#a").Next().Find("span").Text())
}

func TestSimplePagination_InvalidConfigurationLeavesDocumentUntouched(t *testing.T) {
	doc := parse(t, tableHTML("orders", 12))
	before, err := doc.Html()
	require.NoError(t, err)

	sel, err := htmldom.Select(doc, "#orders").SimplePagination(context.Background(),
		pager.NewConfig(pager.WithPerPage(0)))
	require.ErrorIs(t, err, pager.ErrInvalidConfiguration)
	assert.NotNil(t, sel, "selection is returned for chaining even on error")

	after, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSimplePagination_PreservesOtherStyles(t *testing.T) {
	doc := parse(t, `<table id="t"><tbody>`+
		`<tr style="color: red"><td>1</td></tr>`+
		`<tr><td>2</td></tr><tr><td>3</td></tr></tbody></table>`)

	sel, err := htmldom.Select(doc, "#t").SimplePagination(context.Background(),
		pager.NewConfig(pager.WithPerPage(1)))
	require.NoError(t, err)

	first := doc.Find("tbody tr").First()
	assert.Equal(t, "color: red", first.AttrOr("style", ""))

	require.NoError(t, sel.Click(0, pager.ControlNext))
	assert.Equal(t, "color: red; display: none", first.AttrOr("style", ""))

	require.NoError(t, sel.Click(0, pager.ControlPrevious))
	assert.Equal(t, "color: red", first.AttrOr("style", ""))
}

func TestRender(t *testing.T) {
	doc := parse(t, tableHTML("orders", 6))
	_, err := htmldom.Select(doc, "#orders").SimplePagination(context.Background(), pager.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, htmldom.Render(&buf, doc))

	out := buf.String()
	assert.Contains(t, out, `</table><div id="pager">`)
	assert.Contains(t, out, `<button data-pager-action="first" class="btn btn-default">First</button>`)
	assert.Contains(t, out, `<span>1 to 5 of 6 entries</span>`)
	assert.Contains(t, out, `<tr style="display: none"><td>6</td></tr>`)
}

func TestSelection_HostName(t *testing.T) {
	doc := parse(t, tableHTML("orders", 3)+`<table class="x"><tbody></tbody></table>`)
	sel := htmldom.Select(doc, "table")

	assert.Equal(t, "#orders", sel.HostName(0))
	assert.Equal(t, "table[1]", sel.HostName(1))
}
