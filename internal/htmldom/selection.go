package htmldom

import (
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/rshade/tablepager/internal/pager"
)

// Parse reads an HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return doc, nil
}

// Render writes the whole document, including the generated control groups.
func Render(w io.Writer, doc *goquery.Document) error {
	for _, n := range doc.Nodes {
		if err := html.Render(w, n); err != nil {
			return fmt.Errorf("rendering html: %w", err)
		}
	}
	return nil
}

// Selection is a set of host elements of one document, each of which may
// carry its own pager.
type Selection struct {
	hosts    *goquery.Selection
	surfaces []*hostSurface
	pagers   []*pager.Paginator
}

// Select matches hosts with a CSS selector.
func Select(doc *goquery.Document, selector string) *Selection {
	return &Selection{hosts: doc.Find(selector)}
}

// Len returns the number of hosts.
func (s *Selection) Len() int {
	return s.hosts.Length()
}

// SimplePagination attaches an independent pager to every host and returns
// the same selection so calls can be chained. An invalid configuration is
// reported before any host is modified.
func (s *Selection) SimplePagination(ctx context.Context, cfg pager.Config) (*Selection, error) {
	if err := cfg.Validate(); err != nil {
		return s, err
	}

	surfaces := make([]*hostSurface, 0, s.hosts.Length())
	pagers := make([]*pager.Paginator, 0, s.hosts.Length())
	mounted := make(map[*html.Node]bool, s.hosts.Length())

	for i, host := range s.hosts.Nodes {
		surface := newHostSurface(host, mounted)
		p, err := pager.New(ctx, surface, cfg)
		if err != nil {
			return s, fmt.Errorf("host %d: %w", i, err)
		}
		surfaces = append(surfaces, surface)
		pagers = append(pagers, p)
	}

	s.surfaces = surfaces
	s.pagers = pagers
	return s, nil
}

// Pagers returns the pagers in host order. Empty before SimplePagination.
func (s *Selection) Pagers() []*pager.Paginator {
	return s.pagers
}

// Click activates control on the pager of host index, as a user clicking the
// generated button would.
func (s *Selection) Click(index int, control pager.Control) error {
	if index < 0 || index >= len(s.surfaces) {
		return fmt.Errorf("no pager at host index %d (have %d)", index, len(s.surfaces))
	}
	s.surfaces[index].click(control)
	return nil
}

// ClickAll activates control on every pager of the selection.
func (s *Selection) ClickAll(control pager.Control) {
	for _, surface := range s.surfaces {
		surface.click(control)
	}
}

// HostName describes host i for reports: "#id" when the host has an id,
// otherwise its tag and position in the selection.
func (s *Selection) HostName(i int) string {
	host := s.hosts.Eq(i)
	if id, ok := host.Attr("id"); ok && id != "" {
		return "#" + id
	}
	return fmt.Sprintf("%s[%d]", goquery.NodeName(host), i)
}
