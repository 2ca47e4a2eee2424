package htmldom

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rshade/tablepager/internal/pager"
)

// ActionAttr carries the control name on every generated button.
const ActionAttr = "data-pager-action"

// rowSelector matches the body rows a pager slices into pages.
const rowSelector = "tbody tr"

var errDetachedHost = errors.New("host element has no parent")

// hostSurface implements pager.Surface for a single host element.
type hostSurface struct {
	host *html.Node

	// mounted holds the groups created by the same SimplePagination call.
	// They belong to sibling hosts and survive RemoveControls.
	mounted map[*html.Node]bool

	rows      []*html.Node
	container *html.Node
	label     *html.Node
	handler   pager.Handler
}

var _ pager.Surface = (*hostSurface)(nil)

func newHostSurface(host *html.Node, mounted map[*html.Node]bool) *hostSurface {
	return &hostSurface{host: host, mounted: mounted}
}

// RemoveControls drops every element carrying containerID under the host's
// parent, except groups mounted for sibling hosts in the same call.
func (s *hostSurface) RemoveControls(containerID string) {
	if s.host.Parent == nil {
		return
	}
	goquery.NewDocumentFromNode(s.host.Parent).
		Find("[id]").
		FilterFunction(func(_ int, sel *goquery.Selection) bool {
			return sel.AttrOr("id", "") == containerID && !s.mounted[sel.Get(0)]
		}).
		Remove()
}

func (s *hostSurface) SnapshotRows() int {
	s.rows = goquery.NewDocumentFromNode(s.host).Find(rowSelector).Nodes
	return len(s.rows)
}

func (s *hostSurface) MountControls(group pager.ControlGroup, handler pager.Handler) error {
	if s.host.Parent == nil {
		return errDetachedHost
	}

	container := newElement(atom.Div, attr("id", group.ID))
	if group.Class != "" {
		container.Attr = append(container.Attr, attr("class", group.Class))
	}

	for _, b := range group.Leading() {
		container.AppendChild(newButton(b))
	}
	s.label = newElement(atom.Span)
	container.AppendChild(s.label)
	for _, b := range group.Trailing() {
		container.AppendChild(newButton(b))
	}

	s.host.Parent.InsertBefore(container, s.host.NextSibling)
	s.container = container
	s.handler = handler
	if s.mounted != nil {
		s.mounted[container] = true
	}
	return nil
}

func (s *hostSurface) SetRowVisible(index int, visible bool) {
	if index < 0 || index >= len(s.rows) {
		return
	}
	setHidden(s.rows[index], !visible)
}

func (s *hostSurface) SetLabel(text string) {
	if s.label == nil {
		return
	}
	for c := s.label.FirstChild; c != nil; c = s.label.FirstChild {
		s.label.RemoveChild(c)
	}
	s.label.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (s *hostSurface) SetControlsVisible(visible bool) {
	if s.container == nil {
		return
	}
	setHidden(s.container, !visible)
}

// click dispatches a button activation the way a browser click would.
func (s *hostSurface) click(control pager.Control) {
	if s.handler != nil {
		s.handler.Activate(control)
	}
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func newButton(b pager.Button) *html.Node {
	n := newElement(atom.Button, attr(ActionAttr, b.Control.String()))
	if b.Class != "" {
		n.Attr = append(n.Attr, attr("class", b.Class))
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: b.Text})
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// setHidden adds or removes the inline "display: none" declaration, keeping
// any other declarations of the style attribute.
func setHidden(n *html.Node, hidden bool) {
	idx := -1
	style := ""
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			idx, style = i, a.Val
			break
		}
	}

	decls := make([]string, 0, 2)
	for _, decl := range strings.Split(style, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" || isDisplayNone(decl) {
			continue
		}
		decls = append(decls, decl)
	}
	if hidden {
		decls = append(decls, "display: none")
	}

	switch {
	case len(decls) == 0 && idx >= 0:
		n.Attr = append(n.Attr[:idx], n.Attr[idx+1:]...)
	case len(decls) == 0:
	case idx >= 0:
		n.Attr[idx].Val = strings.Join(decls, "; ")
	default:
		n.Attr = append(n.Attr, attr("style", strings.Join(decls, "; ")))
	}
}

func isDisplayNone(decl string) bool {
	prop, val, ok := strings.Cut(decl, ":")
	return ok &&
		strings.EqualFold(strings.TrimSpace(prop), "display") &&
		strings.EqualFold(strings.TrimSpace(val), "none")
}

// IsHidden reports whether sel's first element carries "display: none".
func IsHidden(sel *goquery.Selection) bool {
	style, ok := sel.Attr("style")
	if !ok {
		return false
	}
	for _, decl := range strings.Split(style, ";") {
		if isDisplayNone(strings.TrimSpace(decl)) {
			return true
		}
	}
	return false
}
