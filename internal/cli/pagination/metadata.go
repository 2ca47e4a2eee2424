package pagination

import (
	"github.com/rshade/tablepager/internal/pager"
)

// PaginationMeta is the page state of one pager, as written by
// `render --output json|yaml`.
//
//nolint:revive // PaginationMeta is the canonical name for this exported type.
type PaginationMeta struct {
	Host            string `json:"host,omitempty"   yaml:"host,omitempty"`
	CurrentPage     int    `json:"current_page"     yaml:"current_page"`
	PageSize        int    `json:"page_size"        yaml:"page_size"`
	TotalPages      int    `json:"total_pages"      yaml:"total_pages"`
	TotalItems      int    `json:"total_items"      yaml:"total_items"`
	From            int    `json:"from"             yaml:"from"`
	To              int    `json:"to"               yaml:"to"`
	Label           string `json:"label"            yaml:"label"`
	ControlsVisible bool   `json:"controls_visible" yaml:"controls_visible"`
	HasPrevious     bool   `json:"has_previous"     yaml:"has_previous"`
	HasNext         bool   `json:"has_next"         yaml:"has_next"`
}

// NewPaginationMeta snapshots p.
func NewPaginationMeta(host string, p *pager.Paginator) PaginationMeta {
	from, to := p.Range()
	return PaginationMeta{
		Host:            host,
		CurrentPage:     p.CurrentPage(),
		PageSize:        p.PerPage(),
		TotalPages:      p.PageCount(),
		TotalItems:      p.RowCount(),
		From:            from,
		To:              to,
		Label:           p.Label(),
		ControlsVisible: p.ControlsVisible(),
		HasPrevious:     p.CurrentPage() > 1,
		HasNext:         p.CurrentPage() < p.PageCount(),
	}
}
