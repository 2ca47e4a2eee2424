package pager

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// PageCount returns ceil(rowCount / perPage). It returns 0 when there are no
// rows or perPage is not positive.
func PageCount(rowCount, perPage int) int {
	if rowCount <= 0 || perPage <= 0 {
		return 0
	}
	return (rowCount + perPage - 1) / perPage
}

// PageRange returns the 1-indexed inclusive rank range of the rows shown on
// page. to < from means the range is empty (no rows).
func PageRange(page, perPage, rowCount int) (from, to int) { //nolint:nonamedreturns // from/to document the pair.
	from = (page-1)*perPage + 1
	to = min(from+perPage-1, rowCount)
	return from, to
}

// StatusLabel formats the status label text.
func StatusLabel(from, to, rowCount int) string {
	return strconv.Itoa(from) + " to " + strconv.Itoa(to) + " of " + strconv.Itoa(rowCount) + " entries"
}

// Paginator owns the page state of one host and drives its Surface.
// It is not safe for concurrent use; surfaces deliver activations from a
// single event loop.
type Paginator struct {
	cfg     Config
	surface Surface
	logger  zerolog.Logger

	rowCount    int
	pageCount   int
	currentPage int
}

var _ Handler = (*Paginator)(nil)

// New initializes a Paginator on surface: it removes a previous control group
// with the same identifier, snapshots the rows, mounts fresh controls and
// renders the initial page. The logger is taken from ctx (zerolog.Ctx).
func New(ctx context.Context, surface Surface, cfg Config) (*Paginator, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Paginator{
		cfg:     cfg,
		surface: surface,
		logger: zerolog.Ctx(ctx).With().
			Str("component", "pager").
			Str("container_id", cfg.ContainerID).
			Logger(),
	}

	surface.RemoveControls(cfg.ContainerID)

	p.rowCount = max(surface.SnapshotRows(), 0)
	p.pageCount = PageCount(p.rowCount, cfg.PerPage)
	p.currentPage = p.clamp(cfg.CurrentPage)

	if err := surface.MountControls(cfg.ControlGroup(), p); err != nil {
		return nil, fmt.Errorf("mounting pager controls %q: %w", cfg.ContainerID, err)
	}

	p.logger.Debug().
		Int("rows", p.rowCount).
		Int("per_page", cfg.PerPage).
		Int("pages", p.pageCount).
		Int("page", p.currentPage).
		Msg("pager initialized")

	p.Render()
	return p, nil
}

// Render shows the rows of the current page, hides all others and refreshes
// the label and the control group visibility. It is idempotent.
func (p *Paginator) Render() {
	from, to := p.Range()

	for i := 0; i < p.rowCount; i++ {
		p.surface.SetRowVisible(i, false)
	}
	for i := from - 1; i < to; i++ {
		p.surface.SetRowVisible(i, true)
	}

	p.surface.SetLabel(StatusLabel(from, to, p.rowCount))
	p.surface.SetControlsVisible(p.ControlsVisible())
}

// Activate applies a control to the current page and re-renders.
func (p *Paginator) Activate(control Control) {
	before := p.currentPage

	switch control {
	case ControlFirst:
		p.currentPage = 1
	case ControlPrevious:
		p.currentPage = max(p.currentPage-1, 1)
	case ControlNext:
		p.currentPage = p.clamp(p.currentPage + 1)
	case ControlLast:
		p.currentPage = p.lastPage()
	default:
		p.logger.Warn().Stringer("control", control).Msg("ignoring unknown control")
		return
	}

	p.logger.Debug().
		Stringer("control", control).
		Int("from_page", before).
		Int("to_page", p.currentPage).
		Msg("pager navigated")

	p.Render()
}

// First, Previous, Next and Last are shorthands for Activate.
func (p *Paginator) First()    { p.Activate(ControlFirst) }
func (p *Paginator) Previous() { p.Activate(ControlPrevious) }
func (p *Paginator) Next()     { p.Activate(ControlNext) }
func (p *Paginator) Last()     { p.Activate(ControlLast) }

// GoTo jumps to page, clamped to the valid range, and re-renders.
func (p *Paginator) GoTo(page int) {
	p.currentPage = p.clamp(page)
	p.Render()
}

// CurrentPage returns the 1-indexed current page.
func (p *Paginator) CurrentPage() int {
	return p.currentPage
}

// PageCount returns the number of pages of the row snapshot.
func (p *Paginator) PageCount() int {
	return p.pageCount
}

// RowCount returns the size of the row snapshot.
func (p *Paginator) RowCount() int {
	return p.rowCount
}

// PerPage returns the configured page size.
func (p *Paginator) PerPage() int {
	return p.cfg.PerPage
}

// Config returns the configuration the Paginator was built with.
func (p *Paginator) Config() Config {
	return p.cfg
}

// Range returns the 1-indexed inclusive rank range of the visible rows.
func (p *Paginator) Range() (int, int) {
	return PageRange(p.currentPage, p.cfg.PerPage, p.rowCount)
}

// Label returns the current status label text.
func (p *Paginator) Label() string {
	from, to := p.Range()
	return StatusLabel(from, to, p.rowCount)
}

// ControlsVisible reports whether the control group is shown; a single page
// needs no controls.
func (p *Paginator) ControlsVisible() bool {
	return p.rowCount > p.cfg.PerPage
}

func (p *Paginator) lastPage() int {
	return max(p.pageCount, 1)
}

func (p *Paginator) clamp(page int) int {
	return lo.Clamp(page, 1, p.lastPage())
}
