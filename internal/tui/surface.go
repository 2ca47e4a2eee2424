package tui

import "github.com/rshade/tablepager/internal/pager"

// termSurface is the terminal rendition of a pager host: it remembers which
// rows are visible and what the control group shows, and the Bubble Tea view
// draws from that state.
type termSurface struct {
	rowCount int

	visible         []bool
	label           string
	controlsVisible bool

	group   pager.ControlGroup
	handler pager.Handler
	mounted bool
}

var _ pager.Surface = (*termSurface)(nil)

func newTermSurface(rowCount int) *termSurface {
	return &termSurface{rowCount: rowCount}
}

func (s *termSurface) RemoveControls(containerID string) {
	if s.mounted && s.group.ID == containerID {
		s.group = pager.ControlGroup{}
		s.handler = nil
		s.mounted = false
		s.controlsVisible = false
	}
}

func (s *termSurface) SnapshotRows() int {
	s.visible = make([]bool, s.rowCount)
	return s.rowCount
}

func (s *termSurface) MountControls(group pager.ControlGroup, handler pager.Handler) error {
	s.group = group
	s.handler = handler
	s.mounted = true
	return nil
}

func (s *termSurface) SetRowVisible(index int, visible bool) {
	if index >= 0 && index < len(s.visible) {
		s.visible[index] = visible
	}
}

func (s *termSurface) SetLabel(text string) {
	s.label = text
}

func (s *termSurface) SetControlsVisible(visible bool) {
	s.controlsVisible = visible
}

// press delivers a button activation to the mounted handler.
func (s *termSurface) press(control pager.Control) {
	if s.mounted && s.handler != nil {
		s.handler.Activate(control)
	}
}

// buttons returns the mounted buttons in markup order.
func (s *termSurface) buttons() []pager.Button {
	if !s.mounted {
		return nil
	}
	return append(s.group.Leading(), s.group.Trailing()...)
}

// visibleIndexes returns the snapshot positions of the visible rows.
func (s *termSurface) visibleIndexes() []int {
	out := make([]int, 0, len(s.visible))
	for i, v := range s.visible {
		if v {
			out = append(out, i)
		}
	}
	return out
}
