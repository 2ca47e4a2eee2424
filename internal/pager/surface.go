package pager

import (
	"fmt"
	"strings"
)

//go:generate mockgen -destination mock_surface_test.go -package pager -write_package_comment=false github.com/rshade/tablepager/internal/pager Surface

// Control identifies one of the four navigation buttons.
type Control int

// Controls in markup order (the status label sits between Previous and Next).
const (
	ControlFirst Control = iota
	ControlPrevious
	ControlNext
	ControlLast
)

// String returns the lower-case control name used in markup and flags.
func (c Control) String() string {
	switch c {
	case ControlFirst:
		return "first"
	case ControlPrevious:
		return "previous"
	case ControlNext:
		return "next"
	case ControlLast:
		return "last"
	default:
		return fmt.Sprintf("control(%d)", int(c))
	}
}

// ParseControl maps a control name back to a Control. "prev" is accepted as
// an alias of "previous".
func ParseControl(name string) (Control, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first":
		return ControlFirst, nil
	case "previous", "prev":
		return ControlPrevious, nil
	case "next":
		return ControlNext, nil
	case "last":
		return ControlLast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownControl, name)
	}
}

// Button is one navigation control of a control group.
type Button struct {
	Control Control
	Text    string
	Class   string
}

// ControlGroup is everything a surface needs to build the pager controls.
type ControlGroup struct {
	ID    string
	Class string

	First    Button
	Previous Button
	Next     Button
	Last     Button
}

// Leading returns the buttons placed before the status label.
func (g ControlGroup) Leading() []Button {
	return []Button{g.First, g.Previous}
}

// Trailing returns the buttons placed after the status label.
func (g ControlGroup) Trailing() []Button {
	return []Button{g.Next, g.Last}
}

// Handler receives control activations from a surface.
type Handler interface {
	Activate(control Control)
}

// Surface is the rendering capability a Paginator drives. Implementations own
// the host element and the row handles; the Paginator only ever addresses rows
// by their 0-based position in the snapshot.
type Surface interface {
	// RemoveControls drops any control group with the given identifier that
	// was previously attached next to the host.
	RemoveControls(containerID string)
	// SnapshotRows captures the body rows of the host table and returns how
	// many there are. Called once per Paginator.
	SnapshotRows() int
	// MountControls builds the control group right after the host and routes
	// button activations to handler.
	MountControls(group ControlGroup, handler Handler) error
	// SetRowVisible shows or hides the row at index.
	SetRowVisible(index int, visible bool)
	// SetLabel replaces the status label text.
	SetLabel(text string)
	// SetControlsVisible shows or hides the whole control group.
	SetControlsVisible(visible bool)
}
