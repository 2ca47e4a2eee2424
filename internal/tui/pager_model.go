package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/tablepager/internal/pager"
)

// Layout constants.
const (
	defaultWidth    = 100
	defaultHeight   = 24
	borderPadding   = 2
	chromeHeight    = 7 // title, footer buttons (3 lines), dots, help
	minTableHeight  = 3
	maxColumnWidth  = 40
	minColumnWidth  = 3
	truncateSuffix  = "…"
	untitledColumn  = "#"
	unfocusedButton = -1
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keySpace    = " "
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
)

// ViewState is the lifecycle state of a PagerModel.
type ViewState int

const (
	// ViewStateList shows the current page.
	ViewStateList ViewState = iota
	// ViewStateQuitting is set once the user asked to leave.
	ViewStateQuitting
)

//nolint:gochecknoglobals // Read-only key table.
var controlKeys = map[string]pager.Control{
	"home":   pager.ControlFirst,
	"f":      pager.ControlFirst,
	"left":   pager.ControlPrevious,
	"pgup":   pager.ControlPrevious,
	"p":      pager.ControlPrevious,
	"right":  pager.ControlNext,
	"pgdown": pager.ControlNext,
	"n":      pager.ControlNext,
	"end":    pager.ControlLast,
	"l":      pager.ControlLast,
}

// PagerModel is the Bubble Tea model of the interactive table pager.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type PagerModel struct {
	state ViewState
	ctx   context.Context
	title string

	columns []string
	rows    [][]string // row snapshot, never mutated

	surface *termSurface
	pager   *pager.Paginator

	table table.Model
	dots  paginator.Model
	focus int // index into surface.buttons(), or unfocusedButton

	width  int
	height int
}

// NewPagerModel snapshots rows and attaches a pager to them. It fails with
// pager.ErrInvalidConfiguration when cfg cannot drive a pager.
func NewPagerModel(
	ctx context.Context,
	title string,
	columns []string,
	rows [][]string,
	cfg pager.Config,
) (PagerModel, error) {
	snapshot := make([][]string, len(rows))
	copy(snapshot, rows)

	surface := newTermSurface(len(snapshot))
	p, err := pager.New(ctx, surface, cfg)
	if err != nil {
		return PagerModel{}, fmt.Errorf("creating table pager: %w", err)
	}

	m := PagerModel{
		state:   ViewStateList,
		ctx:     ctx,
		title:   title,
		columns: columns,
		rows:    snapshot,
		surface: surface,
		pager:   p,
		dots:    newDots(),
		focus:   unfocusedButton,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.rebuildTable()

	zerolog.Ctx(ctx).Debug().
		Str("component", "tui").
		Str("title", title).
		Int("rows", len(snapshot)).
		Msg("pager model created")

	return m, nil
}

func newDots() paginator.Model {
	d := paginator.New()
	d.Type = paginator.Dots
	d.ActiveDot = ActiveDotStyle.Render("•")
	d.InactiveDot = InactiveDotStyle.Render("◦")
	d.KeyMap = paginator.KeyMap{} // navigation goes through the pager controls
	return d
}

// Init initializes the model (Bubble Tea interface).
func (m PagerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if winMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = winMsg.Width
		m.height = winMsg.Height
		m.rebuildTable()
		return m, nil
	}

	if m.state == ViewStateQuitting {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m.handleKeypress(keyMsg)
}

func (m PagerModel) handleKeypress(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := keyMsg.String()

	if control, ok := controlKeys[key]; ok {
		m.press(control)
		return m, nil
	}

	switch key {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keyTab:
		m.cycleFocus(1)
		return m, nil
	case keyShiftTab:
		m.cycleFocus(-1)
		return m, nil
	case keyEnter, keySpace:
		if button, ok := m.focusedButton(); ok {
			m.press(button.Control)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(keyMsg)
		return m, cmd
	}
}

// press activates a control through the mounted control group, the same path
// a click on a rendered button takes. Presses are ignored while the control
// group is hidden.
func (m *PagerModel) press(control pager.Control) {
	if !m.surface.controlsVisible {
		return
	}
	m.surface.press(control)
	m.rebuildTable()
}

func (m *PagerModel) cycleFocus(step int) {
	buttons := m.surface.buttons()
	if len(buttons) == 0 || !m.surface.controlsVisible {
		m.focus = unfocusedButton
		return
	}
	if m.focus == unfocusedButton {
		if step > 0 {
			m.focus = 0
		} else {
			m.focus = len(buttons) - 1
		}
		return
	}
	m.focus = (m.focus + step + len(buttons)) % len(buttons)
}

func (m PagerModel) focusedButton() (pager.Button, bool) {
	buttons := m.surface.buttons()
	if m.focus < 0 || m.focus >= len(buttons) {
		return pager.Button{}, false
	}
	return buttons[m.focus], true
}

// rebuildTable reconstructs the table from the rows the pager left visible.
func (m *PagerModel) rebuildTable() {
	visible := m.visibleRows()
	columns := m.tableColumns(visible)

	rows := make([]table.Row, len(visible))
	for i, r := range visible {
		cells := make(table.Row, len(columns))
		for c := range columns {
			if c < len(r) {
				cells[c] = truncate(r[c], columns[c].Width)
			}
		}
		rows[i] = cells
	}

	height := max(m.height-chromeHeight, minTableHeight)
	height = min(height, max(len(rows), 1)+1)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	m.table = t

	m.dots.TotalPages = m.pager.PageCount()
	m.dots.Page = max(m.pager.CurrentPage()-1, 0)
}

func (m *PagerModel) visibleRows() [][]string {
	idx := m.surface.visibleIndexes()
	out := make([][]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, m.rows[i])
	}
	return out
}

// tableColumns sizes every column to its widest visible cell.
func (m *PagerModel) tableColumns(visible [][]string) []table.Column {
	titles := m.columns
	if len(titles) == 0 {
		width := 0
		for _, r := range m.rows {
			width = max(width, len(r))
		}
		titles = make([]string, width)
		for i := range titles {
			titles[i] = fmt.Sprintf("%s%d", untitledColumn, i+1)
		}
	}

	columns := make([]table.Column, len(titles))
	for i, title := range titles {
		w := len([]rune(title))
		for _, r := range visible {
			if i < len(r) {
				w = max(w, len([]rune(r[i])))
			}
		}
		columns[i] = table.Column{Title: title, Width: min(max(w, minColumnWidth), maxColumnWidth)}
	}
	return columns
}

// truncate shortens s to width runes.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + truncateSuffix
}

// CurrentPage returns the current page of the pager.
func (m PagerModel) CurrentPage() int {
	return m.pager.CurrentPage()
}

// Pager exposes the underlying pager, mostly for callers that want page metadata.
func (m PagerModel) Pager() *pager.Paginator {
	return m.pager
}

// VisibleRows returns the table rows of the current page.
func (m PagerModel) VisibleRows() []table.Row {
	return m.table.Rows()
}

// State returns the lifecycle state.
func (m PagerModel) State() ViewState {
	return m.state
}
