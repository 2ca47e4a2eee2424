package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const helpText = "←/p prev • →/n next • home/f first • end/l last • tab/enter buttons • q quit"

// View renders the current view (Bubble Tea interface).
func (m PagerModel) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	var sections []string
	if m.title != "" {
		sections = append(sections, HeaderStyle.Render(m.title))
	}

	sections = append(sections, m.table.View())

	if m.surface.controlsVisible {
		sections = append(sections, m.renderControls())
		if dots := m.dots.View(); dots != "" {
			sections = append(sections, lipgloss.NewStyle().PaddingLeft(borderPadding).Render(dots))
		}
		sections = append(sections, SubtleStyle.Render(helpText))
	} else {
		sections = append(sections, LabelStyle.Render(m.surface.label))
		sections = append(sections, SubtleStyle.Render("q quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderControls draws first, previous, label, next, last on one line.
func (m PagerModel) renderControls() string {
	buttons := m.surface.buttons()
	parts := make([]string, 0, len(buttons)+1)

	for i, b := range buttons {
		if i == len(m.surface.group.Leading()) {
			parts = append(parts, LabelStyle.Render(m.surface.label))
		}
		style := ButtonStyle
		if i == m.focus {
			style = FocusedButtonStyle
		}
		parts = append(parts, style.Render(b.Text))
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}
