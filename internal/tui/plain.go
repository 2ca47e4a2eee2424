package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderPage writes the current page of m without running the interactive
// program: a table of the visible rows followed by the status label. Styled
// output adds borders and colors; plain output is tab separated.
func RenderPage(w io.Writer, m PagerModel, mode OutputMode) error {
	visible := m.visibleRows()

	if mode == OutputModePlain {
		return renderPlainPage(w, m, visible)
	}

	headers := make([]string, 0, len(m.columns))
	headers = append(headers, m.columns...)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(visible...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, LabelStyle.Render(m.surface.label))
	return err
}

func renderPlainPage(w io.Writer, m PagerModel, visible [][]string) error {
	var b strings.Builder
	if len(m.columns) > 0 {
		b.WriteString(strings.Join(m.columns, "\t"))
		b.WriteByte('\n')
	}
	for _, r := range visible {
		b.WriteString(strings.Join(r, "\t"))
		b.WriteByte('\n')
	}
	b.WriteString(m.surface.label)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}
