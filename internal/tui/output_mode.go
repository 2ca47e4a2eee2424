package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a page of rows is presented.
type OutputMode int

const (
	// OutputModePlain prints unstyled text (pipes, files, NO_COLOR).
	OutputModePlain OutputMode = iota
	// OutputModeStyled prints a lipgloss table without interaction (CI).
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea pager.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode the terminal supports.
// forcePlain and noColor come from CLI flags; ciMode disables interaction.
func DetectOutputMode(forcePlain, noColor, ciMode bool) OutputMode {
	if forcePlain || noColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) { //nolint:gosec // Fd fits in int on supported platforms.
		return OutputModePlain
	}
	if ciMode || os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
