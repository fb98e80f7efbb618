package executor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const bannerRule = "============================================================="

// bannerStyle renders the step banner. The renderer is bound to the
// destination writer, so the banner is plain text unless it goes to a
// color-capable terminal.
func bannerStyle(w io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED")).
		TabWidth(lipgloss.NoTabConversion)
}

// writeBanner prints the banner of a 1-based step. Every banner after the
// first is separated from the previous step's output by two empty lines.
func writeBanner(w io.Writer, step int, command string) {
	if step > 1 {
		fmt.Fprint(w, "\n\n")
	}

	// Lines are rendered one at a time: a multi-line block would be padded
	// to its widest line.
	style := bannerStyle(w)
	for _, line := range []string{
		bannerRule,
		"==",
		fmt.Sprintf("== Step %d : %s", step, command),
		"==",
		bannerRule,
	} {
		fmt.Fprintln(w, style.Render(line))
	}
}
