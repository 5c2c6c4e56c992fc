package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ProgressBar renders a bar of the given width followed by the percentage.
// frac is clamped to [0,1].
func ProgressBar(frac float64, width int) string {
	if width < 5 {
		width = 5
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	t := Current()
	filled := int(frac * float64(width))
	bar := strings.Repeat(t.BarFull, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %3d%%", bar, Percent(frac))
}

// Percent converts a completion fraction to a whole percentage, rounding down.
func Percent(frac float64) int {
	return int(frac*100 + 1e-9)
}

// Truncate cuts s to max visible cells, keeping ANSI sequences intact.
func Truncate(s string, max int) string {
	if ansi.StringWidth(s) <= max {
		return s
	}
	return ansi.Truncate(s, max, "…")
}

// PanelString frames lines with the theme border.
func PanelString(lines []string) string {
	t := Current()
	maxw := 0
	for _, ln := range lines {
		if w := ansi.StringWidth(ln); w > maxw {
			maxw = w
		}
	}
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Width(maxw + 2)
	return border.Render(strings.Join(lines, "\n"))
}

// Panel draws a framed box using the current theme.
func Panel(lines []string) {
	fmt.Fprintln(stdout, PanelString(lines))
}
