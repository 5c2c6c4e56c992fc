package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done                                lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	BoxUnchecked, BoxChecked string
	SymDone, SymUnchecked    string
	BarFull, BarEmpty        string
}

var current = classic()

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = Theme{
			Name:         "neon",
			Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Border:       lipgloss.RoundedBorder(),
			BorderColor:  lipgloss.Color("13"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymDone: "✔", SymUnchecked: "•",
			BarFull: "█", BarEmpty: "░",
		}
	case "mono":
		setProfile(termenv.Ascii)
		base := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: base.Bold(true), Muted: base, Accent: base,
			Success: base, Error: base, Pending: base,
			Selected:     base.Reverse(true),
			Done:         base,
			Border:       lipgloss.NormalBorder(),
			BorderColor:  lipgloss.NoColor{},
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymDone: "x", SymUnchecked: "-",
			BarFull: "#", BarEmpty: ".",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:         "classic",
		Title:        lipgloss.NewStyle().Bold(true),
		Muted:        lipgloss.NewStyle().Faint(true),
		Accent:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Selected:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Done:         lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Border:       lipgloss.RoundedBorder(),
		BorderColor:  lipgloss.Color("8"),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymUnchecked: "•",
		BarFull: "█", BarEmpty: "░",
	}
}

// Expose what renderers need
func Current() Theme { return current }
