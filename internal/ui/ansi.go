package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetOutput redirects OK/Fail/Panel. Tests use it to capture output.
func SetOutput(out, errOut io.Writer) {
	stdout, stderr = out, errOut
}

// plain is true when the last colour decision dropped all styling.
var plain bool

// SetColorForcing picks the Lip Gloss colour profile for plain output.
// disable wins over force; NO_COLOR behaves like disable.
func SetColorForcing(force, disable bool) {
	switch {
	case disable || strings.TrimSpace(os.Getenv("NO_COLOR")) != "":
		setProfile(termenv.Ascii)
	case force:
		setProfile(termenv.ANSI256)
	case !IsTTY():
		setProfile(termenv.Ascii)
	default:
		setProfile(termenv.EnvColorProfile())
	}
}

func setProfile(p termenv.Profile) {
	lipgloss.SetColorProfile(p)
	plain = p == termenv.Ascii
}

// Plain reports whether output is uncoloured, so other renderers
// (Markdown) can follow the same decision.
func Plain() bool { return plain }

func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Size returns the terminal size, or 80x24 when stdout is not a terminal.
func Size() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

func OK(msg string) {
	fmt.Fprintln(stdout, current.Success.Render(current.SymDone+" "+msg))
}

func Fail(msg string) {
	fmt.Fprintln(stderr, current.Error.Render(symCross+" "+msg))
}

// Hint prints a muted follow-up line under a failure.
func Hint(msg string) {
	fmt.Fprintln(stderr, current.Muted.Render(msg))
}

const symCross = "✖"
