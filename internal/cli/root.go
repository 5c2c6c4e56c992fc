package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Version is stamped at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// App carries root flags to subcommands.
type App struct {
	Theme   string
	NoColor bool
	Debug   bool
	LogFile string

	logCloser io.Closer
}

// exitError carries a process exit code (1 runtime error, 2 usage/script error).
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }

func usageErr(format string, a ...any) error {
	return exitError{code: 2, err: fmt.Errorf(format, a...)}
}

// usageArgs marks positional-argument failures (including cobra's
// "unknown command") as usage errors.
func usageArgs(v cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := v(cmd, args); err != nil {
			return usageErr("%w", err)
		}
		return nil
	}
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "An in-memory todo list (TUI + scriptable eval)",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          usageArgs(cobra.NoArgs),
		Example: strings.TrimSpace(`
  # Start the interactive TUI (nothing is saved on quit)
  todo

  # Apply a script to a fresh list and print the result
  printf 'add Buy milk\nadd Walk dog\ntoggle 1\n' | todo eval
  todo eval --format json --filter completed plan.todo
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(store.New())
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageErr("%s: %w", c.CommandPath(), err)
	})

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		ui.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
		ui.SetColorForcing(false, app.NoColor)
		ui.SetTheme(app.Theme)
		return app.setupLogging()
	}

	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("TODO_THEME", "classic"), "Colour theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colour output (also honours NO_COLOR)")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", envOr("TODO_DEBUG", "") != "", "Write a debug log")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("TODO_LOG_FILE", "debug.log"), "Debug log path (with --debug)")

	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// setupLogging routes the standard logger to a file when --debug is set and
// discards it otherwise; the TUI owns the terminal, so nothing logs to stderr.
func (app *App) setupLogging() error {
	if !app.Debug {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(app.LogFile, "todo")
	if err != nil {
		return exitError{code: 1, err: fmt.Errorf("open log file: %w", err)}
	}
	app.logCloser = f
	log.Printf("todo %s starting", Version)
	return nil
}

// closeLog flushes the debug log whether or not the command succeeded.
func (app *App) closeLog(runErr error) {
	if app.logCloser == nil {
		return
	}
	if runErr != nil {
		log.Printf("error: %v", runErr)
	}
	log.SetOutput(io.Discard)
	if err := app.logCloser.Close(); err != nil {
		ui.Fail("close log file: " + err.Error())
	}
	app.logCloser = nil
}

// Execute runs the root command and returns the process exit code.
func Execute(args []string) int {
	app := &App{}
	cmd := newRootCmd(app)
	cmd.SetArgs(args)
	err := cmd.Execute()
	app.closeLog(err)
	if err == nil {
		return 0
	}
	ui.Fail(err.Error())
	var ee exitError
	if errors.As(err, &ee) {
		if ee.code == 2 {
			ui.Hint("Run `todo --help` for usage.")
		}
		return ee.code
	}
	var se *ScriptError
	if errors.As(err, &se) {
		return 2
	}
	return 1
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "todo", Version)
			return err
		},
	}
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
