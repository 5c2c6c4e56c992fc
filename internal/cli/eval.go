package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/report"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

type evalOptions struct {
	Format string
	Pretty bool
	Filter string
}

func newEvalCmd() *cobra.Command {
	opt := evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Apply a command script to a fresh list and print the view",
		Long: strings.TrimSpace(`
Reads one command per line from file (or stdin when omitted or "-"):

  add <title...>                       Add a new item
  toggle <id>                          Toggle an item (unknown ids are ignored)
  filter <all|completed|uncompleted>   Change the filter
  print                                Print the current view

Blank lines and lines starting with # are ignored. The final view is printed
when the script ends, unless its last command was print.`),
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return exitError{code: 1, err: fmt.Errorf("open script: %w", err)}
				}
				defer f.Close()
				in = f
			}
			return runEval(cmd.OutOrStdout(), in, opt)
		},
	}
	cmd.Flags().StringVar(&opt.Format, "format", envOr("TODO_FORMAT", "text"), "Output format (text|json|markdown)")
	cmd.Flags().BoolVar(&opt.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&opt.Filter, "filter", "", "Filter applied to printed views (overrides the script's filter)")
	return cmd
}

func runEval(out io.Writer, in io.Reader, opt evalOptions) error {
	emit, err := emitter(out, opt)
	if err != nil {
		return err
	}
	var override *model.Filter
	if opt.Filter != "" {
		f, err := model.ParseFilter(opt.Filter)
		if err != nil {
			return usageErr("--filter: %w", err)
		}
		override = &f
	}

	s := store.New()
	return runScript(in, s, func(v derive.View) error {
		if override != nil && v.Filter != *override {
			// Re-derive rather than mutate the store's own selection.
			v = derive.Compute(s.Items(), *override)
		}
		return emit(v)
	})
}

func emitter(out io.Writer, opt evalOptions) (func(derive.View) error, error) {
	switch strings.ToLower(opt.Format) {
	case "text", "":
		return func(v derive.View) error {
			_, err := fmt.Fprintln(out, ui.PanelString(ui.ViewLines(v)))
			return err
		}, nil
	case "json":
		return func(v derive.View) error {
			return report.JSON(out, v, opt.Pretty)
		}, nil
	case "markdown", "md":
		style := ""
		if ui.Plain() {
			style = "notty"
		}
		w, _ := ui.Size()
		return func(v derive.View) error {
			s, err := report.RenderMarkdown(report.Markdown(v), w, style)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, s)
			return err
		}, nil
	}
	return nil, usageErr("unknown format %q (want text, json or markdown)", opt.Format)
}
