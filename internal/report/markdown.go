package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Markdown renders v as a small document: heading, stats table, task list.
func Markdown(v derive.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Todos (%s)\n\n", v.Filter.Label())

	b.WriteString("| Total | Completed | Uncompleted | Done |\n")
	b.WriteString("|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d%% |\n\n",
		v.Stats.TotalNum, v.Stats.TotalCompletedNum, v.Stats.TotalUncompletedNum,
		ui.Percent(v.Stats.PercentCompleted))

	if len(v.Items) == 0 {
		b.WriteString("_No items._\n")
		return b.String()
	}
	for _, it := range v.Items {
		mark := " "
		if it.Complete {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s _(#%d)_\n", mark, escape(it.Text), it.ID)
	}
	return b.String()
}

// RenderMarkdown formats md for the terminal. style is a glamour style name
// ("dark", "light", "notty", ...); empty selects one from the terminal.
func RenderMarkdown(md string, width int, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

var mdEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`",
	"[", `\[`, "]", `\]`, "|", `\|`, "<", `\<`,
)

func escape(s string) string {
	return mdEscaper.Replace(s)
}
