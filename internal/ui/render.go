package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/model"
)

const maxTitle = 80

// StatsLine is the one-line summary shown above every list.
func StatsLine(st model.Stats) string {
	t := Current()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), st.TotalCompletedNum,
		t.Pending.Render(t.SymUnchecked), st.TotalUncompletedNum,
		t.Accent.Render("Total"), st.TotalNum,
	)
}

// FilterTabs renders the filter selector with the active entry highlighted.
func FilterTabs(active model.Filter) string {
	t := Current()
	parts := make([]string, 0, len(model.Filters))
	for i, f := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == active {
			parts = append(parts, t.Selected.Render(" "+label+" "))
		} else {
			parts = append(parts, t.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, t.Muted.Render("│"))
}

// ItemLine renders one row: id, checkbox, text.
func ItemLine(it model.Item) string {
	t := Current()
	box, boxStyle, text := t.BoxUnchecked, t.Muted, it.Text
	if r := []rune(text); len(r) > maxTitle {
		text = string(r[:maxTitle-3]) + "..."
	}
	if it.Complete {
		box, boxStyle = t.BoxChecked, t.Success
		text = t.Done.Render(text)
	}
	return fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("#%-3d", it.ID)), boxStyle.Render(box), text)
}

// ItemLines renders the rows of a filtered list.
func ItemLines(items []model.Item, f model.Filter) []string {
	if len(items) == 0 {
		msg := "no items"
		if f != model.All {
			msg = "no " + f.String() + " items"
		}
		return []string{Current().Muted.Render(msg)}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, ItemLine(it))
	}
	return out
}

// ViewLines lays out a full view: stats, progress, filter tabs, rows.
func ViewLines(v derive.View) []string {
	t := Current()
	lines := []string{
		StatsLine(v.Stats),
		t.Muted.Render(ProgressBar(v.Stats.PercentCompleted, 28)),
		FilterTabs(v.Filter),
		"",
	}
	return append(lines, ItemLines(v.Items, v.Filter)...)
}
