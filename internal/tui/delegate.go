package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// row adapts model.Item to bubbles/list.Item.
type row struct{ item model.Item }

func (r row) FilterValue() string { return r.item.Text }

// Custom delegate to control how items render (single line)
type rowDelegate struct{}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	r, ok := li.(row)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	line := prefix + ui.ItemLine(r.item)
	if width := m.Width(); width > 0 {
		line = ui.Truncate(line, width)
	}
	fmt.Fprint(w, line)
}
