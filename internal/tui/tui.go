// Package tui is the interactive front end: a filter selector, a stats
// header, the item list and an inline creator form, all driven by one
// store.Store. Nothing is saved when the program exits.
package tui

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/derive"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

// header rows: stats, progress bar, filter tabs, blank
const headerHeight = 4

type Model struct {
	store *store.Store
	view  derive.View

	list list.Model
	keys keyMap
	help help.Model

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// New builds the UI around s. The store stays owned by the caller.
func New(s *store.Store) Model {
	keys := defaultKeys()

	l := list.New(nil, rowDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.KeyMap.NextPage.SetKeys("right", "l", "pgdown")
	l.KeyMap.Quit.SetKeys("q")
	l.AdditionalShortHelpKeys = keys.listShort
	l.AdditionalFullHelpKeys = keys.listFull

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	w, h := ui.Size()
	m := Model{
		store: s,
		list:  l,
		keys:  keys,
		help:  help.New(),
		ti:    ti,
	}
	m.resize(w, h)
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(s *store.Store) error {
	_, err := tea.NewProgram(New(s), tea.WithAltScreen()).Run()
	return err
}

// refresh re-derives the view from the store and reloads the list.
func (m *Model) refresh() {
	m.view = derive.Snapshot(m.store)
	rows := make([]list.Item, 0, len(m.view.Items))
	for _, it := range m.view.Items {
		rows = append(rows, row{item: it})
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *Model) selectID(id int) {
	for i, it := range m.view.Items {
		if it.ID == id {
			m.list.Select(i)
			return
		}
	}
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - headerHeight - 2
	if m.adding {
		listHeight -= 4
	}
	if listHeight < 3 {
		listHeight = 3
	}
	m.list.SetSize(w-4, listHeight)
	m.help.Width = w - 4
}

func (m *Model) setFilter(f model.Filter) {
	if f == m.store.Filter() {
		return
	}
	m.store.SetFilter(f)
	log.Printf("filter: %s", f)
	m.list.Select(0)
	m.refresh()
}

// Store exposes the backing store, mainly for tests.
func (m Model) Store() *store.Store { return m.store }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(ws.Width, ws.Height)
		return m, nil
	}
	if m.adding {
		return m.updateForm(msg)
	}

	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(k, m.keys.Add):
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize(m.width, m.height)
			return m, m.ti.Focus()
		case key.Matches(k, m.keys.Toggle):
			if r, ok := m.list.SelectedItem().(row); ok {
				m.store.Toggle(r.item.ID)
				log.Printf("toggle: #%d", r.item.ID)
				m.refresh()
			}
			return m, nil
		case key.Matches(k, m.keys.NextFilter):
			m.setFilter(m.store.Filter().Next())
			return m, nil
		case key.Matches(k, m.keys.ShowAll):
			m.setFilter(model.All)
			return m, nil
		case key.Matches(k, m.keys.ShowDone):
			m.setFilter(model.Completed)
			return m, nil
		case key.Matches(k, m.keys.ShowOpen):
			m.setFilter(model.Uncompleted)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.Submit):
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.addErr = "Title cannot be empty"
				return m, nil
			}
			it := m.store.Add(text)
			log.Printf("add: #%d %q", it.ID, it.Text)
			m.closeForm()
			m.refresh()
			m.selectID(it.ID)
			return m, nil
		case key.Matches(k, m.keys.Cancel):
			m.closeForm()
			return m, nil
		case k.String() == "ctrl+c":
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) closeForm() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize(m.width, m.height)
}

func (m Model) View() string {
	t := ui.Current()
	header := []string{
		ui.StatsLine(m.view.Stats),
		t.Muted.Render(ui.ProgressBar(m.view.Stats.PercentCompleted, 28)),
		ui.FilterTabs(m.view.Filter),
		"",
	}
	content := strings.Join(header, "\n") + "\n" + m.list.View()

	if m.adding {
		title := t.Accent.Render("Add new item")
		if m.addErr != "" {
			title += " " + t.Error.Render(m.addErr)
		}
		form := lipgloss.NewStyle().
			Border(t.Border).
			BorderForeground(t.BorderColor).
			Padding(0, 1).
			Render(title + "\n" + m.ti.View() + "\n" + m.help.View(formKeys{m.keys}))
		content += "\n" + form
	}

	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(content)
}
