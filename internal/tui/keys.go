package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add        key.Binding
	Toggle     key.Binding
	NextFilter key.Binding
	ShowAll    key.Binding
	ShowDone   key.Binding
	ShowOpen   key.Binding
	Quit       key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		NextFilter: key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "filter")),
		ShowAll:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		ShowDone:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "completed")),
		ShowOpen:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "uncompleted")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add item")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) listShort() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextFilter}
}

func (k keyMap) listFull() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.NextFilter, k.ShowAll, k.ShowDone, k.ShowOpen}
}

// formKeys is the help.KeyMap shown under the creator form.
type formKeys struct{ k keyMap }

func (f formKeys) ShortHelp() []key.Binding  { return []key.Binding{f.k.Submit, f.k.Cancel} }
func (f formKeys) FullHelp() [][]key.Binding { return [][]key.Binding{f.ShortHelp()} }
