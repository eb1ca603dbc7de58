package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add    key.Binding
	Delete key.Binding
	Focus  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Add:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d/x", "delete")),
		Focus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "input/list")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Focus, k.Quit}
}
