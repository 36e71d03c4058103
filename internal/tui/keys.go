package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Home    key.Binding
	Goto    key.Binding
	Sidebar key.Binding
	Jump    key.Binding
	Export  key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑↓←→", "pan")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		ZoomIn:  key.NewBinding(key.WithKeys("+", "=", "]"), key.WithHelp("+/-", "zoom")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_", "[")),
		Home:    key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "origin")),
		Goto:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "goto")),
		Sidebar: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "slime list")),
		Jump:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "jump")),
		Export:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export png")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Help:    key.NewBinding(key.WithKeys("h", "?"), key.WithHelp("h", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.ZoomIn, k.Goto, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.ZoomIn, k.Home},
		{k.Goto, k.Sidebar, k.Jump},
		{k.Export, k.Cancel, k.Help, k.Quit},
	}
}
