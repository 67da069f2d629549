package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Edit   key.Binding
	Cancel key.Binding
	Ok     key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("j/k", "navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/k", "navigate")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("h/l", "adjust")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("h/l", "adjust")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/open")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/close")),
		Ok:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "ok")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Toggle, k.Edit, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Edit, k.Cancel, k.Ok, k.Quit},
	}
}
