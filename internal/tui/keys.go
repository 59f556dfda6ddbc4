package tui

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Move   key.Binding
	Choose key.Binding
	Submit key.Binding
	Retry  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Move:   key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move")),
		Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry load"), key.WithDisabled()),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Move, k.Choose, k.Submit, k.Retry, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Move},
		{k.Choose, k.Submit},
		{k.Retry, k.Quit},
	}
}
