package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	next    key.Binding
	prev    key.Binding
	add     key.Binding
	left    key.Binding
	right   key.Binding
	up      key.Binding
	down    key.Binding
	remove  key.Binding
	like    key.Binding
	dislike key.Binding
	quit    key.Binding
	forceQ  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next pane")),
		prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev pane")),
		add:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add song")),
		left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		remove:  key.NewBinding(key.WithKeys("enter", "x", "backspace"), key.WithHelp("enter/x", "remove")),
		like:    key.NewBinding(key.WithKeys("+", "y"), key.WithHelp("+/y", "like")),
		dislike: key.NewBinding(key.WithKeys("-", "n"), key.WithHelp("-/n", "dislike")),
		quit:    key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		forceQ:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.next, k.forceQ}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.add, k.next, k.prev},
		{k.left, k.right, k.remove},
		{k.up, k.down, k.like, k.dislike},
		{k.quit, k.forceQ},
	}
}
