package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Pan    key.Binding
	Color  key.Binding
	Create key.Binding
	Stored key.Binding
	Select key.Binding
	Group  key.Binding
	Move   key.Binding
	Save   key.Binding
	Open   key.Binding
	Export key.Binding
	New    key.Binding
	Copy   key.Binding
	Paste  key.Binding
	Help   key.Binding
	Quit   key.Binding
	Accept key.Binding
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up", "K", "shift+up"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down", "J", "shift+down"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("h", "left", "H", "shift+left"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("l", "right", "L", "shift+right"), key.WithHelp("→/l", "right")),
		Pan:    key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "toggle pan")),
		Color:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "choose color")),
		Create: key.NewBinding(key.WithKeys("n"), key.WithHelp("n/1-0", "create patch")),
		Stored: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "select stored patches")),
		Select: key.NewBinding(key.WithKeys("x", " "), key.WithHelp("x/right click", "toggle selection")),
		Group:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "group selected")),
		Move:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m/drag", "move patch")),
		Save:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save project")),
		Open:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open project")),
		Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export image")),
		New:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new design")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy color")),
		Paste:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "patch from clipboard")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Create, k.Move, k.Group, k.Save, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Pan},
		{k.Color, k.Create, k.Paste, k.Copy, k.Move},
		{k.Stored, k.Select, k.Group, k.New},
		{k.Save, k.Open, k.Export, k.Help, k.Quit},
	}
}
