package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	search   key.Binding
	category key.Binding
	price    key.Binding
	buy      key.Binding
	copy     key.Binding
	refresh  key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	restock  key.Binding
	delete   key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	search:   key.NewBinding(key.WithKeys("/")),
	category: key.NewBinding(key.WithKeys("c")),
	price:    key.NewBinding(key.WithKeys("p")),
	buy:      key.NewBinding(key.WithKeys("b", "enter")),
	copy:     key.NewBinding(key.WithKeys("y")),
	refresh:  key.NewBinding(key.WithKeys("s")),
	logout:   key.NewBinding(key.WithKeys("l")),
	newItem:  key.NewBinding(key.WithKeys("a")),
	edit:     key.NewBinding(key.WithKeys("e")),
	restock:  key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
