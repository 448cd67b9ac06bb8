package portal

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit      key.Binding
	QuitSoft  key.Binding
	PrevTheme key.Binding
	NextTheme key.Binding
	Begin     key.Binding
	PrevStyle key.Binding
	NextStyle key.Binding
	Submit    key.Binding
	Back      key.Binding
	Copy      key.Binding
	Again     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitSoft: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/→", "theme"),
		),
		NextTheme: key.NewBinding(
			key.WithKeys("right", "l"),
		),
		Begin: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "begin journey"),
		),
		PrevStyle: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev style"),
		),
		NextStyle: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next style"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "create magic"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy poetry"),
		),
		Again: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "create another"),
		),
	}
}

// pageKeys adapts a page's bindings to help.KeyMap.
type pageKeys []key.Binding

func (p pageKeys) ShortHelp() []key.Binding {
	return p
}

func (p pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p}
}

func (k keyMap) portal() pageKeys {
	return pageKeys{k.PrevTheme, k.Begin, k.QuitSoft}
}

func (k keyMap) journey() pageKeys {
	return pageKeys{k.NextStyle, k.PrevStyle, k.Submit, k.Back, k.Quit}
}

func (k keyMap) enchantment() pageKeys {
	return pageKeys{k.Copy, k.Again, k.QuitSoft}
}
