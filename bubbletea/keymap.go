package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the folded diff viewer.
type KeyMap struct {
	// Scrolling
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Gap and file navigation
	NextGap  key.Binding
	PrevGap  key.Binding
	NextFile key.Binding
	PrevFile key.Binding

	// Fold state
	ToggleGap      key.Binding
	ToggleFileGaps key.Binding
	CollapseFile   key.Binding
	ToggleCompact  key.Binding

	// Export
	CopyFile key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		NextGap: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next gap"),
		),
		PrevGap: key.NewBinding(
			key.WithKeys("N"),
			key.WithHelp("N", "previous gap"),
		),
		NextFile: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next file"),
		),
		PrevFile: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous file"),
		),
		ToggleGap: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter/o", "toggle gap"),
		),
		ToggleFileGaps: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "toggle file gaps"),
		),
		CollapseFile: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "collapse file"),
		),
		ToggleCompact: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "compact width"),
		),
		CopyFile: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy file"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
