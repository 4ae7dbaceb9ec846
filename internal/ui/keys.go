package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the wall.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	ToggleTheme key.Binding
	ToggleMode  key.Binding

	// Columns
	OneColumn    key.Binding
	TwoColumns   key.Binding
	ThreeColumns key.Binding
	FourColumns  key.Binding
	MoreColumns  key.Binding
	FewerColumns key.Binding

	// Manual scrolling
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?", "Toggle help"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Day/night"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space", "Auto/manual"),
		),

		OneColumn: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "One column"),
		),
		TwoColumns: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Two columns"),
		),
		ThreeColumns: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Three columns"),
		),
		FourColumns: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "Four columns"),
		),
		MoreColumns: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "More columns"),
		),
		FewerColumns: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Fewer columns"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.ToggleTheme, k.MoreColumns, k.FewerColumns, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Wall
		{k.ToggleMode, k.ToggleTheme, k.Help, k.Quit},
		// Columns
		{k.OneColumn, k.TwoColumns, k.ThreeColumns, k.FourColumns, k.MoreColumns, k.FewerColumns},
		// Manual scrolling
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
	}
}
