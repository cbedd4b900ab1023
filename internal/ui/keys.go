package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// View switching
	OpenDetail key.Binding
	ViewLogs   key.Binding

	// List actions
	Retry  key.Binding
	Filter key.Binding

	// Navigation
	Up           key.Binding
	Down         key.Binding
	Top          key.Binding
	Bottom       key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// Global
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Toggle pane focus"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back / clear filter"),
		),

		// View switching
		OpenDetail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Entity detail"),
		),
		ViewLogs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Logs view"),
		),

		// List actions
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Retry / refresh"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Filter list"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// helpSections groups bindings for the help overlay.
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{
			title: "Navigation",
			items: helpItems(k.Down, k.Up, k.Top, k.Bottom, k.HalfPageDown, k.HalfPageUp),
		},
		{
			title: "Views",
			items: helpItems(k.OpenDetail, k.ViewLogs, k.Tab, k.Escape),
		},
		{
			title: "List",
			items: helpItems(k.Filter, k.Retry),
		},
		{
			title: "General",
			items: helpItems(k.CycleTheme, k.Help, k.Quit),
		},
	}
}

func helpItems(bindings ...key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, b := range bindings {
		items = append(items, helpItem{key: b.Help().Key, desc: b.Help().Desc})
	}
	return items
}
