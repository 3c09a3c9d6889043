package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the global keyboard bindings. Table navigation uses the
// bubbles table defaults (j/k, arrows, pgup/pgdown, g/G).
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	SwitchTab  key.Binding
	Logs       key.Binding
	Broadcasts key.Binding
	LoadView   key.Binding
	FocusPane  key.Binding
	Refresh    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SwitchTab: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Live/archived"),
		),
		Logs: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "Toggle viewer log"),
		),
		Broadcasts: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to broadcasts"),
		),
		LoadView: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "Load playback view"),
		),
		FocusPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus table/detail"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload view"),
		),
	}
}

// bindings returns the bindings in help order.
func (k keyMap) bindings() []key.Binding {
	return []key.Binding{
		k.LoadView, k.Refresh, k.SwitchTab, k.FocusPane,
		k.Logs, k.Broadcasts, k.CycleTheme, k.Help, k.Quit,
	}
}
