package viz

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Menu
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Unselect key.Binding

	// Visualization
	Forward  key.Binding
	Backward key.Binding
	Toggle   key.Binding
	Latest   key.Binding
	Back     key.Binding
	Chart    key.Binding

	// Global
	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Unselect: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "unselect"),
		),

		Forward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "step forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "step back (paused)"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/pause"),
		),
		Latest: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "jump to latest"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Chart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle chart"),
		),

		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Forward, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Unselect},
		{k.Toggle, k.Forward, k.Backward, k.Latest},
		{k.Back, k.Chart, k.Theme},
		{k.Help, k.Quit},
	}
}

// menuHelp is the binding set shown under the algorithm list.
type menuHelp struct{ k keyMap }

func (m menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{m.k.Up, m.k.Down, m.k.Select, m.k.Theme, m.k.Quit}
}

func (m menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}
