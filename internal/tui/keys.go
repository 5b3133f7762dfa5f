package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Start      key.Binding
	Stop       key.Binding
	Longer     key.Binding
	Shorter    key.Binding
	Adjust     key.Binding
	Add        key.Binding
	Remove     key.Binding
	NextPeriod key.Binding
	Daily      key.Binding
	Weekly     key.Binding
	Lifetime   key.Binding
	Copy       key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Quit       key.Binding
}

// Bindings active while a prompt is open.
var (
	keySubmit = key.NewBinding(key.WithKeys("enter"))
	keyCancel = key.NewBinding(key.WithKeys("esc"))
)

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("up/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("dn/j", "down"),
	),
	Start: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "start"),
	),
	Stop: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "stop"),
	),
	Longer: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "longer"),
	),
	Shorter: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "shorter"),
	),
	Adjust: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "adjust time"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add subject"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove subject"),
	),
	NextPeriod: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "period"),
	),
	Daily: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "daily"),
	),
	Weekly: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "weekly"),
	),
	Lifetime: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "lifetime"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy summary"),
	),
	ScrollUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "stats up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "stats down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Stop, k.Adjust, k.Longer, k.Shorter, k.NextPeriod, k.Add, k.Remove, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Start, k.Stop, k.Adjust},
		{k.Longer, k.Shorter, k.Add, k.Remove},
		{k.NextPeriod, k.Daily, k.Weekly, k.Lifetime, k.ScrollUp, k.ScrollDown},
		{k.Copy, k.Quit},
	}
}
