package tracker

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	mode     key.Binding
	dismiss  key.Binding
	settings key.Binding
	next     key.Binding
	help     key.Binding
	esc      key.Binding
	quit     key.Binding
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.mode, k.settings, k.next, k.help, k.quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.mode, k.dismiss, k.settings},
		{k.next, k.help, k.quit},
	}
}

var defaultKeymap = keymap{
	mode: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "progress/countdown"),
	),
	dismiss: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "dismiss badge"),
	),
	settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "school hours"),
	),
	next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next stage"),
	),
	help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "quit"),
	),
}
