package tracker

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	title     lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
	countdown lipgloss.Style
	badge     lipgloss.Style
	err       lipgloss.Style
	base      lipgloss.Style
}

func newStyle(dark bool) style {
	primary := lipgloss.Color("#6C63FF")
	muted := lipgloss.Color("#666666")
	success := lipgloss.Color("#2ECC71")

	if !dark {
		primary = lipgloss.Color("#3D35C9")
		muted = lipgloss.Color("#444444")
		success = lipgloss.Color("#1E8449")
	}

	return style{
		title:     lipgloss.NewStyle().Bold(true).Foreground(primary),
		secondary: lipgloss.NewStyle().Foreground(muted),
		hint:      lipgloss.NewStyle().Foreground(muted).Italic(true),
		countdown: lipgloss.NewStyle().Bold(true).Foreground(success),
		badge: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F39C12")).
			Padding(0, 1),
		err:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C")),
		base: lipgloss.NewStyle().Padding(1, padding),
	}
}
