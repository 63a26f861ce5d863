// Package style holds the lipgloss styles of the terminal renderer
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(14)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	PathStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Italic(true)
)

// Mesh styles
var (
	TypeStyle = lipgloss.NewStyle().
			Foreground(TypeColor).
			Bold(true)

	CurvingStyle = lipgloss.NewStyle().
			Foreground(CurvingColor)

	GeometryStyle = lipgloss.NewStyle().
			Foreground(GeometryColor)
)

// Label renders a fixed-width field label
func Label(s string) string {
	return LabelStyle.Render(s)
}

// Curving renders a curving, or a muted dash when there is none
func Curving(c string) string {
	if c == "" {
		return MutedStyle.Render("-")
	}
	return CurvingStyle.Render(c)
}
