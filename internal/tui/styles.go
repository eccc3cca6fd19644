package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Zuo-Peng/logdye/internal/palette"
)

var (
	accent = lipgloss.Color("6")   // cyan
	muted  = lipgloss.Color("243") // gray
	frame  = lipgloss.Color("237")

	styleHeader = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			PaddingLeft(1)

	styleRenamePrompt = lipgloss.NewStyle().Foreground(accent)
	styleRenameText   = lipgloss.NewStyle().Bold(true)

	styleSpeaker       = lipgloss.NewStyle().Foreground(lipgloss.Color("254"))
	styleSpeakerCursor = lipgloss.NewStyle().Foreground(accent).Bold(true)
	styleSpeakerHidden = lipgloss.NewStyle().Foreground(muted).Strikethrough(true)
	styleDetail        = lipgloss.NewStyle().Foreground(muted)

	styleHelp = lipgloss.NewStyle().Foreground(muted).PaddingLeft(1)
)

// panel frames content with a rounded border; the focused panel is drawn in
// the accent color.
func panel(width, height int, focused bool) lipgloss.Style {
	border := frame
	if focused {
		border = accent
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width).
		Height(height)
}

// swatch is a two-cell block filled with the color.
func swatch(color string) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(palette.Hex(color))).
		Render("  ")
}
