// Package styles holds the shared color palette for interactive
// prompts and formatted output.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette colors.
var (
	Primary color.Color = lipgloss.Color("62")  // cyan/teal
	Accent  color.Color = lipgloss.Color("212") // pink/magenta
	Success color.Color = lipgloss.Color("82")  // green
	Error   color.Color = lipgloss.Color("196") // red
	Muted   color.Color = lipgloss.Color("240") // dark gray
	Normal  color.Color = lipgloss.Color("252") // light gray
)

// Shared styles built from the palette.
var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
)
