package theme

import "charm.land/lipgloss/v2"

var (
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorBgDark  = lipgloss.Color("#101518") // screen background
	ColorBgLight = lipgloss.Color("#283339") // unfilled part of the timer ring
)
