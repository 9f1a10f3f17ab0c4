package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

type Theme struct {
	background color.Color
	foreground color.Color
	accent     color.Color
}

// New builds a theme whose accent is the user's display color.
func New(accent color.Color) Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.accent = accent

	return t
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent)
}

func (t Theme) TextDim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Accent() color.Color {
	return t.accent
}

func (t Theme) Track() color.Color {
	return ColorBgLight
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
