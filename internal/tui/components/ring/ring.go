package ring

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	drawille "github.com/exrook/drawille-go"

	"github.com/garrettladley/tock/internal/tui/theme"
)

const (
	// braille cells are 2 dots wide and 4 dots tall.
	dotsWidth  = 40
	dotsHeight = 40

	cellsWide = dotsWidth / 2
	cellsTall = dotsHeight / 4

	emptyBraille rune = '⠀'
)

// Ring is a circular progress indicator with a short label in its center.
type Ring struct {
	Fraction  float64 // 0..1, clamped
	Label     string
	Color     color.Color
	Track     color.Color
	TextColor color.Color
}

type Option func(*Ring)

func WithTrack(c color.Color) Option {
	return func(r *Ring) { r.Track = c }
}

func WithTextColor(c color.Color) Option {
	return func(r *Ring) { r.TextColor = c }
}

func New(fraction float64, label string, c color.Color, opts ...Option) Ring {
	r := Ring{
		Fraction:  fraction,
		Label:     label,
		Color:     c,
		Track:     theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r Ring) Render() string {
	var (
		canvas = drawille.NewCanvas()
		cx     = dotsWidth / 2
		cy     = dotsHeight / 2
		radius = dotsWidth/2 - 1
	)

	traceArc(&canvas, cx, cy, radius, fullSweep)
	track := cells(&canvas)

	canvas.Clear()
	if f := clamp(r.Fraction); f > 0 {
		traceArc(&canvas, cx, cy, radius, f*fullSweep)
	}
	fill := cells(&canvas)

	arc := paint(track, fill, r.Track, r.Color)

	label := lipgloss.NewStyle().
		Foreground(r.TextColor).
		Bold(true).
		Render(r.Label)
	centered := lipgloss.Place(cellsWide, cellsTall, lipgloss.Center, lipgloss.Center, label)

	return overlay(arc, centered)
}

func clamp(f float64) float64 {
	return min(max(f, 0), 1)
}

// cells returns the canvas as exactly cellsTall lines of cellsWide runes.
func cells(canvas *drawille.Canvas) []string {
	rows := canvas.Rows(0, 0, dotsWidth, dotsHeight)
	lines := make([]string, cellsTall)
	for i := range lines {
		var line []rune
		if i < len(rows) {
			line = []rune(rows[i])
		}
		if len(line) > cellsWide {
			line = line[:cellsWide]
		}
		lines[i] = string(line) + strings.Repeat(" ", cellsWide-len(line))
	}
	return lines
}

// paint merges the track and fill canvases. Cells with fill dots take the
// fill color, cells with only track dots take the track color.
func paint(track, fill []string, trackColor, fillColor color.Color) []string {
	var (
		trackStyle = lipgloss.NewStyle().Foreground(trackColor)
		fillStyle  = lipgloss.NewStyle().Foreground(fillColor)
		out        = make([]string, len(track))
	)

	for i := range track {
		var (
			t = []rune(track[i])
			f = []rune(fill[i])
			b strings.Builder
		)
		for j, tc := range t {
			fc := ' '
			if j < len(f) {
				fc = f[j]
			}
			switch {
			case hasDots(fc):
				b.WriteString(fillStyle.Render(string(merge(tc, fc))))
			case isBraille(tc):
				b.WriteString(trackStyle.Render(string(tc)))
			default:
				b.WriteRune(' ')
			}
		}
		out[i] = b.String()
	}
	return out
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

func hasDots(r rune) bool {
	return isBraille(r) && r != emptyBraille
}

// merge ORs the dot patterns of two braille runes. Non-braille input is
// treated as empty.
func merge(a, b rune) rune {
	var pa, pb rune
	if isBraille(a) {
		pa = a - emptyBraille
	}
	if isBraille(b) {
		pb = b - emptyBraille
	}
	return emptyBraille + (pa | pb)
}

// overlay writes the visible part of each label line over the arc, keeping
// the arc's styling on both sides.
func overlay(arc []string, label string) string {
	labelLines := strings.Split(label, "\n")
	out := make([]string, len(arc))

	for i, line := range arc {
		if i >= len(labelLines) {
			out[i] = line
			continue
		}
		visible := []rune(ansi.Strip(labelLines[i]))
		start, end := -1, -1
		for j, r := range visible {
			if r != ' ' {
				if start == -1 {
					start = j
				}
				end = j + 1
			}
		}
		if start == -1 {
			out[i] = line
			continue
		}

		width := len([]rune(ansi.Strip(line)))
		out[i] = segment(line, 0, min(start, width)) +
			segment(labelLines[i], start, end) +
			segment(line, end, width)
	}
	return strings.Join(out, "\n")
}

// segment returns visible columns [start, end) of a styled string together
// with the escape sequences that precede each kept rune.
func segment(s string, start, end int) string {
	var (
		b       strings.Builder
		pending strings.Builder
		col     int
		inEsc   bool
	)

	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			pending.WriteRune(r)
			continue
		}
		if inEsc {
			pending.WriteRune(r)
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
			continue
		}
		if col >= start && col < end {
			b.WriteString(pending.String())
			b.WriteRune(r)
		}
		pending.Reset()
		col++
	}
	// trailing resets belong to the last rune when the segment runs to the end.
	if start < col && end >= col {
		b.WriteString(pending.String())
	}
	return b.String()
}
