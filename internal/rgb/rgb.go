package rgb

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// hexLen is the length of a "#RRGGBB" string.
const hexLen = 7

var ErrTooShort = errors.New("hex color too short")

// Color is a 24-bit truecolor value.
type Color struct {
	r, g, b uint8
}

var _ color.Color = Color{}

func New(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b}
}

func (c Color) R() uint8 { return c.r }
func (c Color) G() uint8 { return c.g }
func (c Color) B() uint8 { return c.b }

// RGBA implements color.Color so the value can be handed to lipgloss styles.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.r, G: c.g, B: c.b, A: 0xff}.RGBA()
}

// Hex returns the color as lowercase "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// ParseHex reads a "#RRGGBB" string. Each channel is parsed independently and
// falls back to 0 when its two digits are not valid hex. Strings shorter than
// seven bytes return ErrTooShort; anything past the seventh byte is ignored.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if len(s) < hexLen {
		return Color{}, fmt.Errorf("%w: %q", ErrTooShort, s)
	}
	return Color{
		r: channel(s[1:3]),
		g: channel(s[3:5]),
		b: channel(s[5:7]),
	}, nil
}

func channel(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}
