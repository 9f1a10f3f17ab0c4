package source

import (
	"fmt"
	"time"
)

// Policy decides when a driver redraws the display.
type Policy uint8

const (
	// RenderAlways redraws on every tick.
	RenderAlways Policy = iota
	// RenderOnChange redraws only when the text differs from the last frame.
	RenderOnChange
)

func (p Policy) String() string {
	switch p {
	case RenderAlways:
		return "always"
	case RenderOnChange:
		return "on_change"
	default:
		return "unknown"
	}
}

// Source produces the display text for each tick.
type Source interface {
	// Next returns the text to show at now. ok is false once the source has
	// nothing more to show.
	Next(now time.Time) (text string, ok bool)
	Policy() Policy
}

// Finisher is implemented by sources that end on their own and announce it.
type Finisher interface {
	FinishMessage() string
}

// FormatSeconds renders s as HH:MM:SS. Hours grow past two digits as needed.
func FormatSeconds(s uint64) string {
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// FormatDuration renders d as HH:MM:SS, dropping sub-second precision.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return FormatSeconds(uint64(d / time.Second))
}
