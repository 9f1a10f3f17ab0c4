package mode

import (
	"errors"
	"fmt"
	"strings"
)

type Mode uint8

const (
	Clock Mode = iota + 1
	Timer
	Stopwatch
)

var ErrUnknown = errors.New("unknown mode")

// All lists the modes in menu order.
var All = []Mode{Clock, Timer, Stopwatch}

// Parse accepts a menu number ("1".."3") or a mode name.
func Parse(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "clock":
		return Clock, nil
	case "2", "timer":
		return Timer, nil
	case "3", "stopwatch":
		return Stopwatch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknown, s)
	}
}

func (m Mode) String() string {
	switch m {
	case Clock:
		return "clock"
	case Timer:
		return "timer"
	case Stopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// Title is the label shown in the interactive menu.
func (m Mode) Title() string {
	switch m {
	case Clock:
		return "Clock"
	case Timer:
		return "Timer"
	case Stopwatch:
		return "Stopwatch"
	default:
		return "Unknown"
	}
}
