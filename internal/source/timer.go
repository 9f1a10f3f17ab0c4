package source

import (
	"strconv"
	"strings"
	"time"
)

const timerFinished = "Timer finished!"

// Timer counts down whole seconds to zero.
type Timer struct {
	total     uint64
	remaining uint64
	shown     bool
}

var (
	_ Source   = (*Timer)(nil)
	_ Finisher = (*Timer)(nil)
)

func NewTimer(seconds uint64) *Timer {
	return &Timer{total: seconds, remaining: seconds}
}

// ParseSeconds reads a non-negative duration in seconds. Input that is not a
// plain unsigned integer counts as zero.
func ParseSeconds(s string) uint64 {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Next shows the remaining time. Each call after the first consumes one second.
func (t *Timer) Next(time.Time) (string, bool) {
	if t.shown {
		t.remaining--
		t.shown = false
	}
	if t.remaining == 0 {
		return "", false
	}
	t.shown = true
	return FormatSeconds(t.remaining), true
}

func (t *Timer) Policy() Policy {
	return RenderAlways
}

func (t *Timer) FinishMessage() string {
	return timerFinished
}

func (t *Timer) Total() uint64 {
	return t.total
}

// Remaining is the number of seconds currently on display.
func (t *Timer) Remaining() uint64 {
	return t.remaining
}

// Progress is the fraction of the countdown still remaining, in [0, 1].
func (t *Timer) Progress() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.total)
}
