package source

import "time"

// Stopwatch shows the whole seconds elapsed since a fixed start instant.
type Stopwatch struct {
	start time.Time
}

var _ Source = (*Stopwatch)(nil)

func NewStopwatch(start time.Time) *Stopwatch {
	return &Stopwatch{start: start}
}

func (s *Stopwatch) Start() time.Time {
	return s.start
}

func (s *Stopwatch) Next(now time.Time) (string, bool) {
	return FormatDuration(now.Sub(s.start)), true
}

func (s *Stopwatch) Policy() Policy {
	return RenderAlways
}
