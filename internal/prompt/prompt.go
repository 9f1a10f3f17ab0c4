package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/garrettladley/tock/internal/apperr"
	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xtime"
)

const (
	colorPrompt    = "Enter a HEX color (e.g., #00ff00):"
	modePrompt     = "Choose a mode:"
	timezonePrompt = "Enter a time zone (e.g., America/New_York):"
	secondsPrompt  = "Enter timer duration (in seconds):"
)

// Plan is everything the interactive menu collected.
type Plan struct {
	Color  rgb.Color
	Mode   mode.Mode
	Source source.Source
	// Input is the raw mode-specific answer (timezone or seconds).
	Input string
}

// Session reads menu answers line by line.
type Session struct {
	scanner *bufio.Scanner
	out     io.Writer
	echo    bool
	clock   xtime.Clock
}

type Option func(*Session)

// WithPrompts controls whether prompt text is written to the output.
func WithPrompts(echo bool) Option {
	return func(s *Session) { s.echo = echo }
}

// WithClock sets the clock the stopwatch start is read from.
func WithClock(clock xtime.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		scanner: bufio.NewScanner(in),
		out:     out,
		echo:    true,
		clock:   xtime.System{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewTerminalSession reads from in and prints prompts only when in is a terminal.
func NewTerminalSession(in *os.File, out io.Writer, opts ...Option) *Session {
	return NewSession(in, out, append([]Option{WithPrompts(IsTerminal(in))}, opts...)...)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Plan asks for a color, a mode and the mode's input, then builds the source.
// A stopwatch starts once its mode has been chosen.
func (s *Session) Plan() (Plan, error) {
	var plan Plan

	hex, err := s.ask(colorPrompt)
	if err != nil {
		return Plan{}, err
	}
	plan.Color, err = rgb.ParseHex(hex)
	if err != nil {
		return Plan{}, apperr.InvalidColor(err)
	}

	s.say(modePrompt)
	for _, m := range mode.All {
		s.say(fmt.Sprintf("%d. %s", m, m.Title()))
	}
	choice, err := s.line()
	if err != nil {
		return Plan{}, err
	}
	plan.Mode, err = mode.Parse(choice)
	if err != nil {
		return Plan{}, apperr.InvalidChoice(err)
	}

	switch plan.Mode {
	case mode.Clock:
		plan.Input, err = s.ask(timezonePrompt)
		if err != nil {
			return Plan{}, err
		}
		clock, err := source.NewClock(plan.Input)
		if err != nil {
			return Plan{}, apperr.InvalidTimezone(err)
		}
		plan.Source = clock
	case mode.Timer:
		plan.Input, err = s.ask(secondsPrompt)
		if err != nil {
			return Plan{}, err
		}
		plan.Source = source.NewTimer(source.ParseSeconds(plan.Input))
	case mode.Stopwatch:
		plan.Source = source.NewStopwatch(s.clock.Now())
	}

	return plan, nil
}

func (s *Session) ask(prompt string) (string, error) {
	s.say(prompt)
	return s.line()
}

func (s *Session) say(line string) {
	if s.echo {
		_, _ = fmt.Fprintln(s.out, line)
	}
}

// line returns the next input line. EOF yields an empty answer.
func (s *Session) line() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", nil
}
