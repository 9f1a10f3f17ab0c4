package prompt

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/tock/internal/apperr"
	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xtime"
)

func TestPlan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantMode  mode.Mode
		wantColor rgb.Color
		wantInput string
		wantCode  string
	}{
		{
			name:      "clock with valid zone",
			input:     "#00ff00\n1\nAmerica/New_York\n",
			wantMode:  mode.Clock,
			wantColor: rgb.New(0, 255, 0),
			wantInput: "America/New_York",
		},
		{
			name:      "timer",
			input:     "#ffffff\n2\n90\n",
			wantMode:  mode.Timer,
			wantColor: rgb.New(255, 255, 255),
			wantInput: "90",
		},
		{
			name:      "timer missing duration",
			input:     "#ffffff\n2\n",
			wantMode:  mode.Timer,
			wantColor: rgb.New(255, 255, 255),
		},
		{
			name:      "stopwatch with bad color digits",
			input:     "#zz10zz\n3\n",
			wantMode:  mode.Stopwatch,
			wantColor: rgb.New(0, 16, 0),
		},
		{
			name:     "invalid zone",
			input:    "#00ff00\n1\nMars/Base\n",
			wantCode: apperr.CodeInvalidTimezone,
		},
		{
			name:     "invalid choice",
			input:    "#00ff00\n7\n",
			wantCode: apperr.CodeInvalidChoice,
		},
		{
			name:     "empty input",
			input:    "",
			wantCode: apperr.CodeInvalidColor,
		},
		{
			name:     "short color",
			input:    "#0f0\n1\nUTC\n",
			wantCode: apperr.CodeInvalidColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			plan, err := NewSession(strings.NewReader(tt.input), &out).Plan()

			if tt.wantCode != "" {
				appErr := apperr.As(err)
				if appErr == nil {
					t.Fatalf("Plan() error = %v, want code %q", err, tt.wantCode)
				}
				if appErr.Code != tt.wantCode {
					t.Errorf("Plan() code = %q, want %q", appErr.Code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Plan() unexpected error: %v", err)
			}
			if plan.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", plan.Mode, tt.wantMode)
			}
			if plan.Color != tt.wantColor {
				t.Errorf("Color = %v, want %v", plan.Color.Hex(), tt.wantColor.Hex())
			}
			if plan.Input != tt.wantInput {
				t.Errorf("Input = %q, want %q", plan.Input, tt.wantInput)
			}
			if plan.Source == nil {
				t.Fatal("Source = nil")
			}
		})
	}
}

func TestPlan_PromptText(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := NewSession(strings.NewReader("#000000\n2\n5\n"), &out).Plan(); err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"Enter a HEX color (e.g., #00ff00):",
		"Choose a mode:",
		"1. Clock",
		"2. Timer",
		"3. Stopwatch",
		"Enter timer duration (in seconds):",
		"",
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("prompt output mismatch (-want +got):\n%s", diff)
	}
}

func TestPlan_Quiet(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if _, err := NewSession(strings.NewReader("#000000\n3\n"), &out, WithPrompts(false)).Plan(); err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("quiet session wrote %q", out.String())
	}
}

func TestPlan_TimerSource(t *testing.T) {
	t.Parallel()

	plan, err := NewSession(strings.NewReader("#000000\n2\nabc\n"), &bytes.Buffer{}).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	timer, ok := plan.Source.(*source.Timer)
	if !ok {
		t.Fatalf("Source = %T, want *source.Timer", plan.Source)
	}
	if timer.Total() != 0 {
		t.Errorf("Total() = %d, want 0 for non-numeric input", timer.Total())
	}
}

// lineReader hands out one line per Read and advances the clock before each.
type lineReader struct {
	lines []string
	clock *xtime.Fake
	step  time.Duration
}

func (r *lineReader) Read(p []byte) (int, error) {
	if len(r.lines) == 0 {
		return 0, io.EOF
	}
	r.clock.Advance(r.step)
	n := copy(p, r.lines[0])
	r.lines[0] = r.lines[0][n:]
	if r.lines[0] == "" {
		r.lines = r.lines[1:]
	}
	return n, nil
}

func TestPlan_StopwatchStartsAfterMenu(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	clock := xtime.NewFake(start)
	in := &lineReader{
		lines: []string{"#000000\n", "3\n"},
		clock: clock,
		step:  7 * time.Second,
	}

	plan, err := NewSession(in, &bytes.Buffer{}, WithClock(clock)).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	sw, ok := plan.Source.(*source.Stopwatch)
	if !ok {
		t.Fatalf("Source = %T, want *source.Stopwatch", plan.Source)
	}
	if !sw.Start().Equal(clock.Now()) {
		t.Errorf("Start() = %v, want post-menu instant %v", sw.Start(), clock.Now())
	}
	if sw.Start().Equal(start) {
		t.Error("Start() is the pre-menu instant")
	}
	if got, _ := sw.Next(clock.Now()); got != "00:00:00" {
		t.Errorf("first frame = %q, want %q", got, "00:00:00")
	}
}

func TestNewTerminalSession_PipeIsQuiet(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })

	if _, err := w.WriteString("#ff0000\n2\n5\n"); err != nil {
		t.Fatalf("write error = %v", err)
	}
	_ = w.Close()

	if IsTerminal(r) {
		t.Fatal("IsTerminal(pipe) = true")
	}

	var out bytes.Buffer
	plan, err := NewTerminalSession(r, &out).Plan()
	if err != nil {
		t.Fatalf("Plan() unexpected error: %v", err)
	}
	if plan.Mode != mode.Timer {
		t.Errorf("Mode = %v, want %v", plan.Mode, mode.Timer)
	}
	if out.Len() != 0 {
		t.Errorf("piped session wrote %q", out.String())
	}
}
