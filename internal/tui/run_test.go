package tui

import (
	"context"
	"io"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/tock/internal/glyph"
	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xtime"
)

func headless() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard)}
}

func runDeps(src source.Source) Deps {
	return Deps{
		Source:   src,
		Table:    glyph.New(),
		Clock:    xtime.NewFake(time.Unix(0, 0)),
		Color:    rgb.New(0, 255, 0),
		Interval: time.Millisecond,
	}
}

func TestRun_CancelledContextStops(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	finished, err := Run(ctx, runDeps(source.NewStopwatch(time.Unix(0, 0))), headless()...)
	if err != nil {
		t.Fatalf("Run() error = %v, want nil on cancellation", err)
	}
	if finished {
		t.Error("Run() finished = true, want false when cancelled")
	}
}

func TestRun_TimerFinishes(t *testing.T) {
	t.Parallel()

	finished, err := Run(t.Context(), runDeps(source.NewTimer(2)), headless()...)
	if err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if !finished {
		t.Error("Run() finished = false, want true")
	}
}
