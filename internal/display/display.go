package display

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xslog"
	"github.com/garrettladley/tock/internal/xtime"
)

const defaultInterval = time.Second

// Renderer draws frames and one-off messages.
type Renderer interface {
	Render(text string, c rgb.Color) error
	Message(text string, c rgb.Color) error
}

// Driver polls a source once per interval and hands its text to a renderer.
type Driver struct {
	renderer Renderer
	clock    xtime.Clock
	interval time.Duration
	logger   *slog.Logger
}

type Option func(*Driver)

func WithInterval(d time.Duration) Option {
	return func(drv *Driver) { drv.interval = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(drv *Driver) { drv.logger = l }
}

func New(r Renderer, clock xtime.Clock, opts ...Option) *Driver {
	d := &Driver{
		renderer: r,
		clock:    clock,
		interval: defaultInterval,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run ticks until src is exhausted or ctx is done. Clock and stopwatch sources
// never run out, so for them Run only returns with ctx.Err() or a write error.
func (d *Driver) Run(ctx context.Context, src source.Source, c rgb.Color) error {
	var (
		policy = src.Policy()
		last   string
		drawn  bool
		frames int
	)

	d.logger.DebugContext(ctx, "display loop started",
		xslog.Policy(policy.String()),
		xslog.Color(c.Hex()),
		xslog.Duration(d.interval),
	)

	for {
		text, ok := src.Next(d.clock.Now())
		if !ok {
			break
		}

		if policy == source.RenderAlways || !drawn || text != last {
			if err := d.renderer.Render(text, c); err != nil {
				return fmt.Errorf("failed to render frame: %w", err)
			}
			d.logger.DebugContext(ctx, "rendered frame", xslog.Frame(text))
			last, drawn = text, true
			frames++
		}

		if err := d.clock.Sleep(ctx, d.interval); err != nil {
			d.logger.DebugContext(ctx, "display loop interrupted", xslog.Count(frames))
			return err
		}
	}

	if f, ok := src.(source.Finisher); ok {
		if err := d.renderer.Message(f.FinishMessage(), c); err != nil {
			return fmt.Errorf("failed to render finish message: %w", err)
		}
	}
	d.logger.DebugContext(ctx, "display loop finished", xslog.Count(frames))
	return nil
}
