package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/garrettladley/tock/internal/apperr"
	"github.com/garrettladley/tock/internal/config"
	"github.com/garrettladley/tock/internal/display"
	"github.com/garrettladley/tock/internal/glyph"
	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/paths"
	"github.com/garrettladley/tock/internal/prompt"
	"github.com/garrettladley/tock/internal/render"
	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/tui"
	"github.com/garrettladley/tock/internal/xslog"
	"github.com/garrettladley/tock/internal/xtime"
)

// exitCode is the process status for failures a command already reported itself.
var exitCode int

type app struct {
	cfg      config.Config
	logger   *slog.Logger
	table    *glyph.Table
	clock    xtime.Clock
	closeLog func()
}

func newApp() (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	out, closeLog := openLog(cfg)
	logger := xslog.NewLogger(out, cfg.Level()).With(
		xslog.SessionID(uuid.NewString()),
		xslog.Version(),
		xslog.RuntimeGroup(),
	)

	return &app{
		cfg:      cfg,
		logger:   logger,
		table:    glyph.New(),
		clock:    xtime.System{},
		closeLog: closeLog,
	}, nil
}

// openLog appends to the configured log file. Logging is best effort: any
// failure to open the file silences the logger instead of failing the run.
func openLog(cfg config.Config) (io.Writer, func()) {
	path, err := paths.LogFile(cfg.LogFile)
	if err != nil {
		return io.Discard, func() {}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { _ = f.Close() }
}

func (a *app) close() {
	a.closeLog()
}

// color resolves a --color value, falling back to the configured default.
func (a *app) color(flag string) (rgb.Color, error) {
	hex := flag
	if hex == "" {
		hex = a.cfg.Color
	}
	c, err := rgb.ParseHex(hex)
	if err != nil {
		return rgb.Color{}, apperr.InvalidColor(err)
	}
	return c, nil
}

// report prints user-facing failures to stdout and records their exit status.
// Any other error is returned for cobra to handle.
func (a *app) report(ctx context.Context, err error) error {
	appErr := apperr.As(err)
	if appErr == nil {
		return err
	}
	xslog.FromContext(ctx).WarnContext(ctx, "run rejected",
		xslog.Code(appErr.Code),
		xslog.ErrorGroup(appErr.Cause),
	)
	fmt.Println(appErr.Message)
	exitCode = appErr.ExitCode
	return nil
}

func (a *app) context(ctx context.Context, m mode.Mode) context.Context {
	ctx = xslog.WithLogger(ctx, a.logger)
	if m != 0 {
		ctx = xslog.WithAttrs(ctx, xslog.Mode(m.String()))
	}
	return ctx
}

// run drives src until it finishes or ctx is cancelled.
func (a *app) run(ctx context.Context, src source.Source, c rgb.Color, fullscreen bool) error {
	logger := xslog.FromContext(ctx)

	if fullscreen && !prompt.IsTerminal(os.Stdout) {
		logger.WarnContext(ctx, "stdout is not a terminal, using the plain display")
		fullscreen = false
	}

	logger.InfoContext(ctx, "display started", xslog.Color(c.Hex()))

	if fullscreen {
		return a.runTUI(ctx, src, c)
	}

	driver := display.New(render.New(os.Stdout, a.table), a.clock, display.WithLogger(logger))
	err := driver.Run(ctx, src, c)
	if errors.Is(err, context.Canceled) {
		logger.InfoContext(ctx, "display interrupted")
		return nil
	}
	if err != nil {
		logger.ErrorContext(ctx, "display failed", xslog.Error(err))
		return err
	}
	logger.InfoContext(ctx, "display finished")
	return nil
}

func (a *app) runTUI(ctx context.Context, src source.Source, c rgb.Color) error {
	logger := xslog.FromContext(ctx)

	finished, err := tui.Run(ctx, tui.Deps{
		Source: src,
		Table:  a.table,
		Clock:  a.clock,
		Color:  c,
		Logger: logger,
	})
	if err != nil {
		logger.ErrorContext(ctx, "tui failed", xslog.Error(err))
		return err
	}

	if !finished {
		logger.InfoContext(ctx, "display interrupted")
		return nil
	}

	logger.InfoContext(ctx, "display finished")
	if f, ok := src.(source.Finisher); ok {
		return render.New(os.Stdout, a.table).Message(f.FinishMessage(), c)
	}
	return nil
}
