package tui

import (
	"log/slog"
	"time"

	"github.com/garrettladley/tock/internal/glyph"
	"github.com/garrettladley/tock/internal/rgb"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xtime"
)

type Deps struct {
	Source   source.Source
	Table    *glyph.Table
	Clock    xtime.Clock
	Color    rgb.Color
	Interval time.Duration
	Logger   *slog.Logger
}
