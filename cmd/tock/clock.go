package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/apperr"
	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xslog"
)

func clockCmd() *cobra.Command {
	var flags displayFlags
	cmd := &cobra.Command{
		Use:   "clock [TZ]",
		Short: "Show the current time in a time zone",
		Long:  "Shows hh:mm AM/PM for an IANA time zone, redrawing when the minute changes. TZ defaults to $TOCK_TIMEZONE.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := a.context(cmd.Context(), mode.Clock)

			c, err := a.color(flags.color)
			if err != nil {
				return a.report(ctx, err)
			}

			tz := a.cfg.Timezone
			if len(args) == 1 {
				tz = args[0]
			}
			clock, err := source.NewClock(tz)
			if err != nil {
				return a.report(ctx, apperr.InvalidTimezone(err))
			}

			ctx = xslog.WithAttrs(ctx, xslog.Timezone(clock.Location().String()))
			return a.run(ctx, clock, c, flags.tui)
		},
	}
	flags.register(cmd)
	return cmd
}
