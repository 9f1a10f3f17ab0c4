package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xslog"
)

func stopwatchCmd() *cobra.Command {
	var flags displayFlags
	cmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "Count up from zero",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := a.context(cmd.Context(), mode.Stopwatch)

			c, err := a.color(flags.color)
			if err != nil {
				return a.report(ctx, err)
			}

			stopwatch := source.NewStopwatch(a.clock.Now())
			ctx = xslog.WithAttrs(ctx, xslog.Start(stopwatch.Start()))
			return a.run(ctx, stopwatch, c, flags.tui)
		},
	}
	flags.register(cmd)
	return cmd
}
