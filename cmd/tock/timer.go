package main

import (
	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/mode"
	"github.com/garrettladley/tock/internal/source"
	"github.com/garrettladley/tock/internal/xslog"
)

func timerCmd() *cobra.Command {
	var flags displayFlags
	cmd := &cobra.Command{
		Use:   "timer SECONDS",
		Short: "Count down from a number of seconds",
		Long:  "Counts down to zero once per second, then prints \"Timer finished!\". Input that is not a whole number counts as zero.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := a.context(cmd.Context(), mode.Timer)

			c, err := a.color(flags.color)
			if err != nil {
				return a.report(ctx, err)
			}

			timer := source.NewTimer(source.ParseSeconds(args[0]))
			ctx = xslog.WithAttrs(ctx, xslog.Seconds(timer.Total()))
			return a.run(ctx, timer, c, flags.tui)
		},
	}
	flags.register(cmd)
	return cmd
}
