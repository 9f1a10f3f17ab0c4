package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/prompt"
	"github.com/garrettladley/tock/internal/xslog"
)

func runInteractive(cmd *cobra.Command, fullscreen bool) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	ctx := a.context(cmd.Context(), 0)

	session := prompt.NewTerminalSession(os.Stdin, os.Stdout, prompt.WithClock(a.clock))
	plan, err := session.Plan()
	if err != nil {
		return a.report(ctx, err)
	}

	ctx = a.context(cmd.Context(), plan.Mode)
	xslog.FromContext(ctx).DebugContext(ctx, "menu answered", xslog.Input(plan.Input))

	return a.run(ctx, plan.Source, plan.Color, fullscreen)
}
