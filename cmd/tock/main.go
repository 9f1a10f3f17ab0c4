package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/version"
)

func main() {
	_ = godotenv.Load()

	var flags displayFlags
	rootCmd := &cobra.Command{
		Use:     "tock",
		Short:   "A digital clock, timer and stopwatch in your terminal",
		Long:    "Asks for a color and a mode, then draws the time in large ASCII digits.",
		Version: version.Get(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, flags.tui)
		},
	}
	rootCmd.Flags().BoolVar(&flags.tui, "tui", false, "use the full-screen display")

	rootCmd.AddCommand(clockCmd())
	rootCmd.AddCommand(timerCmd())
	rootCmd.AddCommand(stopwatchCmd())
	rootCmd.AddCommand(upgradeCmd())
	addDevCommands(rootCmd)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}
