package main

import "github.com/spf13/cobra"

type displayFlags struct {
	color string
	tui   bool
}

func (f *displayFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.color, "color", "c", "", "hex color such as #00ff00 (default $TOCK_COLOR or #00ff00)")
	cmd.Flags().BoolVar(&f.tui, "tui", false, "use the full-screen display")
}
