//go:build !release

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/tock/internal/render"
)

func glyphsCmd() *cobra.Command {
	var flags displayFlags
	cmd := &cobra.Command{
		Use:   "glyphs",
		Short: "Draw every supported character once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx := a.context(cmd.Context(), 0)

			c, err := a.color(flags.color)
			if err != nil {
				return a.report(ctx, err)
			}
			return render.New(os.Stdout, a.table).Render(string(a.table.Runes()), c)
		},
	}
	cmd.Flags().StringVarP(&flags.color, "color", "c", "", "hex color such as #00ff00")
	return cmd
}
