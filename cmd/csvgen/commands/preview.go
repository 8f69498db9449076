package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/csvgen/cmd/csvgen/handlers"
	"github.com/imamik/csvgen/internal/config"
)

// Preview returns the command that shows the first rows of a layout's table.
func Preview() *cobra.Command {
	var (
		layoutPath string
		rows       int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the row count and first rows of a layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Preview(cmd.Context(), global.options(), layoutPath, rows)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", config.DefaultLayoutFilename, "Path to layout file")
	cmd.Flags().IntVarP(&rows, "rows", "n", 10, "Number of rows to show (0 shows all)")

	return cmd
}
