package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/csvgen/cmd/csvgen/handlers"
	"github.com/imamik/csvgen/internal/config"
)

// Generate returns the command for building a table from a layout file.
func Generate() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a CSV file from a layout file",
		Long: `Generate a CSV file from a layout file without prompting.

The layout lists the input columns with their variants and the output
columns:

  inputs:
    - title: Size
      name: size
      variants: [S, M, L]
  outputs:
    - title: Price
      name: price`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Generate(cmd.Context(), global.options(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Layout, "layout", "l", config.DefaultLayoutFilename, "Path to layout file")
	addTargetFlags(cmd, &opts.Target)

	return cmd
}
