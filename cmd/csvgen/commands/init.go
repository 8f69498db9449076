package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/csvgen/cmd/csvgen/handlers"
)

// Init returns the command for interactively building a table.
//
// Flags:
//
//	--output, -o: Path to output file (default "output.csv")
//	--save-layout: Also write the entered columns to a layout file
//	--force: Overwrite the output file without asking
//	--s3-bucket, --s3-key: Upload to object storage instead
func Init() *cobra.Command {
	var opts handlers.InitOptions

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively describe columns and generate a CSV file",
		Long: `Interactively describe columns and generate a CSV file.

The wizard asks, in order:

  - How many input and output columns the table has (1 to 10 each)
  - The title and name of every column
  - The variant count of every input column
  - The variant values of every input column

The generated file has two header rows (titles, then names) followed by
one row per combination of input variants. Output columns stay empty.

Use --save-layout to keep the answers in a YAML file that
'csvgen generate' can read later.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), global.options(), opts)
		},
	}

	addTargetFlags(cmd, &opts.Target)
	cmd.Flags().StringVar(&opts.SaveLayout, "save-layout", "", "Also write the layout to this YAML file")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing output file without asking")

	return cmd
}
