// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/imamik/csvgen/cmd/csvgen/handlers"
	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/logging"
)

// globalFlags holds the persistent flags of the root command.
type globalFlags struct {
	verbose bool
	envFile string
	maxRows int
}

var global globalFlags

func (g globalFlags) options() handlers.Options {
	return handlers.Options{EnvFile: g.envFile, MaxRows: g.maxRows}
}

// Root returns the root command for the csvgen CLI.
//
// The root command owns the persistent flags and installs the logger on the
// command context before any subcommand runs.
func Root() *cobra.Command {
	global = globalFlags{}

	cmd := &cobra.Command{
		Use:   "csvgen",
		Short: "Generate CSV tables of every input variant combination",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log := logging.New(global.verbose)
			cmd.SetContext(logr.NewContext(cmd.Context(), log))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&global.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&global.envFile, "env-file", config.DefaultEnvFile, "Environment file loaded before settings are read")
	cmd.PersistentFlags().IntVar(&global.maxRows, "max-rows", 0, "Row limit (overrides "+config.EnvMaxRows+")")

	cmd.AddCommand(Init())
	cmd.AddCommand(Generate())
	cmd.AddCommand(Preview())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}

// addTargetFlags binds the output flags shared by init and generate.
func addTargetFlags(cmd *cobra.Command, target *handlers.Target) {
	cmd.Flags().StringVarP(&target.Path, "output", "o", "output.csv", "Output file path")
	cmd.Flags().StringVar(&target.Bucket, "s3-bucket", "", "Upload to this bucket instead of writing a local file")
	cmd.Flags().StringVar(&target.Key, "s3-key", "", "Object key (default: base name of --output)")
}
