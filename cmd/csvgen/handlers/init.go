package handlers

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/table"
	"github.com/imamik/csvgen/internal/ui"
	"github.com/imamik/csvgen/internal/wizard"
)

// InitOptions are the flags of the init command.
type InitOptions struct {
	Target
	// SaveLayout also writes the entered layout to this YAML file.
	SaveLayout string
	// Force overwrites an existing output file without asking.
	Force bool
}

var errNotInteractive = errors.New("init requires an interactive terminal; use 'csvgen generate --layout' instead")

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// isInteractive reports whether stdin is a terminal.
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	confirmOverwrite = defaultConfirmOverwrite

	// runWizard runs the interactive column wizard.
	runWizard = func(ctx context.Context) (*wizard.Result, error) {
		return wizard.Run(ctx, wizard.FormPrompter{Accessible: os.Getenv("ACCESSIBLE") != ""})
	}

	saveLayout = config.SaveLayout
)

// Init runs the wizard, then generates and writes the table.
func Init(ctx context.Context, opts Options, initOpts InitOptions) error {
	if !isInteractive() {
		return errNotInteractive
	}

	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	if initOpts.Bucket == "" && !initOpts.Force && fileExists(initOpts.Path) {
		ok, err := confirmOverwrite(ctx, initOpts.Path)
		if err != nil {
			return fmt.Errorf("overwrite confirmation: %w", err)
		}
		if !ok {
			fmt.Println("Canceled, existing file kept.")
			return nil
		}
	}

	dest, err := resolveDestination(ctx, settings, initOpts.Target)
	if err != nil {
		return err
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	if initOpts.SaveLayout != "" {
		layout, err := config.LayoutFromColumns(result.Columns, result.Variants)
		if err != nil {
			return err
		}
		if err := saveLayout(initOpts.SaveLayout, layout); err != nil {
			return err
		}
	}

	t, err := generateAndWrite(ctx, settings, result.Columns, result.Variants, dest)
	if err != nil {
		return err
	}

	printInitSuccess(dest, result, t, initOpts.SaveLayout)
	return nil
}

// defaultConfirmOverwrite asks whether an existing file may be replaced.
func defaultConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s already exists. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Keep").
				Value(&ok),
		),
	).RunWithContext(ctx)
	return ok, err
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println(ui.Title("csvgen - CSV generator for input/output mappings"))
	fmt.Println(ui.Title("================================================="))
	fmt.Println()
	fmt.Println("This wizard asks for:")
	fmt.Println("  1. The number of input and output columns")
	fmt.Println("  2. The title and name of every column, and the variant count of each input")
	fmt.Println("  3. The variant values of every input")
	fmt.Println()
	fmt.Println("Every combination of input variants becomes one row.")
	fmt.Println()
}

// printInitSuccess prints the summary of a completed run.
func printInitSuccess(dest table.Destination, result *wizard.Result, t *table.Table, layoutPath string) {
	fmt.Println()
	fmt.Println(ui.Success("CSV file created!"))
	fmt.Println()
	fmt.Printf("  File: %s\n", dest.String())
	if layoutPath != "" {
		fmt.Printf("  Layout: %s\n", layoutPath)
	}

	fmt.Println(ui.Section("Summary"))
	fmt.Println("-------")
	fmt.Printf("  Inputs:  %d\n", len(result.Inputs()))
	for _, c := range result.Inputs() {
		fmt.Printf("    - %s (%s): %d variants\n", c.Title, c.Name, c.VariantCount)
	}
	fmt.Printf("  Outputs: %d\n", len(result.Outputs()))
	for _, c := range result.Outputs() {
		fmt.Printf("    - %s (%s)\n", c.Title, c.Name)
	}
	fmt.Printf("  Rows:    %d\n", len(t.Rows))
	fmt.Println()

	if layoutPath != "" {
		fmt.Println(ui.Section("Next Steps"))
		fmt.Println("----------")
		fmt.Println("  Regenerate without the wizard:")
		fmt.Printf("     csvgen generate --layout %s\n", layoutPath)
		fmt.Println()
	}
}
