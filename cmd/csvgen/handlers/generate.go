package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/csvgen/internal/config"
	"github.com/imamik/csvgen/internal/ui"
)

// GenerateOptions are the flags of the generate command.
type GenerateOptions struct {
	Target
	Layout string
}

// loadLayout reads a layout file. Replaced in tests.
var loadLayout = config.LoadLayout

// Generate builds the table described by a layout file and writes it.
func Generate(ctx context.Context, opts Options, genOpts GenerateOptions) error {
	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	layout, err := loadLayout(genOpts.Layout)
	if err != nil {
		return err
	}

	dest, err := resolveDestination(ctx, settings, genOpts.Target)
	if err != nil {
		return err
	}

	t, err := generateAndWrite(ctx, settings, layout.Columns(), layout.Variants(), dest)
	if err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("Wrote %d rows to %s", len(t.Rows), dest.String())))
	return nil
}
