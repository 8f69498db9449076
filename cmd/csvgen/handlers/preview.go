package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/csvgen/internal/table"
	"github.com/imamik/csvgen/internal/ui"
)

// Preview prints the row count and the first rows of a layout's table.
func Preview(ctx context.Context, opts Options, layoutPath string, limit int) error {
	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}

	layout, err := loadLayout(layoutPath)
	if err != nil {
		return err
	}

	columns := layout.Columns()
	rows, err := table.RowCount(columns)
	if err != nil {
		return fmt.Errorf("failed to count rows: %w", err)
	}
	fmt.Printf("Columns: %d (%d inputs, %d outputs)\n", len(columns), len(layout.Inputs), len(layout.Outputs))
	fmt.Printf("Rows:    %d\n", rows)
	if rows > settings.MaxRows {
		fmt.Println(ui.Warning(fmt.Sprintf("Row count exceeds the limit of %d; generate would fail.", settings.MaxRows)))
		return nil
	}
	fmt.Println()

	t, err := generate(ctx, settings, columns, layout.Variants())
	if err != nil {
		return err
	}

	fmt.Println(ui.RenderTable(t, limit))
	return nil
}
