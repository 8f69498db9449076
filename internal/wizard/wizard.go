package wizard

import (
	"context"
	"fmt"

	"github.com/imamik/csvgen/internal/table"
)

// Result holds the answers of a completed wizard run.
type Result struct {
	Columns  []table.ColumnSpec
	Variants []string
}

// Inputs returns the input columns.
func (r *Result) Inputs() []table.ColumnSpec {
	var inputs []table.ColumnSpec
	for _, c := range r.Columns {
		if c.IsInput() {
			inputs = append(inputs, c)
		}
	}
	return inputs
}

// Outputs returns the output columns.
func (r *Result) Outputs() []table.ColumnSpec {
	var outputs []table.ColumnSpec
	for _, c := range r.Columns {
		if !c.IsInput() {
			outputs = append(outputs, c)
		}
	}
	return outputs
}

// ColumnQuestion describes the column a Prompter is asked about.
type ColumnQuestion struct {
	// Index is zero-based across all columns.
	Index int
	Total int
	Input bool
}

// ColumnAnswer is the header of one column.
type ColumnAnswer struct {
	Title        string
	Name         string
	VariantCount int
}

// Prompter asks the wizard questions.
type Prompter interface {
	Counts(ctx context.Context) (inputs, outputs int, err error)
	Column(ctx context.Context, q ColumnQuestion) (ColumnAnswer, error)
	Variants(ctx context.Context, column table.ColumnSpec) ([]string, error)
}

// Run walks a new State through every phase using p.
// The context is used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context, p Prompter) (*Result, error) {
	state := NewState()

	inputs, outputs, err := p.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("counts: %w", err)
	}
	if err := state.SetCounts(inputs, outputs); err != nil {
		return nil, fmt.Errorf("counts: %w", err)
	}

	for state.Phase() == PhaseColumns {
		index, input, err := state.NextColumn()
		if err != nil {
			return nil, err
		}
		q := ColumnQuestion{Index: index, Total: inputs + outputs, Input: input}

		answer, err := p.Column(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", index+1, err)
		}
		if err := state.AddColumn(answer.Title, answer.Name, answer.VariantCount); err != nil {
			return nil, fmt.Errorf("column %d: %w", index+1, err)
		}
	}

	for state.Phase() == PhaseVariants {
		column, err := state.NextVariantColumn()
		if err != nil {
			return nil, err
		}

		values, err := p.Variants(ctx, column)
		if err != nil {
			return nil, fmt.Errorf("variants of %s: %w", column.Name, err)
		}
		if err := state.AddVariants(values); err != nil {
			return nil, fmt.Errorf("variants of %s: %w", column.Name, err)
		}
	}

	return state.Result()
}
