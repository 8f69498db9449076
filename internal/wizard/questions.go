package wizard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/csvgen/internal/table"
)

// FormPrompter asks the wizard questions with huh forms.
type FormPrompter struct {
	// Accessible switches huh to plain line-based prompts.
	Accessible bool
}

func (p FormPrompter) run(ctx context.Context, groups ...*huh.Group) error {
	return huh.NewForm(groups...).WithAccessible(p.Accessible).RunWithContext(ctx)
}

// Counts prompts for the number of input and output columns.
func (p FormPrompter) Counts(ctx context.Context) (inputs, outputs int, err error) {
	inputs, outputs = 1, 1

	err = p.run(ctx,
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Number of inputs").
				Description("Input columns carry variants that are combined").
				Options(CountOptions()...).
				Value(&inputs),
			huh.NewSelect[int]().
				Title("Number of outputs").
				Description("Output columns are left empty in every row").
				Options(CountOptions()...).
				Value(&outputs),
		).Title("Columns"),
	)
	return inputs, outputs, err
}

// Column prompts for the title, name and, for inputs, the variant count.
func (p FormPrompter) Column(ctx context.Context, q ColumnQuestion) (ColumnAnswer, error) {
	var answer ColumnAnswer
	var countInput string

	fields := []huh.Field{
		huh.NewInput().
			Title("Title of the column").
			Value(&answer.Title).
			Validate(validateTitle),
		huh.NewInput().
			Title("Name of the instance").
			Value(&answer.Name).
			Validate(validateName),
	}
	if q.Input {
		fields = append(fields, huh.NewInput().
			Title("Number of variants").
			Placeholder("2").
			Value(&countInput).
			Validate(validateVariantCount))
	}

	kind := "Output"
	if q.Input {
		kind = "Input"
	}
	title := fmt.Sprintf("%s column (%d of %d)", kind, q.Index+1, q.Total)

	if err := p.run(ctx, huh.NewGroup(fields...).Title(title)); err != nil {
		return ColumnAnswer{}, err
	}

	if q.Input {
		n, err := parseVariantCount(countInput)
		if err != nil {
			return ColumnAnswer{}, err
		}
		answer.VariantCount = n
	}
	return answer, nil
}

// Variants prompts for every variant value of an input column at once.
func (p FormPrompter) Variants(ctx context.Context, column table.ColumnSpec) ([]string, error) {
	values := make([]string, column.VariantCount)
	fields := make([]huh.Field, column.VariantCount)
	for i := range values {
		fields[i] = huh.NewInput().
			Title(fmt.Sprintf("Variant %d", i+1)).
			Value(&values[i]).
			Validate(validateVariant)
	}

	title := fmt.Sprintf("Variants of %s (%s)", column.Title, column.Name)
	if err := p.run(ctx, huh.NewGroup(fields...).Title(title)); err != nil {
		return nil, err
	}
	return values, nil
}

// validateTitle validates a column title.
func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errTitleRequired
	}
	return nil
}

// validateName validates a column instance name.
func validateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errNameRequired
	}
	return nil
}

// validateVariantCount validates the typed number of variants.
func validateVariantCount(s string) error {
	_, err := parseVariantCount(s)
	return err
}

func parseVariantCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errVariantCountNumber
	}
	if n <= 0 {
		return 0, errVariantCountInvalid
	}
	return n, nil
}

// validateVariant validates a single variant value.
func validateVariant(s string) error {
	if strings.TrimSpace(s) == "" {
		return errVariantRequired
	}
	return nil
}
