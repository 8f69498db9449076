package wizard

import (
	"fmt"
	"strings"

	"github.com/imamik/csvgen/internal/table"
)

// Limits on the number of input and output columns.
const (
	MinColumns = 1
	MaxColumns = 10
)

// Phase is a step of the wizard.
type Phase int

// Wizard phases in the order they are visited.
const (
	PhaseCounts Phase = iota
	PhaseColumns
	PhaseVariants
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseCounts:
		return "counts"
	case PhaseColumns:
		return "columns"
	case PhaseVariants:
		return "variants"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State accumulates wizard answers. Every method checks the current phase
// and validates its input before advancing.
type State struct {
	phase    Phase
	inputs   int
	outputs  int
	columns  []table.ColumnSpec
	variants []string

	// variantColumn is the index of the input column awaiting variants.
	variantColumn int
}

// NewState returns a State in PhaseCounts.
func NewState() *State {
	return &State{phase: PhaseCounts}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	return s.phase
}

// Counts returns the number of input and output columns.
func (s *State) Counts() (inputs, outputs int) {
	return s.inputs, s.outputs
}

// SetCounts records how many input and output columns follow.
func (s *State) SetCounts(inputs, outputs int) error {
	if err := s.expect(PhaseCounts); err != nil {
		return err
	}
	if err := validateCount(inputs); err != nil {
		return err
	}
	if err := validateCount(outputs); err != nil {
		return err
	}

	s.inputs = inputs
	s.outputs = outputs
	s.columns = make([]table.ColumnSpec, 0, inputs+outputs)
	s.phase = PhaseColumns
	return nil
}

// NextColumn returns the zero-based index of the column to describe next and
// whether it is an input column.
func (s *State) NextColumn() (index int, input bool, err error) {
	if err := s.expect(PhaseColumns); err != nil {
		return 0, false, err
	}
	index = len(s.columns)
	return index, index < s.inputs, nil
}

// AddColumn records the next column. variantCount is ignored for output
// columns, which always get zero variants.
func (s *State) AddColumn(title, name string, variantCount int) error {
	index, input, err := s.NextColumn()
	if err != nil {
		return err
	}
	if strings.TrimSpace(title) == "" {
		return errTitleRequired
	}
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	if !input {
		variantCount = 0
	} else if variantCount <= 0 {
		return errVariantCountInvalid
	}

	s.columns = append(s.columns, table.ColumnSpec{Title: title, Name: name, VariantCount: variantCount})
	if index+1 == s.inputs+s.outputs {
		s.phase = PhaseVariants
	}
	return nil
}

// NextVariantColumn returns the input column whose variants are asked next.
func (s *State) NextVariantColumn() (table.ColumnSpec, error) {
	if err := s.expect(PhaseVariants); err != nil {
		return table.ColumnSpec{}, err
	}
	return s.columns[s.variantColumn], nil
}

// AddVariants records all variant values of the next input column.
func (s *State) AddVariants(values []string) error {
	column, err := s.NextVariantColumn()
	if err != nil {
		return err
	}
	if len(values) != column.VariantCount {
		return fmt.Errorf("%w: column %s expects %d, got %d", errVariantsMismatch, column.Name, column.VariantCount, len(values))
	}
	for _, v := range values {
		if err := validateVariant(v); err != nil {
			return err
		}
	}

	s.variants = append(s.variants, values...)
	s.variantColumn++
	if s.variantColumn == s.inputs {
		s.phase = PhaseReady
	}
	return nil
}

// Result returns the collected columns and variants.
func (s *State) Result() (*Result, error) {
	if err := s.expect(PhaseReady); err != nil {
		return nil, err
	}

	columns := make([]table.ColumnSpec, len(s.columns))
	copy(columns, s.columns)
	variants := make([]string, len(s.variants))
	copy(variants, s.variants)

	return &Result{Columns: columns, Variants: variants}, nil
}

func (s *State) expect(phase Phase) error {
	if s.phase != phase {
		return fmt.Errorf("%w: in %s, need %s", ErrWrongPhase, s.phase, phase)
	}
	return nil
}

func validateCount(n int) error {
	if n < MinColumns || n > MaxColumns {
		return errCountOutOfRange
	}
	return nil
}
