package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/imamik/csvgen/internal/table"
)

// DefaultLayoutFilename is the layout file used when none is given.
const DefaultLayoutFilename = "layout.yaml"

// Layout describes the columns of a table and the variants of each input.
type Layout struct {
	Inputs  []InputColumn  `yaml:"inputs"`
	Outputs []OutputColumn `yaml:"outputs,omitempty"`
}

// InputColumn is a column whose variants are enumerated.
type InputColumn struct {
	Title    string   `yaml:"title"`
	Name     string   `yaml:"name"`
	Variants []string `yaml:"variants"`
}

// OutputColumn is a column left empty in every generated row.
type OutputColumn struct {
	Title string `yaml:"title"`
	Name  string `yaml:"name"`
}

// Columns returns the column specs, inputs first.
func (l *Layout) Columns() []table.ColumnSpec {
	columns := make([]table.ColumnSpec, 0, len(l.Inputs)+len(l.Outputs))
	for _, in := range l.Inputs {
		columns = append(columns, table.ColumnSpec{Title: in.Title, Name: in.Name, VariantCount: len(in.Variants)})
	}
	for _, out := range l.Outputs {
		columns = append(columns, table.ColumnSpec{Title: out.Title, Name: out.Name})
	}
	return columns
}

// Variants returns the flat variant list in column order.
func (l *Layout) Variants() []string {
	var variants []string
	for _, in := range l.Inputs {
		variants = append(variants, in.Variants...)
	}
	return variants
}

// Validate checks that every column is named and every input has variants.
func (l *Layout) Validate() error {
	var errs []error

	if len(l.Inputs) == 0 {
		errs = append(errs, errors.New("at least one input column is required"))
	}

	for i, in := range l.Inputs {
		field := fmt.Sprintf("inputs[%d]", i)
		errs = append(errs, validateHeader(field, in.Title, in.Name)...)
		if len(in.Variants) == 0 {
			errs = append(errs, fmt.Errorf("%s.variants must not be empty", field))
		}
		for j, v := range in.Variants {
			if strings.TrimSpace(v) == "" {
				errs = append(errs, fmt.Errorf("%s.variants[%d] must not be empty", field, j))
			}
		}
	}

	for i, out := range l.Outputs {
		errs = append(errs, validateHeader(fmt.Sprintf("outputs[%d]", i), out.Title, out.Name)...)
	}

	return errors.Join(errs...)
}

func validateHeader(field, title, name string) []error {
	var errs []error
	if strings.TrimSpace(title) == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", field))
	}
	if strings.TrimSpace(name) == "" {
		errs = append(errs, fmt.Errorf("%s.name is required", field))
	}
	return errs
}

// LayoutFromColumns rebuilds a layout from column specs and the flat
// variant list. Columns with variants become inputs, the rest outputs.
func LayoutFromColumns(columns []table.ColumnSpec, variants []string) (*Layout, error) {
	want := 0
	for _, c := range columns {
		want += max(0, c.VariantCount)
	}
	if want != len(variants) {
		return nil, &table.ShapeError{Want: want, Got: len(variants)}
	}

	layout := &Layout{}
	offset := 0
	for _, c := range columns {
		if !c.IsInput() {
			layout.Outputs = append(layout.Outputs, OutputColumn{Title: c.Title, Name: c.Name})
			continue
		}
		group := make([]string, c.VariantCount)
		copy(group, variants[offset:offset+c.VariantCount])
		layout.Inputs = append(layout.Inputs, InputColumn{Title: c.Title, Name: c.Name, Variants: group})
		offset += c.VariantCount
	}
	return layout, nil
}

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout parses and validates layout YAML. Unknown fields are rejected.
func ParseLayout(data []byte) (*Layout, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var layout Layout
	if err := dec.Decode(&layout); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("layout validation failed: %w", err)
	}
	return &layout, nil
}

// SaveLayout writes a layout to a YAML file.
func SaveLayout(path string, layout *Layout) error {
	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}
