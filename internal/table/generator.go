package table

import (
	"math"

	"github.com/go-logr/logr"
)

// DefaultMaxRows is the row ceiling used when Generator.MaxRows is not set.
const DefaultMaxRows = 100_000

// Generator enumerates variant combinations.
//
// The zero value is ready to use with DefaultMaxRows and a discarding logger.
type Generator struct {
	// MaxRows is the largest number of data rows Generate will build.
	// Values <= 0 select DefaultMaxRows.
	MaxRows int

	Logger logr.Logger
}

// NewGenerator returns a Generator with the given row ceiling.
func NewGenerator(maxRows int, logger logr.Logger) *Generator {
	return &Generator{MaxRows: maxRows, Logger: logger}
}

func (g *Generator) limit() int {
	if g.MaxRows <= 0 {
		return DefaultMaxRows
	}
	return g.MaxRows
}

// Generate builds the table for columns and the flat variant list.
//
// Variants are consumed in column order, VariantCount values per column.
// Rows are ordered with the rightmost column varying fastest. The row count
// is checked against the ceiling before any row is built.
func (g *Generator) Generate(columns []ColumnSpec, variants []string) (*Table, error) {
	if err := checkShape(columns, variants); err != nil {
		return nil, err
	}

	limit := g.limit()
	rows, err := rowCount(columns, limit)
	if err != nil {
		return nil, err
	}

	g.Logger.V(1).Info("generating table", "columns", len(columns), "variants", len(variants), "rows", rows)

	groups := partition(columns, variants)
	t := &Table{
		Titles: make([]string, len(columns)),
		Names:  make([]string, len(columns)),
		Rows:   expand(groups, len(columns), nil, make([][]string, 0, rows)),
	}
	for i, c := range columns {
		t.Titles[i] = c.Title
		t.Names[i] = c.Name
	}

	return t, nil
}

// RowCount returns the number of data rows columns expand to.
func RowCount(columns []ColumnSpec) (int, error) {
	return rowCount(columns, math.MaxInt)
}

func checkShape(columns []ColumnSpec, variants []string) error {
	if len(columns) == 0 {
		return &ShapeError{Got: len(variants), Reason: "no columns declared"}
	}
	for _, c := range columns {
		if c.VariantCount < 0 {
			return &ShapeError{Got: len(variants), Reason: "column " + c.Name + " has a negative variant count"}
		}
	}
	if want := totalVariants(columns); want != len(variants) {
		return &ShapeError{Want: want, Got: len(variants)}
	}
	return nil
}

// rowCount multiplies max(1, VariantCount) over columns and compares the
// product with limit.
func rowCount(columns []ColumnSpec, limit int) (int, error) {
	rows := 1
	for _, c := range columns {
		n := max(1, c.VariantCount)
		if rows > math.MaxInt/n {
			return 0, &CapacityError{Limit: limit, Overflow: true}
		}
		rows *= n
	}
	if rows > limit {
		return 0, &CapacityError{Rows: rows, Limit: limit}
	}
	return rows, nil
}

// partition splits variants into one group per column. Columns without
// variants get a single empty value.
func partition(columns []ColumnSpec, variants []string) [][]string {
	groups := make([][]string, len(columns))
	offset := 0
	for i, c := range columns {
		if c.VariantCount == 0 {
			groups[i] = []string{""}
			continue
		}
		group := make([]string, c.VariantCount)
		copy(group, variants[offset:offset+c.VariantCount])
		groups[i] = group
		offset += c.VariantCount
	}
	return groups
}

// expand appends to out every row that extends prefix with one value from
// each remaining group. Each branch gets its own copy of the prefix.
func expand(groups [][]string, width int, prefix []string, out [][]string) [][]string {
	depth := len(prefix)
	if depth == len(groups) {
		row := make([]string, width)
		copy(row, prefix)
		return append(out, row)
	}

	for _, v := range groups[depth] {
		next := make([]string, depth+1, len(groups))
		copy(next, prefix)
		next[depth] = v
		out = expand(groups, width, next, out)
	}
	return out
}
