package table

// ColumnSpec declares one column of the generated table.
//
// Columns with VariantCount == 0 are output columns: they take part in every
// row with an empty value.
type ColumnSpec struct {
	Title        string
	Name         string
	VariantCount int
}

// IsInput reports whether the column contributes enumerated variants.
func (c ColumnSpec) IsInput() bool {
	return c.VariantCount > 0
}

// Table is a generated table: two header records followed by data rows.
type Table struct {
	Titles []string
	Names  []string
	Rows   [][]string
}

// Width returns the number of columns.
func (t *Table) Width() int {
	return len(t.Titles)
}

// Records returns the table as CSV records, headers first.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+2)
	records = append(records, t.Titles, t.Names)
	records = append(records, t.Rows...)
	return records
}

// totalVariants returns the number of variant values the columns declare.
func totalVariants(columns []ColumnSpec) int {
	total := 0
	for _, c := range columns {
		total += c.VariantCount
	}
	return total
}
