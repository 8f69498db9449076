package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/imamik/csvgen/internal/table"
)

// RenderTable renders the header rows and at most limit data rows of t.
// A limit <= 0 renders every row.
func RenderTable(t *table.Table, limit int) string {
	rows := t.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	headers := make([]string, t.Width())
	for i := range headers {
		headers[i] = fmt.Sprintf("%s\n%s", t.Titles[i], t.Names[i])
	}

	tbl := lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return headerCellStyle
			}
			return cellStyle
		})

	var sb strings.Builder
	sb.WriteString(tbl.Render())
	if hidden := len(t.Rows) - len(rows); hidden > 0 {
		sb.WriteString("\n")
		sb.WriteString(Dim(fmt.Sprintf("... %d more rows", hidden)))
	}
	return sb.String()
}
