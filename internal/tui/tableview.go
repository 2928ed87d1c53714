package tui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/spendlens/spendlens/internal/domain"
)

// RenderTable draws the raw dataset with the declared column order.
// Without rows, a loading indicator is shown instead of a failure.
func RenderTable(rows []domain.Row, schema domain.Schema) string {
	if len(rows) == 0 || len(schema) == 0 {
		return mutedStyle.Render("Loading data...")
	}

	widths := make([]int, len(schema))
	cells := make([][]string, len(rows))
	for i, col := range schema {
		widths[i] = len(col)
	}
	for ri, row := range rows {
		cells[ri] = make([]string, len(schema))
		for ci, col := range schema {
			cell := formatCell(row[col])
			cells[ri][ci] = cell
			if len(cell) > widths[ci] {
				widths[ci] = len(cell)
			}
		}
	}

	var b strings.Builder
	for ci, col := range schema {
		b.WriteString(headerCellStyle.Render(fmt.Sprintf("%-*s", widths[ci], col)))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	for _, row := range cells {
		for ci, cell := range row {
			fmt.Fprintf(&b, "%-*s  ", widths[ci], cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case float64:
		return humanize.Commaf(x)
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}
