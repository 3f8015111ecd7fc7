package analytics

import (
	"strings"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
)

// maxFallbackColumns bounds the table view when none of the priority columns
// are present.
const maxFallbackColumns = 10

// TablePage is one formatted page of the filtered subset. Total always
// reflects the full subset, independent of pagination.
type TablePage struct {
	Columns    []string        `json:"columns"`
	Rows       [][]interface{} `json:"rows"`
	Total      int             `json:"total"`
	DataSource string          `json:"data_source"`
}

// TableSlice selects display columns, paginates the filtered subset and
// formats each cell for rendering. Rows keep their original order; the slice
// is [offset, offset+limit) of the subset.
func TableSlice(sub Subset, limit, offset int) TablePage {
	if sub.IsEmpty() {
		return TablePage{Columns: []string{}, Rows: [][]interface{}{}, Total: 0, DataSource: SourceNoData}
	}

	columns := selectColumns(sub)
	total := sub.Table.RowCount()

	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	start := offset
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = DisplayName(col)
	}

	rows := make([][]interface{}, 0, end-start)
	for r := start; r < end; r++ {
		row := make([]interface{}, len(columns))
		for i, col := range columns {
			row[i] = formatCell(sub, r, col)
		}
		rows = append(rows, row)
	}

	return TablePage{Columns: headers, Rows: rows, Total: total, DataSource: SourceUploaded}
}

// selectColumns applies the display priority list, falling back to the first
// ten source columns when none of the priority names are present.
func selectColumns(sub Subset) []string {
	var columns []string
	for _, col := range TableColumns {
		if sub.Table.HasColumn(col) {
			columns = append(columns, col)
		}
	}
	if len(columns) > 0 {
		return columns
	}

	all := sub.Table.Columns()
	if len(all) > maxFallbackColumns {
		all = all[:maxFallbackColumns]
	}
	return all
}

// formatCell renders one cell: blank -> "N/A", integer -> plain integer,
// float -> thousands-grouped with a currency marker for rate/sales columns,
// anything else -> plain text.
func formatCell(sub Subset, row int, column string) interface{} {
	v := sub.Table.Cell(row, column)
	switch {
	case v.Null:
		return "N/A"
	case v.Kind == dataset.KindInt:
		return v.Int
	case v.Kind == dataset.KindFloat:
		s := groupThousands(v.Float)
		if strings.Contains(column, "rate") || strings.Contains(column, "sales") {
			return "₹" + s
		}
		return s
	default:
		return v.String()
	}
}
