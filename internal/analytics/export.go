package analytics

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"unicode"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
)

// Export formats accepted by Export.
const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatJSON  = "json"
)

// maxSheetNameLen is the xlsx limit on worksheet names.
const maxSheetNameLen = 31

// ExportPayload is a serialized subset ready to be written to a response.
type ExportPayload struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Export serializes the resolved subset unmodified, with row numbering reset
// by construction (subsets are materialized fresh). An empty subset or an
// unsupported format yields ok=false, never an error.
func Export(sub Subset, area, format string) (ExportPayload, bool) {
	if sub.IsEmpty() {
		return ExportPayload{}, false
	}

	switch format {
	case FormatCSV:
		data, err := exportCSV(sub.Table)
		if err != nil {
			return ExportPayload{}, false
		}
		return ExportPayload{Data: data, ContentType: "text/csv; charset=utf-8", Extension: "csv"}, true
	case FormatExcel:
		data, err := dataset.WriteWorkbook(sub.Table, SheetName(area))
		if err != nil {
			return ExportPayload{}, false
		}
		return ExportPayload{
			Data:        data,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Extension:   "xlsx",
		}, true
	case FormatJSON:
		data, err := exportJSON(sub.Table)
		if err != nil {
			return ExportPayload{}, false
		}
		return ExportPayload{Data: data, ContentType: "application/json", Extension: "json"}, true
	default:
		return ExportPayload{}, false
	}
}

// SheetName derives a worksheet name from the area token: alphanumerics,
// spaces and underscores only, truncated to the xlsx limit, with "data" as
// the fallback for a fully-sanitized token.
func SheetName(area string) string {
	var b []rune
	for _, r := range area {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' {
			b = append(b, r)
		}
		if len(b) >= maxSheetNameLen {
			break
		}
	}
	name := strings.TrimSpace(string(b))
	if name == "" {
		return "data"
	}
	return name
}

// exportCSV writes all columns with a UTF-8 BOM for Excel compatibility.
func exportCSV(t *dataset.Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns()); err != nil {
		return nil, err
	}
	for r := 0; r < t.RowCount(); r++ {
		record := make([]string, t.ColumnCount())
		for c := 0; c < t.ColumnCount(); c++ {
			record[c] = t.ColumnAt(c).Values[r].String()
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// exportJSON emits one object per row keyed by column name, with native
// types preserved and blanks as null.
func exportJSON(t *dataset.Table) ([]byte, error) {
	records := make([]map[string]interface{}, t.RowCount())
	for r := 0; r < t.RowCount(); r++ {
		record := make(map[string]interface{}, t.ColumnCount())
		for c := 0; c < t.ColumnCount(); c++ {
			col := t.ColumnAt(c)
			record[col.Name] = jsonValue(col.Values[r])
		}
		records[r] = record
	}
	return json.MarshalIndent(records, "", "  ")
}

func jsonValue(v dataset.Value) interface{} {
	if v.Null {
		return nil
	}
	switch v.Kind {
	case dataset.KindInt:
		return v.Int
	case dataset.KindFloat:
		return v.Float
	default:
		return v.Text
	}
}
