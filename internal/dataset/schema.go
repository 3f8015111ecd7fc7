package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// RawTable is the uploaded spreadsheet as read from the first worksheet:
// header text plus string cells, possibly ragged. It only exists during
// normalization.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// Report describes the outcome of a normalization pass.
type Report struct {
	Rows         int      `json:"rows"`
	Columns      []string `json:"columns"`
	YearWarnings int      `json:"year_warnings"`
}

// NormalizeName canonicalizes a header: trimmed, lower-cased, spaces and
// hyphens mapped to underscores.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Normalize turns a raw table into the canonical typed table.
//
// Header names are canonicalized with NormalizeName; when two distinct
// headers collapse to the same name, later ones get a _2, _3, ... suffix in
// header order so no source column is silently dropped. Columns whose
// non-blank cells all parse as numbers (after stripping thousands-separator
// commas) are promoted to integer or float; anything else stays text. A
// column named "year" is always coerced to integer, with unparseable cells
// becoming 0 and counted in the report.
//
// Unreadable or empty input yields an explicitly-empty table, never an error.
func Normalize(raw *RawTable) (*Table, Report) {
	if raw == nil || len(raw.Headers) == 0 || len(raw.Rows) == 0 {
		return Empty(), Report{}
	}

	names := dedupeNames(raw.Headers)
	columns := make([]Column, len(names))
	report := Report{Rows: len(raw.Rows), Columns: names}

	for i, name := range names {
		cells := make([]string, len(raw.Rows))
		for r, row := range raw.Rows {
			if i < len(row) {
				cells[r] = strings.TrimSpace(row[i])
			}
		}
		if name == "year" {
			values, warnings := coerceYear(cells)
			columns[i] = Column{Name: name, Kind: KindInt, Values: values}
			report.YearWarnings += warnings
			continue
		}
		columns[i] = inferColumn(name, cells)
	}

	return NewTable(columns), report
}

// dedupeNames canonicalizes headers and suffixes collisions in header order.
func dedupeNames(headers []string) []string {
	names := make([]string, len(headers))
	seen := make(map[string]int, len(headers))
	for i, h := range headers {
		name := NormalizeName(h)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s_%d", name, n)
		}
		names[i] = name
	}
	return names
}

// inferColumn promotes a column to numeric when every non-blank cell parses;
// a single parse failure leaves the whole column as text.
func inferColumn(name string, cells []string) Column {
	numeric := make([]float64, len(cells))
	blank := make([]bool, len(cells))
	allInt := true
	sawValue := false

	for i, cell := range cells {
		if cell == "" {
			blank[i] = true
			continue
		}
		f, err := parseNumber(cell)
		if err != nil {
			return textColumn(name, cells)
		}
		numeric[i] = f
		sawValue = true
		if f != float64(int64(f)) {
			allInt = false
		}
	}

	if !sawValue {
		return textColumn(name, cells)
	}

	values := make([]Value, len(cells))
	kind := KindFloat
	if allInt {
		kind = KindInt
	}
	for i := range cells {
		switch {
		case blank[i]:
			values[i] = NullValue()
		case kind == KindInt:
			values[i] = IntValue(int64(numeric[i]))
		default:
			values[i] = FloatValue(numeric[i])
		}
	}
	return Column{Name: name, Kind: kind, Values: values}
}

func textColumn(name string, cells []string) Column {
	values := make([]Value, len(cells))
	for i, cell := range cells {
		if cell == "" {
			values[i] = NullValue()
		} else {
			values[i] = TextValue(cell)
		}
	}
	return Column{Name: name, Kind: KindText, Values: values}
}

// coerceYear forces the year column to integers. Unparseable cells become the
// 0 placeholder rather than being dropped, and are counted so callers can
// surface the sentinel bucket.
func coerceYear(cells []string) ([]Value, int) {
	values := make([]Value, len(cells))
	warnings := 0
	for i, cell := range cells {
		f, err := parseNumber(cell)
		if err != nil {
			values[i] = IntValue(0)
			warnings++
			continue
		}
		values[i] = IntValue(int64(f))
	}
	return values, warnings
}

// parseNumber parses a cell as a number after stripping thousands-separator
// commas.
func parseNumber(cell string) (float64, error) {
	cell = strings.ReplaceAll(strings.TrimSpace(cell), ",", "")
	if cell == "" {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseFloat(cell, 64)
}
