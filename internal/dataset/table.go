package dataset

import (
	"strconv"
	"strings"
)

// Kind identifies the inferred semantic type of a column.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "text"
	}
}

// Value is a single tagged cell. Blank cells carry Null=true and no payload.
type Value struct {
	Kind  Kind
	Null  bool
	Int   int64
	Float float64
	Text  string
}

// IntValue creates an integer cell.
func IntValue(v int64) Value { return Value{Kind: KindInt, Int: v} }

// FloatValue creates a float cell.
func FloatValue(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// TextValue creates a text cell.
func TextValue(v string) Value { return Value{Kind: KindText, Text: v} }

// NullValue creates a blank cell.
func NullValue() Value { return Value{Null: true} }

// AsFloat returns the numeric reading of the cell. Text cells and blanks
// report ok=false.
func (v Value) AsFloat() (float64, bool) {
	if v.Null {
		return 0, false
	}
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// String renders the cell for display. Blanks render as an empty string.
func (v Value) String() string {
	if v.Null {
		return ""
	}
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	default:
		return v.Text
	}
}

// Column is a named, typed sequence of cells.
type Column struct {
	Name   string
	Kind   Kind
	Values []Value
}

// Table is the canonical in-memory dataset: column-ordered, immutable once
// built. All columns share the same length.
type Table struct {
	columns []Column
	index   map[string]int
}

// NewTable builds a table from columns. Column order is preserved; the name
// index maps a name to its first occurrence.
func NewTable(columns []Column) *Table {
	t := &Table{
		columns: columns,
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if _, ok := t.index[c.Name]; !ok {
			t.index[c.Name] = i
		}
	}
	return t
}

// Empty returns an explicitly-empty table. Callers treat emptiness as
// "no dataset", never as a fault.
func Empty() *Table { return NewTable(nil) }

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	if t == nil || len(t.columns) == 0 {
		return 0
	}
	return len(t.columns[0].Values)
}

// IsEmpty reports whether the table has no rows or no columns.
func (t *Table) IsEmpty() bool { return t.RowCount() == 0 }

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the named column, if present.
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.columns[i], true
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.Column(name)
	return ok
}

// ColumnAt returns the column at position i.
func (t *Table) ColumnAt(i int) *Column { return &t.columns[i] }

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() int { return len(t.columns) }

// Cell returns the value at (row, column name). Missing columns read as blank.
func (t *Table) Cell(row int, name string) Value {
	col, ok := t.Column(name)
	if !ok || row < 0 || row >= len(col.Values) {
		return NullValue()
	}
	return col.Values[row]
}

// SelectRows materializes a new table holding only the given row indices, in
// order. Indices out of range are skipped.
func (t *Table) SelectRows(rows []int) *Table {
	n := t.RowCount()
	columns := make([]Column, len(t.columns))
	for i, c := range t.columns {
		values := make([]Value, 0, len(rows))
		for _, r := range rows {
			if r >= 0 && r < n {
				values = append(values, c.Values[r])
			}
		}
		columns[i] = Column{Name: c.Name, Kind: c.Kind, Values: values}
	}
	return NewTable(columns)
}

// MatchRows returns the indices of rows whose cell in the named column
// contains needle case-insensitively.
func (t *Table) MatchRows(name, needle string) []int {
	col, ok := t.Column(name)
	if !ok {
		return nil
	}
	needle = strings.ToLower(needle)
	var rows []int
	for i, v := range col.Values {
		if v.Null {
			continue
		}
		if strings.Contains(strings.ToLower(v.String()), needle) {
			rows = append(rows, i)
		}
	}
	return rows
}
