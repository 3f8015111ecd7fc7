package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims and lowers", input: "  Final Location  ", expected: "final_location"},
		{name: "hyphens become underscores", input: "flat-weighted-average-rate", expected: "flat_weighted_average_rate"},
		{name: "mixed separators", input: "Total - Sales", expected: "total___sales"},
		{name: "already canonical", input: "year", expected: "year"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		raw  *RawTable
	}{
		{name: "nil table", raw: nil},
		{name: "no headers", raw: &RawTable{Rows: [][]string{{"a"}}}},
		{name: "no rows", raw: &RawTable{Headers: []string{"a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, report := Normalize(tt.raw)
			assert.True(t, table.IsEmpty())
			assert.Zero(t, report.Rows)
		})
	}
}

func TestNormalizeHeaderCollisions(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"Area", "area", " AREA "},
		Rows:    [][]string{{"Wakad", "Baner", "Aundh"}},
	}

	table, report := Normalize(raw)
	assert.Equal(t, []string{"area", "area_2", "area_3"}, report.Columns)
	assert.Equal(t, []string{"area", "area_2", "area_3"}, table.Columns())
}

func TestNormalizeTypeInference(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"locality", "rate", "units", "mixed", "blank"},
		Rows: [][]string{
			{"Wakad", "9,000.5", "120", "12", ""},
			{"Baner", "8500", "95", "n/a", ""},
		},
	}

	table, _ := Normalize(raw)

	loc, ok := table.Column("locality")
	require.True(t, ok)
	assert.Equal(t, KindText, loc.Kind)

	rate, ok := table.Column("rate")
	require.True(t, ok)
	assert.Equal(t, KindFloat, rate.Kind)
	assert.Equal(t, 9000.5, rate.Values[0].Float)

	units, ok := table.Column("units")
	require.True(t, ok)
	assert.Equal(t, KindInt, units.Kind)
	assert.Equal(t, int64(120), units.Values[0].Int)

	// one unparseable cell keeps the whole column text
	mixed, ok := table.Column("mixed")
	require.True(t, ok)
	assert.Equal(t, KindText, mixed.Kind)
	assert.Equal(t, "12", mixed.Values[0].Text)

	blank, ok := table.Column("blank")
	require.True(t, ok)
	assert.Equal(t, KindText, blank.Kind)
	assert.True(t, blank.Values[0].Null)
}

func TestNormalizeCommaStripping(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"total_sales"},
		Rows:    [][]string{{"1,234,567"}, {"890"}},
	}

	table, _ := Normalize(raw)
	col, ok := table.Column("total_sales")
	require.True(t, ok)
	assert.Equal(t, KindInt, col.Kind)
	assert.Equal(t, int64(1234567), col.Values[0].Int)
}

func TestNormalizeYearCoercion(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"Year", "locality"},
		Rows: [][]string{
			{"2021", "Wakad"},
			{"unknown", "Baner"},
			{"", "Aundh"},
			{"2023", "Hinjewadi"},
		},
	}

	table, report := Normalize(raw)
	col, ok := table.Column("year")
	require.True(t, ok)
	assert.Equal(t, KindInt, col.Kind)

	assert.Equal(t, int64(2021), col.Values[0].Int)
	assert.Equal(t, int64(0), col.Values[1].Int)
	assert.Equal(t, int64(0), col.Values[2].Int)
	assert.Equal(t, int64(2023), col.Values[3].Int)
	assert.Equal(t, 2, report.YearWarnings)
}

func TestNormalizeRaggedRows(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"locality", "rate"},
		Rows: [][]string{
			{"Wakad", "9000"},
			{"Baner"},
		},
	}

	table, report := Normalize(raw)
	assert.Equal(t, 2, report.Rows)

	rate, ok := table.Column("rate")
	require.True(t, ok)
	assert.False(t, rate.Values[0].Null)
	assert.True(t, rate.Values[1].Null)
}

func TestNormalizeIdempotentNames(t *testing.T) {
	raw := &RawTable{
		Headers: []string{"final_location", "flat_weighted_average_rate"},
		Rows:    [][]string{{"Wakad", "9000"}},
	}

	table, _ := Normalize(raw)
	assert.Equal(t, []string{"final_location", "flat_weighted_average_rate"}, table.Columns())
}
