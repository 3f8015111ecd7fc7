package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workbookFixture(t *testing.T) []byte {
	t.Helper()

	table, _ := Normalize(&RawTable{
		Headers: []string{"final_location", "year", "flat_weighted_average_rate"},
		Rows: [][]string{
			{"Wakad", "2021", "9000"},
			{"Baner", "2022", "8500"},
		},
	})
	data, err := WriteWorkbook(table, "data")
	require.NoError(t, err)
	return data
}

func TestRegistryLoadAndCurrent(t *testing.T) {
	r := NewRegistry(nil)

	table, report := r.Load(workbookFixture(t))
	assert.Equal(t, 2, table.RowCount())
	assert.Equal(t, 2, report.Rows)
	assert.Contains(t, report.Columns, "final_location")

	current := r.Current()
	assert.Equal(t, 2, current.RowCount())
	assert.Equal(t, table.Columns(), current.Columns())
}

func TestRegistryLoadUnreadable(t *testing.T) {
	r := NewRegistry(nil)

	table, report := r.Load([]byte("not a workbook"))
	assert.True(t, table.IsEmpty())
	assert.Zero(t, report.Rows)
	assert.True(t, r.Current().IsEmpty())
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry(nil)
	r.Load(workbookFixture(t))
	require.False(t, r.Current().IsEmpty())

	r.Clear()
	assert.True(t, r.Current().IsEmpty())
}

func TestRegistryReplaceDataset(t *testing.T) {
	r := NewRegistry(nil)
	r.Load(workbookFixture(t))

	table, _ := Normalize(&RawTable{
		Headers: []string{"locality"},
		Rows:    [][]string{{"Aundh"}},
	})
	data, err := WriteWorkbook(table, "data")
	require.NoError(t, err)

	replaced, _ := r.Load(data)
	assert.Equal(t, 1, replaced.RowCount())
	assert.Equal(t, []string{"locality"}, r.Current().Columns())
}
