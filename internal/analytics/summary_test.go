package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeKnownArea(t *testing.T) {
	table := tableFixture(t,
		[]string{"final_location", "year", "flat_weighted_average_rate", "total_sales"},
		[][]string{
			{"Wakad", "2021", "9000", "150"},
			{"Wakad", "2022", "9800", "180"},
			{"Baner", "2021", "8500", "90"},
		},
	)

	summary := Summarize(ResolveArea(table, "Wakad"), "Wakad")

	assert.Equal(t, "Real estate analysis for Wakad", summary.Summary)
	assert.Equal(t, SourceUploaded, summary.DataSource)
	assert.Equal(t, []int{2021, 2022}, summary.Years)
	assert.Equal(t, 2, summary.KeyMetrics.RecordCount)
	assert.Equal(t, "2021-2022", summary.KeyMetrics.AreaCoverage)

	stats, ok := summary.KeyMetrics.PriceData["flat_weighted_average_rate"]
	require.True(t, ok)
	assert.Equal(t, 9000.0, stats.Min)
	assert.Equal(t, 9800.0, stats.Max)
	assert.Equal(t, 9400.0, stats.Avg)
	assert.Equal(t, 2, stats.Count)

	sales, ok := summary.KeyMetrics.SalesData["total_sales"]
	require.True(t, ok)
	assert.Equal(t, 330.0, sales.Total)
	assert.Equal(t, 165.0, sales.Avg)
	assert.Equal(t, 2, sales.Count)
}

func TestSummarizeUnknownArea(t *testing.T) {
	table := tableFixture(t,
		[]string{"final_location", "year"},
		[][]string{{"Baner", "2021"}},
	)

	summary := Summarize(ResolveArea(table, "Wakad"), "Wakad")

	assert.Equal(t, "No data found for area 'Wakad'.", summary.Summary)
	assert.Equal(t, SourceNoData, summary.DataSource)
	assert.Empty(t, summary.Years)
	assert.Empty(t, summary.KeyMetrics.PriceData)
	assert.Equal(t, "N/A", summary.KeyMetrics.AreaCoverage)
}

func TestSummarizeSkipsAbsentColumns(t *testing.T) {
	table := tableFixture(t,
		[]string{"locality", "year", "shop_weighted_average_rate"},
		[][]string{{"Wakad", "2021", "12000"}},
	)

	summary := Summarize(ResolveArea(table, "Wakad"), "Wakad")

	assert.Len(t, summary.KeyMetrics.PriceData, 1)
	assert.Contains(t, summary.KeyMetrics.PriceData, "shop_weighted_average_rate")
	assert.Empty(t, summary.KeyMetrics.SalesData)
}

func TestSummarizeSkipsBlankOnlyColumn(t *testing.T) {
	table := tableFixture(t,
		[]string{"locality", "year", "flat_weighted_average_rate", "total_units"},
		[][]string{
			{"Wakad", "2021", "9000", ""},
			{"Wakad", "2022", "9800", ""},
		},
	)

	summary := Summarize(ResolveArea(table, "Wakad"), "Wakad")
	assert.NotContains(t, summary.KeyMetrics.SalesData, "total_units")
}

func TestCoverage(t *testing.T) {
	tests := []struct {
		name     string
		years    []int
		expected string
	}{
		{name: "range", years: []int{2019, 2021, 2023}, expected: "2019-2023"},
		{name: "single year", years: []int{2021}, expected: "2021-2021"},
		{name: "none", years: nil, expected: "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Coverage(tt.years))
		})
	}
}
