package analytics

import "fmt"

// KeyMetrics is the aggregate block of a summary.
type KeyMetrics struct {
	PriceData    map[string]PriceStats `json:"price_data"`
	SalesData    map[string]SalesStats `json:"sales_data"`
	RecordCount  int                   `json:"record_count"`
	AreaCoverage string                `json:"area_coverage"`
}

// Summary is the analysis payload for one area. AISummary starts as the
// deterministic local narrative; the service may replace it with generated
// text when a narrative generator is configured.
type Summary struct {
	Summary    string     `json:"summary"`
	AISummary  string     `json:"ai_summary"`
	Years      []int      `json:"years"`
	KeyMetrics KeyMetrics `json:"key_metrics"`
	DataSource string     `json:"data_source"`
}

// Summarize builds the summary for a resolved subset. An empty subset yields
// a "no data" summary rather than an error. The result is a pure function of
// the subset and the area name.
func Summarize(sub Subset, area string) Summary {
	if sub.IsEmpty() {
		return Summary{
			Summary:    fmt.Sprintf("No data found for area '%s'.", area),
			AISummary:  fmt.Sprintf("No data available for %s.", area),
			Years:      []int{},
			KeyMetrics: KeyMetrics{PriceData: map[string]PriceStats{}, SalesData: map[string]SalesStats{}, AreaCoverage: "N/A"},
			DataSource: SourceNoData,
		}
	}

	years := Years(sub.Table)

	priceData := make(map[string]PriceStats)
	for _, col := range RateColumns {
		if stats, ok := ColumnPriceStats(sub.Table, col); ok {
			priceData[col] = stats
		}
	}

	salesData := make(map[string]SalesStats)
	for _, col := range SalesColumns {
		if stats, ok := ColumnSalesStats(sub.Table, col); ok {
			salesData[col] = stats
		}
	}

	return Summary{
		Summary: fmt.Sprintf("Real estate analysis for %s", area),
		Years:   years,
		KeyMetrics: KeyMetrics{
			PriceData:    priceData,
			SalesData:    salesData,
			RecordCount:  sub.Table.RowCount(),
			AreaCoverage: Coverage(years),
		},
		DataSource: SourceUploaded,
	}
}
