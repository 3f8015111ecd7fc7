package analytics

import (
	"sort"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
)

// PriceStats aggregates a price-like column over non-blank values.
type PriceStats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// SalesStats aggregates a sales-like column over non-blank values.
type SalesStats struct {
	Total float64 `json:"total"`
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// columnValues collects the non-blank numeric readings of a column. Text
// columns yield nothing.
func columnValues(t *dataset.Table, name string) []float64 {
	col, ok := t.Column(name)
	if !ok {
		return nil
	}
	values := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if f, ok := v.AsFloat(); ok {
			values = append(values, f)
		}
	}
	return values
}

// ColumnPriceStats computes {min, max, avg, count} for a rate column.
// ok is false when the column is absent or has no non-blank values.
func ColumnPriceStats(t *dataset.Table, name string) (PriceStats, bool) {
	values := columnValues(t, name)
	if len(values) == 0 {
		return PriceStats{}, false
	}
	stats := PriceStats{Min: values[0], Max: values[0], Count: len(values)}
	sum := 0.0
	for _, v := range values {
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
		sum += v
	}
	stats.Avg = sum / float64(len(values))
	return stats, true
}

// ColumnSalesStats computes {total, avg, count} for a sales column.
func ColumnSalesStats(t *dataset.Table, name string) (SalesStats, bool) {
	values := columnValues(t, name)
	if len(values) == 0 {
		return SalesStats{}, false
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return SalesStats{Total: sum, Avg: sum / float64(len(values)), Count: len(values)}, true
}

// ColumnMean returns the mean over non-blank values, with the value count.
func ColumnMean(t *dataset.Table, name string) (float64, int) {
	values := columnValues(t, name)
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), len(values)
}

// ColumnSum returns the sum over non-blank values, with the value count.
func ColumnSum(t *dataset.Table, name string) (float64, int) {
	values := columnValues(t, name)
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum, len(values)
}

// Years returns the sorted distinct integer values of the year column.
func Years(t *dataset.Table) []int {
	col, ok := t.Column("year")
	if !ok {
		return []int{}
	}
	seen := make(map[int]struct{})
	var years []int
	for _, v := range col.Values {
		f, ok := v.AsFloat()
		if !ok {
			continue
		}
		y := int(f)
		if _, dup := seen[y]; dup {
			continue
		}
		seen[y] = struct{}{}
		years = append(years, y)
	}
	sort.Ints(years)
	if years == nil {
		years = []int{}
	}
	return years
}

// Coverage renders a year span as "<min>-<max>", or "N/A" without years.
func Coverage(years []int) string {
	if len(years) == 0 {
		return "N/A"
	}
	return itoa(years[0]) + "-" + itoa(years[len(years)-1])
}
