package analytics

import (
	"fmt"
	"strings"
)

// MetricComparison holds one metric's value on each side plus the relative
// difference of side 2 against side 1.
type MetricComparison struct {
	Area1Value        float64 `json:"area1_value"`
	Area2Value        float64 `json:"area2_value"`
	DifferencePercent float64 `json:"difference_percent"`
}

// Comparison is the result of comparing two areas. A failed resolution on
// either side populates Error and nothing else.
type Comparison struct {
	Area1   string                      `json:"area1,omitempty"`
	Area2   string                      `json:"area2,omitempty"`
	Metrics map[string]MetricComparison `json:"comparison,omitempty"`
	Error   string                      `json:"error,omitempty"`
}

// CompareAreas compares aggregate metrics of two independently resolved
// subsets: means for the rate columns, sums for total sales, plus record
// counts. When the side-1 value is not strictly positive the difference is
// reported as 0 rather than dividing by zero; the "infinite increase from
// zero" case is deliberately flattened.
func CompareAreas(sub1, sub2 Subset, area1, area2 string) Comparison {
	var missing []string
	if sub1.IsEmpty() {
		missing = append(missing, area1)
	}
	if sub2.IsEmpty() {
		missing = append(missing, area2)
	}
	if len(missing) > 0 {
		return Comparison{Error: fmt.Sprintf("No data found for area(s): %s", strings.Join(missing, ", "))}
	}

	metrics := make(map[string]MetricComparison)

	for _, col := range RateColumns {
		if !sub1.Table.HasColumn(col) || !sub2.Table.HasColumn(col) {
			continue
		}
		mean1, n1 := ColumnMean(sub1.Table, col)
		mean2, n2 := ColumnMean(sub2.Table, col)
		if n1 == 0 || n2 == 0 {
			continue
		}
		metrics[col] = compareValues(mean1, mean2)
	}

	if sub1.Table.HasColumn("total_sales") && sub2.Table.HasColumn("total_sales") {
		sum1, n1 := ColumnSum(sub1.Table, "total_sales")
		sum2, n2 := ColumnSum(sub2.Table, "total_sales")
		if n1 > 0 && n2 > 0 {
			metrics["total_sales"] = compareValues(sum1, sum2)
		}
	}

	metrics["record_count"] = compareValues(
		float64(sub1.Table.RowCount()),
		float64(sub2.Table.RowCount()),
	)

	return Comparison{Area1: area1, Area2: area2, Metrics: metrics}
}

func compareValues(v1, v2 float64) MetricComparison {
	c := MetricComparison{Area1Value: v1, Area2Value: v2}
	if v1 > 0 {
		c.DifferencePercent = (v2 - v1) / v1 * 100
	}
	return c
}
