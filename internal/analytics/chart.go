package analytics

import (
	"sort"
	"strings"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
)

// Chart kinds accepted by BuildChart.
const (
	ChartPrice       = "price"
	ChartDemand      = "demand"
	ChartComposition = "composition"
)

// maxDemandSeries caps how many demand columns are charted.
const maxDemandSeries = 3

// ChartDataset is one rendered series.
type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	BorderWidth     int       `json:"borderWidth"`
}

// ChartPayload is a chart-ready label/series bundle. For the time-series
// kinds every dataset has exactly len(Labels) points; the composition kind
// emits one dataset whose length equals the count of non-zero categories.
type ChartPayload struct {
	Labels     []string       `json:"labels"`
	Datasets   []ChartDataset `json:"datasets"`
	DataSource string         `json:"data_source"`
}

func emptyChart(source string) ChartPayload {
	return ChartPayload{Labels: []string{}, Datasets: []ChartDataset{}, DataSource: source}
}

// BuildChart produces the series for one chart kind over a resolved subset.
// A missing year column or an empty subset yields a tagged empty payload.
func BuildChart(sub Subset, kind string) ChartPayload {
	if sub.IsEmpty() || !sub.Table.HasColumn("year") {
		return emptyChart(SourceNoData)
	}

	years, rowsByYear := groupByYear(sub.Table)
	if len(years) == 0 {
		return emptyChart(SourceNoData)
	}

	switch kind {
	case ChartPrice:
		return seriesChart(sub.Table, RateColumns, years, rowsByYear, func(string) bool { return false })
	case ChartDemand:
		columns := DemandColumns
		if len(columns) > maxDemandSeries {
			columns = columns[:maxDemandSeries]
		}
		return seriesChart(sub.Table, columns, years, rowsByYear, func(col string) bool {
			return strings.Contains(col, "sales")
		})
	case ChartComposition:
		return compositionChart(sub.Table, years, rowsByYear)
	default:
		return emptyChart(SourceNoColumns)
	}
}

// groupByYear buckets row indices by the integer year value.
func groupByYear(t *dataset.Table) ([]int, map[int][]int) {
	col, ok := t.Column("year")
	if !ok {
		return nil, nil
	}
	rowsByYear := make(map[int][]int)
	for i, v := range col.Values {
		f, ok := v.AsFloat()
		if !ok {
			continue
		}
		y := int(f)
		rowsByYear[y] = append(rowsByYear[y], i)
	}
	years := make([]int, 0, len(rowsByYear))
	for y := range rowsByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years, rowsByYear
}

// seriesChart builds one aligned series per configured column present in the
// table. Years without data contribute 0 so every series matches the label
// axis. Series whose values are never strictly positive are dropped; sumFor
// selects which columns aggregate by sum instead of mean.
func seriesChart(t *dataset.Table, columns []string, years []int, rowsByYear map[int][]int, sumFor func(string) bool) ChartPayload {
	payload := ChartPayload{
		Labels:     yearLabels(years),
		Datasets:   []ChartDataset{},
		DataSource: SourceUploaded,
	}

	for _, col := range columns {
		if !t.HasColumn(col) {
			continue
		}
		data := make([]float64, len(years))
		for i, year := range years {
			data[i] = aggregateRows(t, col, rowsByYear[year], sumFor(col))
		}
		if !anyPositive(data) {
			continue
		}
		border, background := paletteColor(len(payload.Datasets))
		payload.Datasets = append(payload.Datasets, ChartDataset{
			Label:           DisplayName(col),
			Data:            data,
			BorderColor:     border,
			BackgroundColor: background,
			BorderWidth:     2,
		})
	}

	return payload
}

// compositionChart sums each sold column across the single most recent year.
// Zero-total categories are dropped from labels and values in lockstep.
func compositionChart(t *dataset.Table, years []int, rowsByYear map[int][]int) ChartPayload {
	latest := years[len(years)-1]
	rows := rowsByYear[latest]

	var labels []string
	var values []float64
	for _, col := range SoldColumns {
		if !t.HasColumn(col) {
			continue
		}
		total := aggregateRows(t, col, rows, true)
		if total <= 0 {
			continue
		}
		labels = append(labels, DisplayName(col))
		values = append(values, total)
	}

	if len(labels) == 0 {
		return emptyChart(SourceNoColumns)
	}

	return ChartPayload{
		Labels: labels,
		Datasets: []ChartDataset{{
			Label: "Units Sold " + itoa(latest),
			Data:  values,
		}},
		DataSource: SourceUploaded,
	}
}

// aggregateRows reduces the numeric readings of a column over the given rows.
// No readable values means 0, never a skipped point.
func aggregateRows(t *dataset.Table, name string, rows []int, sum bool) float64 {
	col, ok := t.Column(name)
	if !ok {
		return 0
	}
	total := 0.0
	count := 0
	for _, r := range rows {
		if r < 0 || r >= len(col.Values) {
			continue
		}
		if f, ok := col.Values[r].AsFloat(); ok {
			total += f
			count++
		}
	}
	if count == 0 {
		return 0
	}
	if sum {
		return total
	}
	return total / float64(count)
}

func yearLabels(years []int) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = itoa(y)
	}
	return labels
}

func anyPositive(data []float64) bool {
	for _, v := range data {
		if v > 0 {
			return true
		}
	}
	return false
}
