package analytics

import "strings"

// Data source tags attached to every analytics payload so the transport
// layer can tell "no data" and faults apart from real results.
const (
	SourceUploaded  = "uploaded_excel_file"
	SourceNoData    = "no_data"
	SourceNoColumns = "no_matching_columns"
	SourceError     = "error"
)

// IdentityColumns are the candidate area columns, tried in priority order.
// The first one present with a match wins.
var IdentityColumns = []string{"final_location", "locality", "area", "location", "city"}

// RateColumns are the price-like metrics tracked per property category.
var RateColumns = []string{
	"flat_weighted_average_rate",
	"office_weighted_average_rate",
	"shop_weighted_average_rate",
	"others_weighted_average_rate",
}

// SalesColumns are the sales/units totals reported in summaries.
var SalesColumns = []string{"total_sales", "total_units"}

// DemandColumns feed the demand chart; only the first three are charted.
var DemandColumns = []string{"total_sales", "total_units", "demand_index"}

// SoldColumns feed the composition breakdown for the most recent year.
var SoldColumns = []string{"flat_sold", "office_sold", "shop_sold", "others_sold"}

// TableColumns is the display priority list for the paginated table view.
var TableColumns = []string{
	"year",
	"final_location",
	"locality",
	"area",
	"city",
	"total_sales",
	"total_units",
	"flat_weighted_average_rate",
	"office_weighted_average_rate",
	"demand_index",
}

// chartPalette is the fixed cyclic series palette. Background color is the
// border color at alpha 0.2.
var chartPalette = []string{
	"rgba(59, 130, 246, 0.8)",
	"rgba(16, 185, 129, 0.8)",
	"rgba(245, 158, 11, 0.8)",
	"rgba(239, 68, 68, 0.8)",
}

func paletteColor(i int) (border, background string) {
	border = chartPalette[i%len(chartPalette)]
	background = strings.Replace(border, "0.8", "0.2", 1)
	return border, background
}

// DisplayName turns a normalized column name into a header label: underscores
// become spaces and each word is title-cased.
func DisplayName(column string) string {
	words := strings.Split(column, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
