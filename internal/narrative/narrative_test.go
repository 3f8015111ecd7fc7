package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackFullDigest(t *testing.T) {
	d := Digest{
		Area:         "Wakad",
		RecordCount:  24,
		YearCoverage: "2019-2023",
		AverageRates: []Figure{
			{Label: "Flat Weighted Average Rate", Value: 9400.4},
		},
		SalesTotals: []Figure{
			{Label: "Total Sales", Value: 1234567},
		},
	}

	expected := "Wakad shows data for 2019-2023." +
		" Average flat weighted average rate: ₹9,400 per sq.ft." +
		" Total total sales: 1,234,567." +
		" Based on 24 records."
	assert.Equal(t, expected, Fallback(d))
}

func TestFallbackWithoutCoverage(t *testing.T) {
	tests := []struct {
		name     string
		coverage string
	}{
		{name: "empty coverage", coverage: ""},
		{name: "not available", coverage: "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Digest{Area: "Baner", RecordCount: 3, YearCoverage: tt.coverage}
			assert.Equal(t, "Baner analysis from uploaded data. Based on 3 records.", Fallback(d))
		})
	}
}

func TestFallbackFigureOrderIsStable(t *testing.T) {
	d := Digest{
		Area:         "Wakad",
		RecordCount:  1,
		YearCoverage: "2021-2021",
		AverageRates: []Figure{
			{Label: "Flat Weighted Average Rate", Value: 9000},
			{Label: "Shop Weighted Average Rate", Value: 15000},
		},
	}

	out := Fallback(d)
	flat := "Average flat weighted average rate"
	shop := "Average shop weighted average rate"
	assert.Contains(t, out, flat)
	assert.Contains(t, out, shop)
	assert.Less(t, strings.Index(out, flat), strings.Index(out, shop))
}
