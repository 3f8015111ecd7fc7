// Package narrative produces the human-readable summary sentence attached to
// an area analysis. A Generator may be plugged in to produce richer text; the
// deterministic Fallback works without one and is what tests rely on.
package narrative

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Figure is one labelled number in a digest. Slices keep the caller's order
// so the fallback sentence is deterministic.
type Figure struct {
	Label string
	Value float64
}

// Digest is the structured input handed to a generator: small enough to ship
// to an external service, complete enough to write a sentence from.
type Digest struct {
	Area         string
	RecordCount  int
	YearCoverage string
	AverageRates []Figure
	SalesTotals  []Figure
}

// Generator turns a digest into free text. Implementations may fail; callers
// fall back to Fallback on any error.
type Generator interface {
	Generate(ctx context.Context, d Digest) (string, error)
}

// Fallback builds the deterministic local narrative: year coverage, average
// rate per available price column, sales/units totals, record count.
func Fallback(d Digest) string {
	var b strings.Builder

	if d.YearCoverage != "" && d.YearCoverage != "N/A" {
		fmt.Fprintf(&b, "%s shows data for %s.", d.Area, d.YearCoverage)
	} else {
		fmt.Fprintf(&b, "%s analysis from uploaded data.", d.Area)
	}

	for _, f := range d.AverageRates {
		fmt.Fprintf(&b, " Average %s: ₹%s per sq.ft.", strings.ToLower(f.Label), grouped(f.Value))
	}
	for _, f := range d.SalesTotals {
		fmt.Fprintf(&b, " Total %s: %s.", strings.ToLower(f.Label), grouped(f.Value))
	}

	fmt.Fprintf(&b, " Based on %d records.", d.RecordCount)
	return b.String()
}

// grouped renders a value with thousands-separator commas, zero decimals.
func grouped(f float64) string {
	s := strconv.FormatFloat(math.Round(f), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
