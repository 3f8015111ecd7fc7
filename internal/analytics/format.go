package analytics

import (
	"math"
	"strconv"
	"strings"
)

func itoa(v int) string { return strconv.Itoa(v) }

// groupThousands renders a float rounded to zero decimal places with
// thousands-separator commas, e.g. 1234567.8 -> "1,234,568".
func groupThousands(f float64) string {
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
