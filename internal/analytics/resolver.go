package analytics

import (
	"sort"
	"strings"

	"github.com/JagtapChetan17/Real-Estate-Analysis-Chatbot/internal/dataset"
)

// Subset is the materialized result of resolving an area token against the
// active table. Recomputed per query, never cached.
type Subset struct {
	Table  *dataset.Table
	Column string
	Token  string
}

// IsEmpty reports whether the resolution found no rows.
func (s Subset) IsEmpty() bool { return s.Table == nil || s.Table.IsEmpty() }

// ResolveArea filters the table down to rows whose identity column contains
// the area token, case-insensitively. Identity columns are tried in priority
// order and the first one yielding any match wins outright; later candidates
// are never consulted. No match yields an empty subset, not an error.
func ResolveArea(t *dataset.Table, token string) Subset {
	needle := strings.ToLower(strings.TrimSpace(token))
	if t == nil || t.IsEmpty() || needle == "" {
		return Subset{Table: dataset.Empty(), Token: needle}
	}

	for _, col := range IdentityColumns {
		if !t.HasColumn(col) {
			continue
		}
		rows := t.MatchRows(col, needle)
		if len(rows) > 0 {
			return Subset{Table: t.SelectRows(rows), Column: col, Token: needle}
		}
	}

	return Subset{Table: dataset.Empty(), Token: needle}
}

// ListAreas returns the distinct, trimmed values of the first populated
// identity column, ascending. An empty table yields an empty list.
func ListAreas(t *dataset.Table) []string {
	if t == nil || t.IsEmpty() {
		return []string{}
	}

	for _, name := range IdentityColumns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		seen := make(map[string]struct{})
		var areas []string
		for _, v := range col.Values {
			if v.Null {
				continue
			}
			area := strings.TrimSpace(v.String())
			if area == "" {
				continue
			}
			if _, dup := seen[area]; dup {
				continue
			}
			seen[area] = struct{}{}
			areas = append(areas, area)
		}
		if len(areas) > 0 {
			sort.Strings(areas)
			return areas
		}
	}

	return []string{}
}
