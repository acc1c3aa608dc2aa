package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestions caps the team names listed under the team input.
const maxSuggestions = 4

// rankTeams orders configured team names by how well they match a partly typed query.
// Prefix matches come first, then substring matches, then names whose leading
// characters are within a few typos of the query. Ties keep configuration order.
// An empty query lists the names as configured.
func rankTeams(names []string, query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return limit(names, maxSuggestions)
	}

	type scored struct {
		name string
		tier int
		dist int
	}
	var hits []scored
	for _, name := range names {
		n := strings.ToLower(name)
		switch {
		case n == q:
			// Already typed in full
			continue
		case strings.HasPrefix(n, q):
			hits = append(hits, scored{name: name, tier: 0})
		case strings.Contains(n, q):
			hits = append(hits, scored{name: name, tier: 1})
		default:
			d := levenshtein.ComputeDistance(q, leading(n, len([]rune(q))))
			if d <= typoBudget(q) {
				hits = append(hits, scored{name: name, tier: 2, dist: d})
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].tier != hits[j].tier {
			return hits[i].tier < hits[j].tier
		}
		return hits[i].dist < hits[j].dist
	})

	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.name)
	}
	return limit(out, maxSuggestions)
}

// typoBudget is the edit distance tolerated for a query. Queries shorter
// than three characters must match exactly.
func typoBudget(q string) int {
	n := len([]rune(q))
	if n < 3 {
		return 0
	}
	return n/4 + 1
}

// leading returns the first n runes of s.
func leading(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func limit(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
