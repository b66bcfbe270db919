package model

import (
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// FindStep resolves a query to a zero-based step index. A number selects
// the step by its 1-based position, otherwise titles are matched exactly
// (ignoring case) and then fuzzily, preferring the closest match.
func (d *Deck) FindStep(query string) (int, bool) {
	query = strings.TrimSpace(query)
	if d == nil || query == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(query); err == nil {
		if n >= 1 && n <= len(d.Steps) {
			return n - 1, true
		}
		return 0, false
	}

	for i, s := range d.Steps {
		if strings.EqualFold(s.Title, query) {
			return i, true
		}
	}

	best, bestRank := 0, -1
	for i, s := range d.Steps {
		rank := fuzzy.RankMatchFold(query, s.Title)
		if rank < 0 {
			continue
		}
		if bestRank < 0 || rank < bestRank {
			best, bestRank = i, rank
		}
	}
	return best, bestRank >= 0
}
