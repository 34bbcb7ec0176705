// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking suggestion candidates
// ABOUTME: Find exposes match details; Rank returns the matching strings only

package fuzzy

import "github.com/sahilm/fuzzy"

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Rank returns the items matching pattern, best first. An empty pattern
// returns a copy of items in their original order.
func Rank(pattern string, items []string) []string {
	if pattern == "" {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	results := fuzzy.Find(pattern, items)
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Str
	}
	return out
}
