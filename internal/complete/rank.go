package complete

import (
	"sort"
	"strings"

	"notemark/internal/marker"
)

// Fuzzy match tiers. Exact-prefix matches always outrank substring
// matches, which outrank scattered-subsequence matches.
const (
	tierPrefix      = 300
	tierSubstring   = 200
	tierSubsequence = 100
)

// rank fuzzy-matches the query against the candidate table and returns
// the full ranked result, grouped by the fixed category order.
func rank(candidates []marker.Candidate, query string) []marker.Candidate {
	q := marker.Fold(strings.TrimSpace(query))

	type scored struct {
		cand  marker.Candidate
		score int
	}
	matched := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		s := score(c, q)
		if s <= 0 {
			continue
		}
		matched = append(matched, scored{cand: c, score: s})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		ri := marker.CategoryRank(matched[i].cand.Category)
		rj := marker.CategoryRank(matched[j].cand.Category)
		if ri != rj {
			return ri < rj
		}
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].cand.Value < matched[j].cand.Value
	})

	out := make([]marker.Candidate, len(matched))
	for i, m := range matched {
		out[i] = m.cand
	}
	return out
}

// score rates one candidate against a folded query. Zero means no match.
func score(c marker.Candidate, q string) int {
	if q == "" {
		return 1
	}
	value := marker.Fold(c.Value)
	label := marker.Fold(c.Label)

	best := 0
	for _, text := range []string{value, label} {
		s := 0
		switch {
		case strings.HasPrefix(text, q):
			s = tierPrefix - len(text)
		case strings.Contains(text, q):
			s = tierSubstring - strings.Index(text, q)
		default:
			if spread, ok := subsequenceSpread(text, q); ok {
				s = tierSubsequence - spread
			}
		}
		if s > best {
			best = s
		}
	}
	return best
}

// subsequenceSpread reports whether q appears in text as an in-order
// subsequence, and how many characters the match spans beyond its own
// length (tighter matches score higher).
func subsequenceSpread(text, q string) (int, bool) {
	first, last := -1, -1
	ti := 0
	for _, qr := range q {
		idx := strings.IndexRune(text[ti:], qr)
		if idx < 0 {
			return 0, false
		}
		pos := ti + idx
		if first < 0 {
			first = pos
		}
		last = pos
		ti = pos + 1
	}
	if first < 0 {
		return 0, false
	}
	return last - first + 1 - len(q), true
}
