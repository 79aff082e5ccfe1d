package match

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

// DefaultLimit is the number of suggestions returned by Suggest.
const DefaultLimit = 3

// Suggest returns up to limit candidates closest to word, nearest first.
// A candidate qualifies when its distance is at most half the rune length of
// word (rounded up) and it differs from word. Ties keep candidate order.
func Suggest(word string, candidates []string, limit int) []string {
	if limit <= 0 || word == "" {
		return nil
	}

	budget := (utf8.RuneCountInString(word) + 1) / 2

	type scored struct {
		word     string
		distance int
	}

	var hits []scored

	for _, c := range candidates {
		if c == word {
			continue
		}

		if d := Levenshtein(word, c); d <= budget {
			hits = append(hits, scored{word: c, distance: d})
		}
	}

	slices.SortStableFunc(hits, func(a, b scored) int {
		return cmp.Compare(a.distance, b.distance)
	})

	out := make([]string, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.word)
	}

	return out
}
