package order

import (
	"cmp"
	"fmt"
	"slices"

	"emoji-generator/internal/diagnostic"
	"emoji-generator/internal/mapping"
	"emoji-generator/internal/match"
)

// Invert turns an emoji→words table into word→emojis.
// Words appear in the order they are first met while walking emojis in table order,
// and each word lists its emojis in that same order.
func Invert(emojiWords *mapping.Table) *mapping.Table {
	wordEmojis := mapping.NewTable()

	for emoji, words := range emojiWords.All() {
		for _, word := range words {
			wordEmojis.Add(word, emoji)
		}
	}

	return wordEmojis
}

// Apply reorders the emojis of every directed word present in wordEmojis.
// Ranked emojis come first in directive order; the rest keep their relative order.
// Directive words or emojis that match nothing are reported as infos and otherwise ignored;
// unknown words carry the closest known words as suggestions.
func Apply(wordEmojis *mapping.Table, directives *Directives) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	for _, word := range directives.Words() {
		dir, _ := directives.Get(word)

		if !wordEmojis.Has(word) {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticInfo,
				Code:        diagnostic.CodeUnknownWord,
				Message:     fmt.Sprintf("word %q has no emoji", word),
				Source:      directives.Source,
				Line:        dir.Line,
				Suggestions: match.Suggest(word, wordEmojis.Keys(), match.DefaultLimit),
			})

			continue
		}

		emojis := wordEmojis.Get(word)

		for _, e := range dir.Emojis {
			if !wordEmojis.Contains(word, e) {
				diags.AddInfo(diagnostic.CodeUnknownEmoji,
					fmt.Sprintf("emoji %s is not associated with %q", e, word), directives.Source, dir.Line)
			}
		}

		wordEmojis.Set(word, Sort(emojis, dir))
	}

	return diags
}

// Sort returns emojis stably sorted by their rank in dir; unranked emojis go last.
func Sort(emojis []string, dir Directive) []string {
	sorted := slices.Clone(emojis)

	rank := func(e string) int {
		if r := dir.Rank(e); r >= 0 {
			return r
		}

		return len(dir.Emojis)
	}

	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(rank(a), rank(b))
	})

	return sorted
}

// WordEmojis inverts emojiWords and applies directives to the result.
func WordEmojis(emojiWords *mapping.Table, directives *Directives) (*mapping.Table, diagnostic.Diagnostics) {
	wordEmojis := Invert(emojiWords)
	diags := Apply(wordEmojis, directives)

	return wordEmojis, diags
}
