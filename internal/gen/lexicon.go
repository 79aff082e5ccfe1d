package gen

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	"emoji-generator/internal/common"
	"emoji-generator/internal/mapping"
)

// wordEntry is a word with its ordered emojis.
type wordEntry struct {
	word   string
	emojis []string
}

// preferred returns the highest-priority emoji.
func (e wordEntry) preferred() string {
	first, _ := common.First(e.emojis)
	return first
}

// sortedEntries returns the words of the table that have at least one emoji,
// ordered by preferred emoji and then by word, both compared by code point.
func sortedEntries(wordEmojis *mapping.Table) []wordEntry {
	entries := make([]wordEntry, 0, wordEmojis.Len())

	for word, emojis := range wordEmojis.All() {
		if common.IsEmpty(emojis) {
			continue
		}

		entries = append(entries, wordEntry{word: word, emojis: emojis})
	}

	slices.SortFunc(entries, func(a, b wordEntry) int {
		return cmp.Or(
			strings.Compare(a.preferred(), b.preferred()),
			strings.Compare(a.word, b.word),
		)
	})

	return entries
}

// RenderLexicon renders the OpenCC lexicon: "word\tword e1 e2 ...\n" per word.
// It returns the content and the number of lines.
func RenderLexicon(wordEmojis *mapping.Table) ([]byte, int) {
	entries := sortedEntries(wordEmojis)

	var buf bytes.Buffer

	for _, e := range entries {
		buf.WriteString(e.word)
		buf.WriteByte('\t')
		buf.WriteString(e.word)

		for _, emoji := range e.emojis {
			buf.WriteByte(' ')
			buf.WriteString(emoji)
		}

		buf.WriteByte('\n')
	}

	return buf.Bytes(), len(entries)
}
