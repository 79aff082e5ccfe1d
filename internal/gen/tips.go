package gen

import (
	"slices"
	"strings"

	"emoji-generator/internal/common"
	"emoji-generator/internal/mapping"
	"emoji-generator/internal/source"
)

// TipsResult is a rendered tips file.
type TipsResult struct {
	Content   []byte
	Preserved int
	Generated int
}

// RenderTips rebuilds the tips file.
//
// Lines of existing that start with prefix are generated content and are
// dropped. Every other non-empty line is kept verbatim, and its last field
// marks that word as already having a tip. Each remaining word gets a
// "prefix + first emoji + TAB + word" line. The result is sorted as whole
// lines, terminator included, so "a\tb" sorts before "a".
func RenderTips(wordEmojis *mapping.Table, existing source.Source, prefix string) TipsResult {
	var (
		lines      []string
		associated = make(map[string]bool)
		result     TipsResult
	)

	for _, line := range existing.RawLines() {
		if line == "" || strings.HasPrefix(line, prefix) {
			continue
		}

		lines = append(lines, line)
		result.Preserved++

		if word, ok := common.Last(strings.Fields(line)); ok {
			associated[word] = true
		}
	}

	for _, e := range sortedEntries(wordEmojis) {
		if associated[e.word] {
			continue
		}

		lines = append(lines, prefix+e.preferred()+"\t"+e.word)
		result.Generated++
	}

	slices.SortFunc(lines, func(a, b string) int {
		return strings.Compare(a+"\n", b+"\n")
	})

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	result.Content = []byte(b.String())

	return result
}
