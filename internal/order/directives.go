package order

import (
	"errors"
	"fmt"
	"strings"

	"emoji-generator/internal/diagnostic"
	"emoji-generator/internal/mapping"
	"emoji-generator/internal/source"
)

// Directive is the preferred emoji sequence for one word.
type Directive struct {
	Word   string
	Emojis []string
	// Line is the 1-based line number the directive was read from.
	Line int
}

// Rank returns the position of emoji in the directive, or -1 if it is not listed.
// Repeated emojis rank by their first occurrence.
func (d Directive) Rank(emoji string) int {
	for i, e := range d.Emojis {
		if e == emoji {
			return i
		}
	}

	return -1
}

// Directives holds the ordering directives of one source, keyed by word.
type Directives struct {
	// Source names where the directives came from.
	Source string
	// Diagnostics collects problems found while parsing.
	Diagnostics diagnostic.Diagnostics

	words  []string
	byWord map[string]Directive
}

// ParseDirectives parses lines of the form "word emoji1 emoji2 ...".
// A later line for the same word replaces the earlier one.
func ParseDirectives(src source.Source) (*Directives, error) {
	d := &Directives{
		Source: src.Name,
		byWord: make(map[string]Directive),
	}

	for line := range src.Lines() {
		if !line.Normalized() {
			d.Diagnostics.AddWarning(diagnostic.CodeNotNormalized,
				"line is not NFC-normalized", src.Name, line.Number)
		}

		fields := strings.Fields(line.Text)
		if len(fields) < 2 {
			d.Diagnostics.AddError(diagnostic.CodeMalformedLine,
				fmt.Sprintf("expected a word followed by emojis, got %q", line.Text), src.Name, line.Number)

			continue
		}

		word := fields[0]
		if prev, ok := d.byWord[word]; ok {
			d.Diagnostics.AddInfo(diagnostic.CodeDuplicateOrdered,
				fmt.Sprintf("ordering for %q replaces the one on line %d", word, prev.Line), src.Name, line.Number)
		} else {
			d.words = append(d.words, word)
		}

		d.byWord[word] = Directive{Word: word, Emojis: fields[1:], Line: line.Number}
	}

	if d.Diagnostics.HasErrors() {
		return d, errors.Join(mapping.ErrMalformedLine, d.Diagnostics.Error())
	}

	return d, nil
}

// LoadDirectives reads and parses an optional directives file. A missing file parses as empty.
func LoadDirectives(path string) (*Directives, error) {
	src, err := source.ReadOptional(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ordering file %s: %w", path, err)
	}

	return ParseDirectives(src)
}

// Len returns the number of directed words.
func (d *Directives) Len() int {
	if d == nil {
		return 0
	}

	return len(d.words)
}

// Get returns the directive for word.
func (d *Directives) Get(word string) (Directive, bool) {
	if d == nil {
		return Directive{}, false
	}

	dir, ok := d.byWord[word]

	return dir, ok
}

// Words returns the directed words in the order they first appeared.
func (d *Directives) Words() []string {
	if d == nil {
		return nil
	}

	return append([]string(nil), d.words...)
}
