package mapping

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned when a line cannot be split into an emoji and a word list.
var ErrMalformedLine = errors.New("malformed line")

// Entry is one parsed map line.
type Entry struct {
	// Emoji is the key of the line.
	Emoji string
	// Tokens are the words in the order written.
	Tokens []Token
	// Line is the 1-based line number in its source.
	Line int
}

// ParseLine parses a trimmed, non-comment map line.
func ParseLine(text string) (Entry, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return Entry{}, fmt.Errorf("%w: expected an emoji followed by words, got %q", ErrMalformedLine, text)
	}

	entry := Entry{
		Emoji:  fields[0],
		Tokens: make([]Token, 0, len(fields)-1),
	}

	for _, raw := range fields[1:] {
		tok, err := ParseToken(raw)
		if err != nil {
			return Entry{}, err
		}

		entry.Tokens = append(entry.Tokens, tok)
	}

	return entry, nil
}

// Removed returns the set of words this entry removes.
func (e Entry) Removed() map[string]bool {
	removed := make(map[string]bool)

	for _, tok := range e.Tokens {
		if tok.Kind == TokenRemove {
			removed[tok.Word] = true
		}
	}

	return removed
}
