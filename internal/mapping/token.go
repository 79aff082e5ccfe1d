package mapping

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TokenKind -output=tokenkind_string.go

// RemovalMarker prefixes a word that should be removed from an emoji.
const RemovalMarker = "-"

// TokenKind tells whether a word token adds or removes an association.
type TokenKind int

const (
	TokenAdd TokenKind = iota
	TokenRemove
)

// Token is a single word of a map line.
type Token struct {
	Kind TokenKind
	Word string
}

// Add returns an adding token for word.
func Add(word string) Token {
	return Token{Kind: TokenAdd, Word: word}
}

// Remove returns a removing token for word.
func Remove(word string) Token {
	return Token{Kind: TokenRemove, Word: word}
}

// ParseToken classifies a raw word token.
// Every leading removal marker is stripped; a token made only of markers is malformed.
func ParseToken(raw string) (Token, error) {
	if !strings.HasPrefix(raw, RemovalMarker) {
		return Add(raw), nil
	}

	word := strings.TrimLeft(raw, RemovalMarker)
	if word == "" {
		return Token{}, fmt.Errorf("%w: removal marker %q without a word", ErrMalformedLine, raw)
	}

	return Remove(word), nil
}

// String returns the token as it would appear in a map line.
func (t Token) String() string {
	if t.Kind == TokenRemove {
		return RemovalMarker + t.Word
	}

	return t.Word
}
