package source

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned by ReadFile when a required file does not exist.
var ErrNotFound = errors.New("source not found")

// ErrInvalidUTF8 is returned by Decode when the data is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

const commentMarker = "#"

// Source is a named text input.
type Source struct {
	// Name identifies the source in diagnostics (a path or URL).
	Name string
	// Content is the decoded text.
	Content string
}

// Line is a meaningful line of a Source.
type Line struct {
	// Number is the 1-based line number within the source.
	Number int
	// Text is the line with surrounding whitespace removed.
	Text string
}

// Normalized reports whether the line text is in Unicode NFC form.
func (l Line) Normalized() bool {
	return norm.NFC.IsNormalString(l.Text)
}

// FromString creates a Source from already decoded text.
func FromString(name, content string) Source {
	return Source{Name: name, Content: content}
}

// Decode decodes UTF-8 data, dropping a leading byte order mark.
// Invalid byte sequences are rejected rather than replaced.
func Decode(name string, data []byte) (Source, error) {
	if !utf8.Valid(data) {
		return Source{}, fmt.Errorf("decoding %s: %w", name, ErrInvalidUTF8)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	text, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return Source{}, fmt.Errorf("decoding %s: %w", name, err)
	}

	return Source{Name: name, Content: string(text)}, nil
}

// ReadFile reads and decodes the file at path.
// A missing file yields an error wrapping ErrNotFound.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Source{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return Source{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return Decode(path, data)
}

// ReadOptional reads the file at path, treating a missing file as empty content.
func ReadOptional(path string) (Source, error) {
	src, err := ReadFile(path)
	if errors.Is(err, ErrNotFound) {
		return FromString(path, ""), nil
	}

	return src, err
}

// IsEmpty reports whether the source has no meaningful lines.
func (s Source) IsEmpty() bool {
	for range s.Lines() {
		return false
	}

	return true
}

// Lines yields the trimmed, non-blank, non-comment lines of the source.
func (s Source) Lines() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i, raw := range s.RawLines() {
			text := strings.TrimSpace(raw)
			if text == "" || strings.HasPrefix(text, commentMarker) {
				continue
			}

			if !yield(Line{Number: i + 1, Text: text}) {
				return
			}
		}
	}
}

// RawLines splits the content into lines without their terminators.
// A trailing newline does not produce an empty final line.
func (s Source) RawLines() []string {
	if s.Content == "" {
		return nil
	}

	lines := strings.Split(strings.TrimSuffix(s.Content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
