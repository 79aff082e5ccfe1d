package mapping

import (
	"errors"
	"fmt"

	"emoji-generator/internal/diagnostic"
	"emoji-generator/internal/source"
)

// File is a parsed emoji map source.
type File struct {
	// Source names where the entries came from.
	Source string
	// Entries are the parsed lines in source order.
	Entries []Entry
	// Diagnostics collects problems found while parsing.
	Diagnostics diagnostic.Diagnostics
}

// LoadFile reads and parses an optional map file. A missing file parses as empty.
func LoadFile(path string) (*File, error) {
	src, err := source.ReadOptional(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", path, err)
	}

	return Parse(src)
}

// Parse parses every meaningful line of src.
// All malformed lines are reported together; any of them makes the whole file invalid.
func Parse(src source.Source) (*File, error) {
	f := &File{Source: src.Name}

	for line := range src.Lines() {
		if !line.Normalized() {
			f.Diagnostics.AddWarning(diagnostic.CodeNotNormalized,
				"line is not NFC-normalized", src.Name, line.Number)
		}

		entry, err := ParseLine(line.Text)
		if err != nil {
			f.Diagnostics.AddError(diagnostic.CodeMalformedLine, err.Error(), src.Name, line.Number)
			continue
		}

		entry.Line = line.Number
		f.Entries = append(f.Entries, entry)
	}

	if f.Diagnostics.HasErrors() {
		return f, errors.Join(ErrMalformedLine, f.Diagnostics.Error())
	}

	return f, nil
}
