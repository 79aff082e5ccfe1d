package mapping

// Apply merges one entry into the table.
// Removed words are filtered out of the existing list first, then the
// entry's other words are appended unless already present or removed by
// the same line.
func (t *Table) Apply(e Entry) {
	t.Ensure(e.Emoji)

	removed := e.Removed()
	for word := range removed {
		t.Remove(e.Emoji, word)
	}

	for _, tok := range e.Tokens {
		if tok.Kind != TokenAdd || removed[tok.Word] {
			continue
		}

		t.Add(e.Emoji, tok.Word)
	}
}

// Merge applies files in order into a new emoji→words table.
func Merge(files ...*File) *Table {
	t := NewTable()

	for _, f := range files {
		if f == nil {
			continue
		}

		for _, e := range f.Entries {
			t.Apply(e)
		}
	}

	return t
}
