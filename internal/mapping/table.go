package mapping

import (
	"iter"
	"slices"
)

// Table is an insertion-ordered map from a key to a list of unique values.
//
// It holds both directions of the association: emoji→words as built by
// Merge, and word→emojis as built by the order package.
type Table struct {
	keys   []string
	values map[string][]string
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{values: make(map[string][]string)}
}

// Len returns the number of keys.
func (t *Table) Len() int {
	return len(t.keys)
}

// Pairs returns the number of key/value associations.
func (t *Table) Pairs() int {
	n := 0
	for _, values := range t.values {
		n += len(values)
	}

	return n
}

// Keys returns the keys in first-seen order.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Get returns a copy of the values of key.
func (t *Table) Get(key string) []string {
	return slices.Clone(t.values[key])
}

// Contains reports whether value is associated with key.
func (t *Table) Contains(key, value string) bool {
	return slices.Contains(t.values[key], value)
}

// Ensure creates an empty entry for key if it is missing.
func (t *Table) Ensure(key string) {
	if _, ok := t.values[key]; ok {
		return
	}

	t.keys = append(t.keys, key)
	t.values[key] = []string{}
}

// Add appends value to key unless it is already present.
// It reports whether the value was added.
func (t *Table) Add(key, value string) bool {
	t.Ensure(key)

	if slices.Contains(t.values[key], value) {
		return false
	}

	t.values[key] = append(t.values[key], value)

	return true
}

// Remove drops value from key. The key itself stays in the table.
// It reports whether the value was present.
func (t *Table) Remove(key, value string) bool {
	values, ok := t.values[key]
	if !ok {
		return false
	}

	n := len(values)
	t.values[key] = slices.DeleteFunc(values, func(v string) bool { return v == value })

	return len(t.values[key]) != n
}

// Set replaces the values of key, dropping duplicates while keeping first occurrences.
func (t *Table) Set(key string, values []string) {
	t.Ensure(key)

	unique := make([]string, 0, len(values))
	for _, v := range values {
		if !slices.Contains(unique, v) {
			unique = append(unique, v)
		}
	}

	t.values[key] = unique
}

// All iterates over keys in first-seen order with copies of their values.
func (t *Table) All() iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		for _, key := range t.keys {
			if !yield(key, slices.Clone(t.values[key])) {
				return
			}
		}
	}
}
