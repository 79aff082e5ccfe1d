// Package mapping parses emoji map sources and merges them into an
// ordered emoji→words table.
//
// # Line format
//
// Every meaningful line names one emoji followed by a whitespace separated
// word list:
//
//	# comments and blank lines are ignored
//	😀 happy joyful
//	😀 -joyful excited
//
// A word prefixed with '-' is a removal: it drops the word from the emoji's
// list and prevents the same line from adding it back.
//
// # Merge order
//
// Sources are applied in the order given (upstream first, then local
// overrides). Later lines for the same emoji extend its word list rather
// than replacing it, and a word is never listed twice for one emoji, so
// merging the same content twice yields the same table.
package mapping
