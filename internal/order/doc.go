// Package order inverts the emoji→words table into word→emojis and applies
// preferred emoji orderings.
//
// An ordering directives file lists, per word, the emojis that should come
// first for that word:
//
//	# word  emoji...
//	西瓜 🍉 🥝
//
// Directives only reorder. Emojis the directive does not mention keep their
// relative order after the ranked ones, and directive entries that match
// nothing are ignored.
package order
