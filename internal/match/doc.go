// Package match finds near misses between words, used to suggest the
// intended word when an ordering directive names a word with no emoji.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings, by rune
//   - Suggest: ranks the closest candidates within a distance budget
package match
