// Package gen renders the word→emojis table into the files consumed by the
// input method: the OpenCC emoji lexicon and the tips list.
//
// Rendering is deterministic: the same table (and tips input) always yields
// byte-identical content, so regenerated files diff cleanly.
//
// Output formats:
//   - Lexicon: "word\tword 🍉 🥝", one line per word, ordered by the word's
//     first emoji and then by the word itself
//   - Tips: "表情：🍉\tword" for every word without a hand-written tip,
//     merged with the preserved lines and sorted as whole lines
package gen
