// Package source loads the UTF-8 text inputs of the generator: emoji maps,
// ordering directives and the tips file.
//
// A Source is a named blob of decoded text. Lines iterates over its
// meaningful lines (trimmed, blank and '#' comment lines skipped), while
// RawLines keeps every line as written for pass-through rewriting.
package source
