// Package diagnostic provides structured errors, warnings and notes
// collected while parsing emoji map and ordering sources.
//
// Key capabilities:
//   - Malformed line errors with source name and line number
//   - Warnings for lines that are not NFC-normalized
//   - Notes for ordering directives that match nothing
package diagnostic
