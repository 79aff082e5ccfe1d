package diagnostic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"emoji-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeMalformedLine    = "E001"
	CodeNotNormalized    = "W001"
	CodeUnknownWord      = "I001"
	CodeUnknownEmoji     = "I002"
	CodeDuplicateOrdered = "I003"
)

// Diagnostics holds all diagnostic information from parsing.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Source names the input this relates to (file path or URL).
	Source string
	// Line is the 1-based line number in Source, or 0 if not line-bound.
	Line int
	// Suggestions are likely intended values.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Level maps the severity onto a log level.
func (s DiagnosticSeverity) Level() slog.Level {
	switch s {
	case DiagnosticError:
		return slog.LevelError
	case DiagnosticWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, source string, line int) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, source string, line int) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, source string, line int) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// Add adds a diagnostic to the group matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every diagnostic to logger at the level matching its severity.
func (d *Diagnostics) Log(logger *slog.Logger) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			logger.Log(context.Background(), diag.Severity.Level(), diag.Message,
				slog.String("code", diag.Code),
				slog.String("source", diag.Source),
				slog.Int("line", diag.Line),
				slog.Any("suggestions", diag.Suggestions),
			)
		}
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix string

	switch {
	case d.Source != "" && d.Line > 0:
		prefix = fmt.Sprintf("%s:%d", d.Source, d.Line)
	case d.Source != "":
		prefix = d.Source
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if prefix != "" {
		return prefix + ": " + msg
	}

	return msg
}
