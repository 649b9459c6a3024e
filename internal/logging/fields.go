// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError = "error"
	FieldPath  = "path"
	FieldFiles = "files"

	// Parse fields.
	FieldStatements = "statements"
	FieldTriples    = "triples"
	FieldTokens     = "tokens"
	FieldRecovered  = "errors_recovered"
	FieldMaxDepth   = "max_depth"
	FieldElapsedMS  = "elapsed_ms"

	// Diagnostic fields.
	FieldSeverity = "severity"
	FieldFormat   = "format"
	FieldWarnings = "warnings"
	FieldErrors   = "errors"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
