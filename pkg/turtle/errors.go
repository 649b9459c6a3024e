package turtle

import (
	"fmt"

	"github.com/yaklabco/goturtle/pkg/ttlast"
)

// ErrorType identifies what went wrong, across the lexer, parser,
// semantic, and internal categories.
type ErrorType int

// Error types, grouped by category.
const (
	// Lexer errors.
	ErrInvalidCharacter ErrorType = iota
	ErrUnterminatedString
	ErrInvalidEscape
	ErrInvalidUnicodeEscape
	ErrInvalidIRI
	ErrInvalidLanguageTag
	ErrNumberTooLarge
	ErrInvalidNumber

	// Parser errors.
	ErrUnexpectedToken
	ErrExpectedToken
	ErrInvalidSyntax
	ErrDuplicatePrefix
	ErrUndefinedPrefix
	ErrInvalidSubject
	ErrInvalidPredicate
	ErrInvalidObject
	ErrMissingDot
	ErrMissingSemicolon
	ErrInvalidCollection
	ErrInvalidBlankNode

	// Semantic errors.
	ErrCircularPrefix
	ErrInvalidBaseIRI
	ErrResourceNotFound

	// Internal errors.
	ErrOutOfMemory
	ErrIOError
	ErrInternal
)

var errorTypeNames = [...]string{
	ErrInvalidCharacter:     "invalid-character",
	ErrUnterminatedString:   "unterminated-string",
	ErrInvalidEscape:        "invalid-escape",
	ErrInvalidUnicodeEscape: "invalid-unicode-escape",
	ErrInvalidIRI:           "invalid-iri",
	ErrInvalidLanguageTag:   "invalid-language-tag",
	ErrNumberTooLarge:       "number-too-large",
	ErrInvalidNumber:        "invalid-number",
	ErrUnexpectedToken:      "unexpected-token",
	ErrExpectedToken:        "expected-token",
	ErrInvalidSyntax:        "invalid-syntax",
	ErrDuplicatePrefix:      "duplicate-prefix",
	ErrUndefinedPrefix:      "undefined-prefix",
	ErrInvalidSubject:       "invalid-subject",
	ErrInvalidPredicate:     "invalid-predicate",
	ErrInvalidObject:        "invalid-object",
	ErrMissingDot:           "missing-dot",
	ErrMissingSemicolon:     "missing-semicolon",
	ErrInvalidCollection:    "invalid-collection",
	ErrInvalidBlankNode:     "invalid-blank-node",
	ErrCircularPrefix:       "circular-prefix",
	ErrInvalidBaseIRI:       "invalid-base-iri",
	ErrResourceNotFound:     "resource-not-found",
	ErrOutOfMemory:          "out-of-memory",
	ErrIOError:              "io-error",
	ErrInternal:             "internal-error",
}

// String returns the stable kebab-case name of the error type.
func (t ErrorType) String() string {
	if t >= 0 && int(t) < len(errorTypeNames) {
		return errorTypeNames[t]
	}
	return "unknown-error"
}

// ParseErrorType parses the kebab-case name back into an ErrorType.
func ParseErrorType(name string) (ErrorType, bool) {
	for t, n := range errorTypeNames {
		if n == name {
			return ErrorType(t), true
		}
	}
	return 0, false
}

// Category groups error types by the subsystem that raises them.
type Category int

// Error categories.
const (
	CategoryLexer Category = iota
	CategoryParser
	CategorySemantic
	CategoryInternal
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLexer:
		return "lexer"
	case CategoryParser:
		return "parser"
	case CategorySemantic:
		return "semantic"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// Category returns the subsystem an error type belongs to.
func (t ErrorType) Category() Category {
	switch {
	case t <= ErrInvalidNumber:
		return CategoryLexer
	case t <= ErrInvalidBlankNode:
		return CategoryParser
	case t <= ErrResourceNotFound:
		return CategorySemantic
	default:
		return CategoryInternal
	}
}

// Severity classifies how bad a diagnostic is.
type Severity int

// Severities, ordered from mildest to fatal.
const (
	SeverityWarning Severity = iota
	SeverityError
	SeverityFatal
)

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// DefaultSeverity returns the severity an error type carries unless the
// reporter reclassifies it.
func (t ErrorType) DefaultSeverity() Severity {
	switch t {
	case ErrDuplicatePrefix:
		return SeverityWarning
	case ErrOutOfMemory, ErrIOError, ErrInternal:
		return SeverityFatal
	default:
		return SeverityError
	}
}

// ParseError is a single collected diagnostic.
type ParseError struct {
	Type       ErrorType
	Severity   Severity
	Span       ttlast.Span
	Message    string
	Suggestion string
	Note       string
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Span.Line, e.Span.Column, e.Severity, e.Message)
}

// IsFatal reports whether the error aborts parsing regardless of the
// recovery setting.
func (e *ParseError) IsFatal() bool {
	return e.Severity == SeverityFatal || e.Type.Category() == CategoryInternal
}

// ErrorList accumulates diagnostics up to a cap. The zero value is not
// usable; construct with NewErrorList.
type ErrorList struct {
	errs      []*ParseError
	maxErrors int
	warnings  int
	errors    int
	fatals    int
}

// NewErrorList creates a list capped at maxErrors; zero or negative means
// unbounded.
func NewErrorList(maxErrors int) *ErrorList {
	return &ErrorList{maxErrors: maxErrors}
}

// Add appends an error unless the cap has been reached. It returns false
// once the list is at or beyond the cap.
func (l *ErrorList) Add(err *ParseError) bool {
	if l.AtCap() {
		return false
	}
	l.errs = append(l.errs, err)
	switch err.Severity {
	case SeverityWarning:
		l.warnings++
	case SeverityError:
		l.errors++
	case SeverityFatal:
		l.fatals++
	}
	return true
}

// AtCap reports whether the cap has been reached.
func (l *ErrorList) AtCap() bool {
	return l.maxErrors > 0 && len(l.errs) >= l.maxErrors
}

// Len returns the number of collected diagnostics.
func (l *ErrorList) Len() int { return len(l.errs) }

// Errors returns the collected diagnostics in insertion order.
func (l *ErrorList) Errors() []*ParseError { return l.errs }

// Warnings returns the count of warning-severity diagnostics.
func (l *ErrorList) Warnings() int { return l.warnings }

// ErrorCount returns the count of error-severity diagnostics.
func (l *ErrorList) ErrorCount() int { return l.errors }

// Fatals returns the count of fatal diagnostics.
func (l *ErrorList) Fatals() int { return l.fatals }

// HasErrors reports whether anything worse than a warning was collected.
func (l *ErrorList) HasErrors() bool { return l.errors > 0 || l.fatals > 0 }
