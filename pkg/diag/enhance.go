package diag

import "github.com/yaklabco/goturtle/pkg/turtle"

// enhancement carries the canned help and note text for an error type.
type enhancement struct {
	suggestion string
	note       string
}

var enhancements = map[turtle.ErrorType]enhancement{
	turtle.ErrInvalidCharacter: {
		suggestion: "remove or escape the offending character",
	},
	turtle.ErrUnterminatedString: {
		suggestion: "add a closing quote before the end of the line",
		note:       "plain string literals may not span multiple lines; use \"\"\"...\"\"\" for multi-line text",
	},
	turtle.ErrInvalidEscape: {
		suggestion: "valid escapes are \\t \\b \\n \\r \\f \\\" \\' \\\\ \\uXXXX \\UXXXXXXXX",
	},
	turtle.ErrInvalidUnicodeEscape: {
		suggestion: "use \\u followed by 4 hex digits or \\U followed by 8 hex digits",
		note:       "surrogate code points and values above U+10FFFF are not valid",
	},
	turtle.ErrInvalidIRI: {
		suggestion: "IRIs may not contain spaces, quotes, angle brackets, or control characters",
	},
	turtle.ErrInvalidLanguageTag: {
		suggestion: "use a BCP 47 tag such as @en or @en-US",
	},
	turtle.ErrNumberTooLarge: {
		note: "integer literals must fit in 64 bits",
	},
	turtle.ErrExpectedToken: {
		suggestion: "check for a missing or misplaced token before this point",
	},
	turtle.ErrDuplicatePrefix: {
		suggestion: "remove the earlier @prefix declaration or rename one of them",
		note:       "the later declaration replaces the earlier one",
	},
	turtle.ErrUndefinedPrefix: {
		suggestion: "declare the prefix with @prefix before using it",
	},
	turtle.ErrInvalidSubject: {
		note: "a subject must be an IRI, a prefixed name, or a blank node",
	},
	turtle.ErrInvalidPredicate: {
		note: "a predicate must be an IRI, a prefixed name, or the keyword 'a'",
	},
	turtle.ErrMissingDot: {
		suggestion: "insert '.' to terminate the statement",
	},
	turtle.ErrMissingSemicolon: {
		suggestion: "separate predicate-object pairs with ';'",
	},
	turtle.ErrInvalidCollection: {
		suggestion: "close the collection with ')'",
	},
	turtle.ErrInvalidBlankNode: {
		suggestion: "close the property list with ']'",
	},
	turtle.ErrInvalidBaseIRI: {
		suggestion: "@base requires an absolute IRI such as <http://example.org/>",
	},
}

// Enhance fills in the suggestion and note for a diagnostic based on
// its error type. Text already present on the error is kept.
func Enhance(perr *turtle.ParseError) *turtle.ParseError {
	enh, ok := enhancements[perr.Type]
	if !ok {
		return perr
	}
	if perr.Suggestion == "" {
		perr.Suggestion = enh.suggestion
	}
	if perr.Note == "" {
		perr.Note = enh.note
	}
	return perr
}
