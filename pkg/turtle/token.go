package turtle

import "github.com/yaklabco/goturtle/pkg/ttlast"

// TokenKind classifies a lexed token.
type TokenKind uint16

// Token kinds. An `@word` that is not a known directive is emitted as
// TokAt followed by a TokIdent carrying the word, so the parser can treat
// it as a language tag (after a string literal) or reject it.
const (
	TokEOF TokenKind = iota
	TokError

	TokIRIRef         // <...>, text holds the decoded IRI without angles
	TokPNameLN        // prefix:local
	TokPNameNS        // prefix: (empty local part)
	TokBlankNodeLabel // _:label, text holds the label
	TokString         // short or long quoted literal, escapes decoded
	TokInteger
	TokDecimal
	TokDouble
	TokBoolean
	TokIdent // bare word, e.g. the tag after a degraded '@'

	TokPrefixDirective // @prefix
	TokBaseDirective   // @base
	TokAt              // bare '@' from an unknown directive word
	TokA               // the rdf:type shorthand keyword

	TokDot
	TokSemicolon
	TokComma
	TokLBracket
	TokRBracket
	TokLParen
	TokRParen
	TokDoubleCaret // ^^

	TokComment
)

var tokenKindNames = [...]string{
	TokEOF:             "EOF",
	TokError:           "ERROR",
	TokIRIRef:          "IRIREF",
	TokPNameLN:         "PNAME_LN",
	TokPNameNS:         "PNAME_NS",
	TokBlankNodeLabel:  "BLANK_NODE_LABEL",
	TokString:          "STRING",
	TokInteger:         "INTEGER",
	TokDecimal:         "DECIMAL",
	TokDouble:          "DOUBLE",
	TokBoolean:         "BOOLEAN",
	TokIdent:           "IDENT",
	TokPrefixDirective: "PREFIX",
	TokBaseDirective:   "BASE",
	TokAt:              "AT",
	TokA:               "A",
	TokDot:             "DOT",
	TokSemicolon:       "SEMICOLON",
	TokComma:           "COMMA",
	TokLBracket:        "LBRACKET",
	TokRBracket:        "RBRACKET",
	TokLParen:          "LPAREN",
	TokRParen:          "RPAREN",
	TokDoubleCaret:     "DOUBLE_CARET",
	TokComment:         "COMMENT",
}

// String returns the token kind name.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "UNKNOWN"
}

// Token is one classified span of the source. Spans within one lexer run
// are non-overlapping and monotonically increasing in offset.
type Token struct {
	Kind TokenKind
	Span ttlast.Span

	// Text is the processed token text: decoded string value, IRI without
	// angle brackets, blank node label, numeric source form.
	Text string

	// Int and Float carry the decoded value for numeric tokens.
	Int   int64
	Float float64

	// Long marks the triple-quoted string form.
	Long bool

	// Err is populated on TokError tokens with the underlying diagnostic.
	Err *ParseError
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind TokenKind) bool { return t.Kind == kind }

// IsEOF reports whether the token ends the stream.
func (t Token) IsEOF() bool { return t.Kind == TokEOF }
