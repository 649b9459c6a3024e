package turtle

// Recovery is the parser's policy for resuming after an error.
type Recovery int

const (
	// RecoverNone aborts the parse. Reserved for internal failures.
	RecoverNone Recovery = iota

	// RecoverContinue reports and carries on; the parser state is still
	// consistent (prefix table issues).
	RecoverContinue

	// RecoverSkipToken discards the offending token and retries.
	RecoverSkipToken

	// RecoverSkipStatement abandons the current statement and resumes at
	// the next top-level statement.
	RecoverSkipStatement

	// RecoverSyncDelimiter advances to the next '.' or ';' and resumes.
	RecoverSyncDelimiter
)

// recoveryFor is the fixed error-to-recovery table.
func recoveryFor(t ErrorType) Recovery {
	switch t {
	case ErrInvalidCharacter, ErrUnterminatedString,
		ErrInvalidEscape, ErrInvalidUnicodeEscape, ErrInvalidIRI,
		ErrInvalidLanguageTag, ErrNumberTooLarge, ErrInvalidNumber:
		return RecoverSkipToken
	case ErrMissingDot:
		return RecoverSkipStatement
	case ErrUnexpectedToken, ErrExpectedToken:
		return RecoverSyncDelimiter
	case ErrDuplicatePrefix, ErrUndefinedPrefix:
		return RecoverContinue
	case ErrOutOfMemory, ErrIOError, ErrInternal:
		return RecoverNone
	default:
		return RecoverSkipStatement
	}
}

// skipStatement advances to the next top-level statement: past the next
// '.', or to a token that can begin a statement, whichever comes first.
func (p *Parser) skipStatement() {
	for !p.tok.IsEOF() {
		if p.tok.Kind == TokDot {
			p.next()
			return
		}
		if canStartStatement(p.tok.Kind) {
			return
		}
		p.next()
	}
}

// syncDelimiter advances until a '.' or ';' has been consumed.
func (p *Parser) syncDelimiter() {
	for !p.tok.IsEOF() {
		kind := p.tok.Kind
		p.next()
		if kind == TokDot || kind == TokSemicolon {
			return
		}
	}
}

// PanicResync is the strongest recovery: it advances to the next
// directive or IRI-led statement. No default path uses it; callers
// embedding the parser may invoke it after repeated failures.
func (p *Parser) PanicResync() {
	for !p.tok.IsEOF() {
		switch p.tok.Kind {
		case TokPrefixDirective, TokBaseDirective, TokIRIRef:
			return
		}
		p.next()
	}
}

func canStartStatement(kind TokenKind) bool {
	switch kind {
	case TokPrefixDirective, TokBaseDirective,
		TokIRIRef, TokPNameLN, TokPNameNS, TokBlankNodeLabel,
		TokLBracket, TokLParen:
		return true
	default:
		return false
	}
}
