package turtle

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/yaklabco/goturtle/pkg/ttlast"
)

// Lexer turns a source snapshot into a token stream. It never fails hard:
// malformed input produces TokError tokens (appended to the shared error
// list when recovery is on) and scanning continues at the next byte that
// makes sense. Not safe for concurrent use.
type Lexer struct {
	src  *Source
	opts Options
	errs *ErrorList

	offset int
	line   int
	column int

	scratch []byte

	// Lookahead ring buffer, grown on demand.
	ring     []Token
	ringHead int
	ringLen  int
}

// NewLexer creates a lexer over src. Diagnostics go to errs, which may be
// shared with the parser.
func NewLexer(src *Source, opts Options, errs *ErrorList) *Lexer {
	if errs == nil {
		errs = NewErrorList(opts.MaxErrors)
	}
	return &Lexer{
		src:    src,
		opts:   opts,
		errs:   errs,
		line:   1,
		column: 1,
		ring:   make([]Token, 4),
	}
}

// Errors returns the lexer's error list.
func (lx *Lexer) Errors() *ErrorList { return lx.errs }

// NextToken consumes and returns the next token. At end of input it
// returns TokEOF forever.
func (lx *Lexer) NextToken() Token {
	lx.fill(1)
	return lx.pop()
}

// PeekToken returns the k-th lookahead token without consuming anything;
// k=0 is the token NextToken would return next.
func (lx *Lexer) PeekToken(k int) Token {
	lx.fill(k + 1)
	return lx.ring[(lx.ringHead+k)%len(lx.ring)]
}

// Feed is a stub for a future incremental mode; the lexer only scans the
// snapshot it was created with.
func (lx *Lexer) Feed([]byte) error { return ErrStreamingUnsupported }

// EndInput is a stub companion to Feed.
func (lx *Lexer) EndInput() error { return ErrStreamingUnsupported }

func (lx *Lexer) fill(n int) {
	for lx.ringLen < n {
		lx.scanInto()
	}
}

func (lx *Lexer) pop() Token {
	tok := lx.ring[lx.ringHead]
	lx.ringHead = (lx.ringHead + 1) % len(lx.ring)
	lx.ringLen--
	return tok
}

func (lx *Lexer) push(tok Token) {
	if lx.ringLen == len(lx.ring) {
		grown := make([]Token, len(lx.ring)*2)
		for i := 0; i < lx.ringLen; i++ {
			grown[i] = lx.ring[(lx.ringHead+i)%len(lx.ring)]
		}
		lx.ring = grown
		lx.ringHead = 0
	}
	lx.ring[(lx.ringHead+lx.ringLen)%len(lx.ring)] = tok
	lx.ringLen++
}

// scanInto scans the next token (or token pair, for degraded directives)
// into the ring.
func (lx *Lexer) scanInto() {
	for {
		lx.skipWhitespace()

		if lx.atEOF() {
			lx.push(Token{Kind: TokEOF, Span: lx.here(0)})
			return
		}

		ch := lx.peekByte()
		if ch == '#' {
			tok, keep := lx.scanComment()
			if keep {
				lx.push(tok)
				return
			}
			continue
		}

		lx.push(lx.scanToken(ch))
		return
	}
}

func (lx *Lexer) scanToken(ch byte) Token {
	switch {
	case ch == '<':
		return lx.scanIRI()
	case ch == '"' || ch == '\'':
		return lx.scanString(ch)
	case ch == '@':
		return lx.scanDirective()
	case ch == '_' && lx.peekByteAt(1) == ':':
		return lx.scanBlankNodeLabel()
	case isDigit(ch),
		(ch == '+' || ch == '-') && (isDigit(lx.peekByteAt(1)) || lx.peekByteAt(1) == '.'),
		ch == '.' && isDigit(lx.peekByteAt(1)):
		return lx.scanNumber()
	case ch == ':':
		// Default-namespace prefixed name, e.g. `:local`.
		return lx.scanPrefixedName(lx.mark(), "")
	case isAlpha(ch) || isPNCharsBase(lx.peekRune()):
		return lx.scanWord()
	}

	switch ch {
	case '.':
		return lx.punct(TokDot)
	case ';':
		return lx.punct(TokSemicolon)
	case ',':
		return lx.punct(TokComma)
	case '[':
		return lx.punct(TokLBracket)
	case ']':
		return lx.punct(TokRBracket)
	case '(':
		return lx.punct(TokLParen)
	case ')':
		return lx.punct(TokRParen)
	case '^':
		if lx.peekByteAt(1) == '^' {
			start := lx.mark()
			lx.advance(2)
			return lx.token(TokDoubleCaret, start, "")
		}
	}

	start := lx.mark()
	r := lx.peekRune()
	lx.advanceRune()
	return lx.errorToken(ErrInvalidCharacter, start, fmt.Sprintf("unexpected character %q", r))
}

// position bookkeeping

type marker struct {
	offset, line, column int
}

func (lx *Lexer) mark() marker {
	return marker{offset: lx.offset, line: lx.line, column: lx.column}
}

func (lx *Lexer) here(length int) ttlast.Span {
	return ttlast.Span{Line: lx.line, Column: lx.column, Offset: lx.offset, Length: length}
}

func (lx *Lexer) spanFrom(start marker) ttlast.Span {
	return ttlast.Span{
		Line:   start.line,
		Column: start.column,
		Offset: start.offset,
		Length: lx.offset - start.offset,
	}
}

func (lx *Lexer) atEOF() bool { return lx.offset >= len(lx.src.Content) }

func (lx *Lexer) peekByte() byte { return lx.src.Content[lx.offset] }

func (lx *Lexer) peekByteAt(k int) byte {
	if lx.offset+k >= len(lx.src.Content) {
		return 0
	}
	return lx.src.Content[lx.offset+k]
}

func (lx *Lexer) peekRune() rune {
	if lx.atEOF() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRune(lx.src.Content[lx.offset:])
	return r
}

// advance moves the cursor n bytes forward, keeping line/column in sync.
// Line and column only ever move forward; column resets to 1 after '\n'.
func (lx *Lexer) advance(n int) {
	for i := 0; i < n && lx.offset < len(lx.src.Content); i++ {
		if lx.src.Content[lx.offset] == '\n' {
			lx.line++
			lx.column = 1
		} else {
			lx.column++
		}
		lx.offset++
	}
}

func (lx *Lexer) advanceRune() {
	if lx.atEOF() {
		return
	}
	_, size := utf8.DecodeRune(lx.src.Content[lx.offset:])
	lx.advance(size)
}

func (lx *Lexer) skipWhitespace() {
	for !lx.atEOF() && isWhitespace(lx.peekByte()) {
		lx.advance(1)
	}
}

// token construction

func (lx *Lexer) punct(kind TokenKind) Token {
	start := lx.mark()
	lx.advance(1)
	return lx.token(kind, start, "")
}

func (lx *Lexer) token(kind TokenKind, start marker, text string) Token {
	return Token{Kind: kind, Span: lx.spanFrom(start), Text: text}
}

// errorToken records a diagnostic (when recovery is on) and surfaces it
// as a TokError for the parser to act on. The lexer itself never chooses
// a recovery strategy.
func (lx *Lexer) errorToken(typ ErrorType, start marker, msg string) Token {
	perr := &ParseError{
		Type:     typ,
		Severity: typ.DefaultSeverity(),
		Span:     lx.spanFrom(start),
		Message:  msg,
	}
	if lx.opts.ErrorRecovery {
		lx.errs.Add(perr)
	}
	return Token{Kind: TokError, Span: perr.Span, Text: msg, Err: perr}
}

// scanners

func (lx *Lexer) scanComment() (Token, bool) {
	start := lx.mark()
	for !lx.atEOF() && lx.peekByte() != '\n' {
		lx.advance(1)
	}
	if !lx.opts.TrackComments {
		return Token{}, false
	}
	text := string(lx.src.Content[start.offset+1 : lx.offset])
	return lx.token(TokComment, start, text), true
}

// scanIRI consumes `<...>`, rejecting control characters, newlines, and
// the reserved <>"{}|^`\ set inside. Only \u and \U escapes are legal.
func (lx *Lexer) scanIRI() Token {
	start := lx.mark()
	lx.advance(1) // consume '<'
	lx.scratch = lx.scratch[:0]

	for {
		if lx.atEOF() || lx.peekByte() == '\n' {
			return lx.errorToken(ErrInvalidIRI, start, "unterminated IRI reference")
		}
		ch := lx.peekByte()
		if ch == '>' {
			lx.advance(1)
			return lx.token(TokIRIRef, start, string(lx.scratch))
		}
		if ch == '\\' {
			esc := lx.peekByteAt(1)
			if esc != 'u' && esc != 'U' {
				tok := lx.errorToken(ErrInvalidEscape, start,
					fmt.Sprintf("escape \\%c not allowed in IRI", esc))
				lx.skipPastIRI()
				return tok
			}
			if !lx.decodeUnicodeEscape() {
				tok := lx.errorToken(ErrInvalidUnicodeEscape, start, "invalid Unicode escape in IRI")
				lx.skipPastIRI()
				return tok
			}
			continue
		}
		if ch < 0x80 && isIRIUnsafe(ch) {
			tok := lx.errorToken(ErrInvalidIRI, start,
				fmt.Sprintf("character %q not allowed in IRI", rune(ch)))
			lx.skipPastIRI()
			return tok
		}
		lx.scratch = append(lx.scratch, ch)
		lx.advance(1)
	}
}

// skipPastIRI advances past the closing '>' or end of line after an IRI
// error, so the next scan starts on fresh input.
func (lx *Lexer) skipPastIRI() {
	for !lx.atEOF() && lx.peekByte() != '\n' {
		if lx.peekByte() == '>' {
			lx.advance(1)
			return
		}
		lx.advance(1)
	}
}

// scanString handles both quote characters and both forms; the long form
// is detected by two repeated quote characters of lookahead.
func (lx *Lexer) scanString(quote byte) Token {
	if lx.peekByteAt(1) == quote && lx.peekByteAt(2) == quote {
		return lx.scanLongString(quote)
	}

	start := lx.mark()
	lx.advance(1)
	lx.scratch = lx.scratch[:0]

	for {
		if lx.atEOF() || lx.peekByte() == '\n' {
			return lx.errorToken(ErrUnterminatedString, start, "unterminated string literal")
		}
		ch := lx.peekByte()
		if ch == quote {
			lx.advance(1)
			return lx.token(TokString, start, string(lx.scratch))
		}
		if ch == '\\' {
			if tok, ok := lx.decodeEscape(start); !ok {
				return tok
			}
			continue
		}
		lx.scratch = append(lx.scratch, ch)
		lx.advance(1)
	}
}

func (lx *Lexer) scanLongString(quote byte) Token {
	start := lx.mark()
	lx.advance(3)
	lx.scratch = lx.scratch[:0]

	for {
		if lx.atEOF() {
			return lx.errorToken(ErrUnterminatedString, start, "unterminated long string literal")
		}
		ch := lx.peekByte()
		if ch == quote && lx.peekByteAt(1) == quote && lx.peekByteAt(2) == quote {
			lx.advance(3)
			tok := lx.token(TokString, start, string(lx.scratch))
			tok.Long = true
			return tok
		}
		if ch == '\\' {
			if tok, ok := lx.decodeEscape(start); !ok {
				return tok
			}
			continue
		}
		lx.scratch = append(lx.scratch, ch)
		lx.advance(1)
	}
}

// decodeEscape processes one backslash escape into the scratch buffer.
// On failure it returns the error token and false.
func (lx *Lexer) decodeEscape(start marker) (Token, bool) {
	esc := lx.peekByteAt(1)
	switch esc {
	case 't':
		lx.scratch = append(lx.scratch, '\t')
	case 'n':
		lx.scratch = append(lx.scratch, '\n')
	case 'r':
		lx.scratch = append(lx.scratch, '\r')
	case 'b':
		lx.scratch = append(lx.scratch, '\b')
	case 'f':
		lx.scratch = append(lx.scratch, '\f')
	case '"':
		lx.scratch = append(lx.scratch, '"')
	case '\'':
		lx.scratch = append(lx.scratch, '\'')
	case '\\':
		lx.scratch = append(lx.scratch, '\\')
	case 'u', 'U':
		if !lx.decodeUnicodeEscape() {
			return lx.errorToken(ErrInvalidUnicodeEscape, start, "invalid Unicode escape"), false
		}
		return Token{}, true
	default:
		escStart := lx.mark()
		lx.advance(2)
		return lx.errorToken(ErrInvalidEscape, escStart,
			fmt.Sprintf("invalid escape sequence \\%c", esc)), false
	}
	lx.advance(2)
	return Token{}, true
}

// decodeUnicodeEscape consumes \uXXXX or \UXXXXXXXX and appends the
// code point's UTF-8 bytes to scratch. Surrogates and out-of-range code
// points are rejected.
func (lx *Lexer) decodeUnicodeEscape() bool {
	digits := 4
	if lx.peekByteAt(1) == 'U' {
		digits = 8
	}
	if lx.offset+2+digits > len(lx.src.Content) {
		lx.advance(2)
		return false
	}
	hex := string(lx.src.Content[lx.offset+2 : lx.offset+2+digits])
	for i := 0; i < digits; i++ {
		if !isHexDigit(hex[i]) {
			lx.advance(2)
			return false
		}
	}
	cp, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || cp > 0x10FFFF || (cp >= 0xD800 && cp <= 0xDFFF) {
		lx.advance(2 + digits)
		return false
	}
	lx.scratch = utf8.AppendRune(lx.scratch, rune(cp))
	lx.advance(2 + digits)
	return true
}

// scanNumber consumes an optional sign, a digit run, an optional
// fractional part, and an optional exponent; the shape decides the kind.
func (lx *Lexer) scanNumber() Token {
	start := lx.mark()

	if ch := lx.peekByte(); ch == '+' || ch == '-' {
		lx.advance(1)
	}
	for !lx.atEOF() && isDigit(lx.peekByte()) {
		lx.advance(1)
	}

	isDecimal := false
	if lx.peekByteOK('.') && isDigit(lx.peekByteAt(1)) {
		isDecimal = true
		lx.advance(1)
		for !lx.atEOF() && isDigit(lx.peekByte()) {
			lx.advance(1)
		}
	}

	isDouble := false
	if ch := lx.peekByteAt(0); ch == 'e' || ch == 'E' {
		exp := 1
		if next := lx.peekByteAt(1); next == '+' || next == '-' {
			exp = 2
		}
		if !isDigit(lx.peekByteAt(exp)) {
			lx.advance(exp)
			return lx.errorToken(ErrInvalidNumber, start, "exponent without digits")
		}
		isDouble = true
		lx.advance(exp)
		for !lx.atEOF() && isDigit(lx.peekByte()) {
			lx.advance(1)
		}
	}

	raw := string(lx.src.Content[start.offset:lx.offset])

	switch {
	case isDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return lx.errorToken(ErrNumberTooLarge, start, fmt.Sprintf("double %s out of range", raw))
		}
		tok := lx.token(TokDouble, start, raw)
		tok.Float = f
		return tok
	case isDecimal:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return lx.errorToken(ErrInvalidNumber, start, fmt.Sprintf("malformed decimal %s", raw))
		}
		tok := lx.token(TokDecimal, start, raw)
		tok.Float = f
		return tok
	default:
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
				return lx.errorToken(ErrNumberTooLarge, start, fmt.Sprintf("integer %s out of range", raw))
			}
			return lx.errorToken(ErrInvalidNumber, start, fmt.Sprintf("malformed number %s", raw))
		}
		tok := lx.token(TokInteger, start, raw)
		tok.Int = i
		return tok
	}
}

func (lx *Lexer) peekByteOK(want byte) bool {
	return !lx.atEOF() && lx.peekByte() == want
}

// scanDirective handles the '@' family. Only @prefix and @base are
// keywords; any other @word is emitted as a bare TokAt with the word
// queued behind it as a TokIdent, a two-token decision instead of a
// cursor rewind.
func (lx *Lexer) scanDirective() Token {
	start := lx.mark()
	lx.advance(1) // consume '@'

	wordStart := lx.mark()
	for !lx.atEOF() {
		ch := lx.peekByte()
		if !isAlpha(ch) && !isDigit(ch) && ch != '-' {
			break
		}
		lx.advance(1)
	}
	word := string(lx.src.Content[wordStart.offset:lx.offset])

	switch word {
	case "prefix":
		return lx.token(TokPrefixDirective, start, word)
	case "base":
		return lx.token(TokBaseDirective, start, word)
	case "":
		return lx.errorToken(ErrInvalidCharacter, start, "bare '@' without a word")
	default:
		at := Token{Kind: TokAt, Span: ttlast.Span{
			Line: start.line, Column: start.column, Offset: start.offset, Length: 1,
		}}
		ident := lx.token(TokIdent, wordStart, word)
		lx.push(at)
		return ident
	}
}

func (lx *Lexer) scanBlankNodeLabel() Token {
	start := lx.mark()
	lx.advance(2) // consume '_:'

	labelStart := lx.offset
	r := lx.peekRune()
	if lx.atEOF() || (!isPNCharsBase(r) && r != '_' && !(r >= '0' && r <= '9')) {
		return lx.errorToken(ErrInvalidCharacter, start, "blank node label must start with a name character")
	}
	lx.advanceRune()

	for !lx.atEOF() {
		r := lx.peekRune()
		if r != '.' && !isPNChars(r) {
			break
		}
		lx.advanceRune()
	}
	// Labels cannot end with '.'; leave trailing dots for the statement.
	for lx.offset > labelStart && lx.src.Content[lx.offset-1] == '.' {
		lx.offset--
		lx.column--
	}

	return lx.token(TokBlankNodeLabel, start, string(lx.src.Content[labelStart:lx.offset]))
}

// scanWord consumes an alphabetic run. Keywords `a`, `true`, and `false`
// win unless a ':' follows immediately, which reinterprets the run as
// the prefix of a prefixed name.
func (lx *Lexer) scanWord() Token {
	start := lx.mark()
	for !lx.atEOF() {
		r := lx.peekRune()
		if !isPNChars(r) {
			break
		}
		lx.advanceRune()
	}
	word := string(lx.src.Content[start.offset:lx.offset])

	if !lx.atEOF() && lx.peekByte() == ':' {
		return lx.scanPrefixedName(start, word)
	}

	switch word {
	case "a":
		return lx.token(TokA, start, word)
	case "true", "false":
		return lx.token(TokBoolean, start, word)
	default:
		return lx.token(TokIdent, start, word)
	}
}

// scanPrefixedName finishes a prefixed name after its prefix (possibly
// empty) has been consumed; the cursor sits on ':'.
func (lx *Lexer) scanPrefixedName(start marker, prefix string) Token {
	lx.advance(1) // consume ':'

	localStart := lx.offset
	for !lx.atEOF() {
		r := lx.peekRune()
		if lx.offset == localStart {
			if !isPNCharsBase(r) && r != '_' && !(r >= '0' && r <= '9') && r != '%' {
				break
			}
		} else if r != '.' && r != '%' && !isPNChars(r) {
			break
		}
		lx.advanceRune()
	}
	// Local names cannot end with '.'; leave trailing dots for the statement.
	for lx.offset > localStart && lx.src.Content[lx.offset-1] == '.' {
		lx.offset--
		lx.column--
	}
	local := string(lx.src.Content[localStart:lx.offset])

	tok := lx.token(TokPNameLN, start, prefix+":"+local)
	if local == "" {
		tok.Kind = TokPNameNS
	}
	return tok
}
