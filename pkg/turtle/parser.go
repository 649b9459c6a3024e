package turtle

import (
	"fmt"
	"strings"
	"time"

	"github.com/yaklabco/goturtle/pkg/ttlast"
)

// Parser builds a Document AST from a token stream by recursive descent
// with single-token lookahead. One Parser is scoped to one Source and is
// not safe for concurrent use.
type Parser struct {
	src  *Source
	lx   *Lexer
	ctx  *ttlast.Context
	opts Options
	errs *ErrorList

	prefixes map[string]string
	base     string

	tok   Token
	doc   *ttlast.Document
	stats Stats
	depth int
	abort bool
}

// Result bundles everything one parse produces. The document may be a
// usable partial tree even when Errors is non-empty.
type Result struct {
	Doc     *ttlast.Document
	Source  *Source
	Context *ttlast.Context
	Errors  *ErrorList
	Stats   Stats
}

// NewParser creates a parser over src with its own AST context and error
// list, both shared with the lexer it drives.
func NewParser(src *Source, opts Options) *Parser {
	mode := ttlast.AllocArena
	if opts.AllocPerNode {
		mode = ttlast.AllocPerNode
	}
	errs := NewErrorList(opts.MaxErrors)
	return &Parser{
		src:      src,
		lx:       NewLexer(src, opts, errs),
		ctx:      ttlast.NewContext(mode),
		opts:     opts,
		errs:     errs,
		prefixes: make(map[string]string),
		base:     opts.BaseIRI,
	}
}

// ParseBytes parses content in one call and returns the bundled result.
// The returned error is non-nil only for fatal conditions, or for any
// error when recovery is off; the Result is still returned for its error
// list and stats.
func ParseBytes(name string, content []byte, opts Options) (*Result, error) {
	p := NewParser(NewSource(name, content), opts)
	doc, err := p.Parse()
	return &Result{
		Doc:     doc,
		Source:  p.src,
		Context: p.ctx,
		Errors:  p.errs,
		Stats:   p.Stats(),
	}, err
}

// Context returns the AST context owning every node this parser built.
func (p *Parser) Context() *ttlast.Context { return p.ctx }

// Errors returns the shared error list.
func (p *Parser) Errors() *ErrorList { return p.errs }

// Stats returns the accumulated parse statistics.
func (p *Parser) Stats() Stats { return p.stats }

// Prefixes returns the prefix table as populated by @prefix directives.
func (p *Parser) Prefixes() map[string]string { return p.prefixes }

// BaseIRI returns the effective base IRI after any @base directive.
func (p *Parser) BaseIRI() string { return p.base }

// Feed is a stub for a future incremental mode.
func (p *Parser) Feed([]byte) error { return ErrStreamingUnsupported }

// EndInput is a stub companion to Feed.
func (p *Parser) EndInput() error { return ErrStreamingUnsupported }

// Parse consumes the whole token stream and returns the document. It
// returns a nil document only on a fatal condition, or when recovery is
// off and any error occurred; otherwise the document is returned
// best-effort alongside whatever the error list collected.
func (p *Parser) Parse() (*ttlast.Document, error) {
	started := time.Now()

	p.doc = p.ctx.NewDocument(ttlast.Span{Line: 1, Column: 1})
	p.next()

	for !p.tok.IsEOF() && !p.abort {
		if p.errs.AtCap() {
			break
		}
		p.parseStatement()
	}

	p.stats.ParseTime = time.Since(started)

	if p.abort {
		return nil, p.firstFatal()
	}
	if !p.opts.ErrorRecovery && p.errs.Len() > 0 {
		return nil, p.errs.Errors()[0]
	}
	return p.doc, nil
}

func (p *Parser) firstFatal() error {
	for _, e := range p.errs.Errors() {
		if e.IsFatal() {
			return e
		}
	}
	if p.errs.Len() > 0 {
		return p.errs.Errors()[0]
	}
	return &ParseError{Type: ErrInternal, Severity: SeverityFatal, Message: "parse aborted"}
}

// next consumes the current token. Comment tokens never surface here:
// they are attached to the document as they stream past.
func (p *Parser) next() {
	for {
		p.tok = p.lx.NextToken()
		p.stats.TokensConsumed++
		if p.tok.Kind != TokComment {
			return
		}
		if p.doc != nil {
			p.doc.AddStatement(p.ctx.NewComment(p.tok.Span, p.tok.Text))
		}
	}
}

// report records a diagnostic and returns it for bubbling. Recovery
// accounting happens at the statement loop.
func (p *Parser) report(typ ErrorType, span ttlast.Span, msg string) *ParseError {
	perr := &ParseError{
		Type:     typ,
		Severity: typ.DefaultSeverity(),
		Span:     span,
		Message:  msg,
	}
	p.errs.Add(perr)
	return perr
}

// parseStatement parses one directive or triple and applies the recovery
// policy for whatever error bubbles out of it.
func (p *Parser) parseStatement() {
	var err *ParseError
	switch p.tok.Kind {
	case TokPrefixDirective:
		err = p.parsePrefixDirective()
	case TokBaseDirective:
		err = p.parseBaseDirective()
	case TokError:
		err = p.tok.Err
		if !p.opts.ErrorRecovery {
			p.errs.Add(err)
		}
	case TokDot:
		err = p.report(ErrUnexpectedToken, p.tok.Span, "statement cannot start with '.'")
	default:
		err = p.parseTripleStatement()
	}
	if err == nil {
		return
	}

	if !p.opts.ErrorRecovery || err.IsFatal() {
		p.abort = true
		return
	}

	switch recoveryFor(err.Type) {
	case RecoverSkipToken:
		p.next()
	case RecoverSkipStatement:
		p.skipStatement()
	case RecoverSyncDelimiter:
		p.syncDelimiter()
	case RecoverContinue:
		// Parser state is already consistent.
	case RecoverNone:
		p.abort = true
		return
	}
	p.stats.ErrorsRecovered++
}

// directives

func (p *Parser) parsePrefixDirective() *ParseError {
	span := p.tok.Span
	p.next() // consume @prefix

	var prefix string
	switch p.tok.Kind {
	case TokPNameNS:
		prefix = strings.TrimSuffix(p.tok.Text, ":")
	case TokPNameLN:
		return p.report(ErrInvalidSyntax, p.tok.Span,
			fmt.Sprintf("prefix declaration %q must end with ':'", p.tok.Text))
	default:
		return p.report(ErrExpectedToken, p.tok.Span,
			fmt.Sprintf("expected prefix name after '@prefix', got %s", p.tok.Kind))
	}
	p.next()

	iri, err := p.expectIRI("prefix IRI")
	if err != nil {
		return err
	}

	if err := p.expectDot("prefix directive"); err != nil {
		return err
	}

	if _, exists := p.prefixes[prefix]; exists {
		p.report(ErrDuplicatePrefix, span,
			fmt.Sprintf("prefix %q redefined; the new IRI wins", prefix))
	}
	p.prefixes[prefix] = iri.Value

	p.doc.AddStatement(p.ctx.NewPrefixDirective(span, prefix, iri))
	p.stats.StatementsParsed++
	return nil
}

func (p *Parser) parseBaseDirective() *ParseError {
	span := p.tok.Span
	p.next() // consume @base

	iri, err := p.expectIRI("base IRI")
	if err != nil {
		return err
	}
	if (p.opts.StrictMode || p.opts.ValidateIRIs) && !iri.Absolute {
		p.report(ErrInvalidBaseIRI, iri.Span(),
			fmt.Sprintf("base IRI %q is not absolute", iri.Value))
	}

	if err := p.expectDot("base directive"); err != nil {
		return err
	}

	p.base = iri.Value
	p.doc.AddStatement(p.ctx.NewBaseDirective(span, iri))
	p.stats.StatementsParsed++
	return nil
}

func (p *Parser) expectIRI(what string) (*ttlast.IRI, *ParseError) {
	if p.tok.Kind == TokError {
		return nil, p.tok.Err
	}
	if p.tok.Kind != TokIRIRef {
		return nil, p.report(ErrExpectedToken, p.tok.Span,
			fmt.Sprintf("expected %s, got %s", what, p.tok.Kind))
	}
	iri := p.iriNode()
	p.next()
	return iri, nil
}

func (p *Parser) expectDot(what string) *ParseError {
	if p.tok.Kind != TokDot {
		return p.report(ErrMissingDot, p.tok.Span,
			fmt.Sprintf("expected '.' to end %s", what))
	}
	p.next()
	return nil
}

// triples

func (p *Parser) parseTripleStatement() *ParseError {
	span := p.tok.Span

	subject, err := p.parseSubject()
	if err != nil {
		return err
	}

	// A bare property list may stand alone: [ p o ] .
	if bnpl, ok := subject.(*ttlast.BlankNodePropertyList); ok && p.tok.Kind == TokDot {
		p.next()
		pol := bnpl.Properties
		if pol == nil {
			pol = p.ctx.NewPredicateObjectList(span)
		}
		triple := p.ctx.NewTriple(span, subject, pol)
		p.doc.AddStatement(triple)
		p.stats.StatementsParsed++
		p.countTriples(pol)
		return nil
	}

	pol, err := p.parsePredicateObjectList(TokDot)
	if err != nil {
		return err
	}

	if p.tok.Kind != TokDot {
		return p.report(ErrMissingDot, p.tok.Span,
			fmt.Sprintf("expected '.' to end triple, got %s", p.tok.Kind))
	}
	p.next()

	triple := p.ctx.NewTriple(span, subject, pol)
	p.doc.AddStatement(triple)
	p.stats.StatementsParsed++
	p.countTriples(pol)
	return nil
}

func (p *Parser) countTriples(pol *ttlast.PredicateObjectList) {
	for _, pair := range pol.Pairs {
		p.stats.TriplesParsed += len(pair.Objects.Objects)
	}
}

func (p *Parser) parsePredicateObjectList(terminator TokenKind) (*ttlast.PredicateObjectList, *ParseError) {
	p.enter()
	defer p.leave()

	pol := p.ctx.NewPredicateObjectList(p.tok.Span)

	for {
		verb, err := p.parseVerb()
		if err != nil {
			return nil, err
		}

		objects, err := p.parseObjectList()
		if err != nil {
			return nil, err
		}
		pol.AddPair(verb, objects)

		if p.tok.Kind != TokSemicolon {
			return pol, nil
		}
		for p.tok.Kind == TokSemicolon {
			p.next()
		}
		// Trailing ';' before the closing delimiter is legal.
		if p.tok.Kind == terminator || p.tok.Kind == TokRBracket {
			return pol, nil
		}
	}
}

func (p *Parser) parseObjectList() (*ttlast.ObjectList, *ParseError) {
	list := p.ctx.NewObjectList(p.tok.Span)
	for {
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		list.AddObject(obj)

		if p.tok.Kind != TokComma {
			return list, nil
		}
		p.next()
	}
}

func (p *Parser) parseVerb() (ttlast.Node, *ParseError) {
	switch p.tok.Kind {
	case TokA:
		node := p.ctx.NewRdfType(p.tok.Span)
		p.next()
		return node, nil
	case TokIRIRef:
		node := p.iriNode()
		p.next()
		return node, nil
	case TokPNameLN, TokPNameNS:
		node := p.prefixedNameNode()
		p.next()
		return node, nil
	case TokError:
		return nil, p.tok.Err
	case TokString, TokInteger, TokDecimal, TokDouble, TokBoolean:
		return nil, p.report(ErrInvalidPredicate, p.tok.Span, "literal cannot be a predicate")
	case TokBlankNodeLabel, TokLBracket:
		return nil, p.report(ErrInvalidPredicate, p.tok.Span, "blank node cannot be a predicate")
	default:
		return nil, p.report(ErrUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected predicate, got %s", p.tok.Kind))
	}
}

func (p *Parser) parseSubject() (ttlast.Node, *ParseError) {
	switch p.tok.Kind {
	case TokIRIRef:
		node := p.iriNode()
		p.next()
		return node, nil
	case TokPNameLN, TokPNameNS:
		node := p.prefixedNameNode()
		p.next()
		return node, nil
	case TokBlankNodeLabel:
		node := p.ctx.NewBlankNode(p.tok.Span, p.tok.Text)
		p.next()
		return node, nil
	case TokLBracket:
		return p.parseBlankNodePropertyList()
	case TokLParen:
		return p.parseCollection()
	case TokError:
		return nil, p.tok.Err
	case TokString, TokInteger, TokDecimal, TokDouble, TokBoolean:
		return nil, p.report(ErrInvalidSubject, p.tok.Span, "literal cannot be a subject")
	case TokA:
		return nil, p.report(ErrInvalidSubject, p.tok.Span, "keyword 'a' cannot be a subject")
	default:
		return nil, p.report(ErrUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected subject, got %s", p.tok.Kind))
	}
}

func (p *Parser) parseObject() (ttlast.Node, *ParseError) {
	p.enter()
	defer p.leave()

	switch p.tok.Kind {
	case TokIRIRef:
		node := p.iriNode()
		p.next()
		return node, nil
	case TokPNameLN, TokPNameNS:
		node := p.prefixedNameNode()
		p.next()
		return node, nil
	case TokBlankNodeLabel:
		node := p.ctx.NewBlankNode(p.tok.Span, p.tok.Text)
		p.next()
		return node, nil
	case TokLBracket:
		return p.parseBlankNodePropertyList()
	case TokLParen:
		return p.parseCollection()
	case TokString:
		return p.parseStringObject()
	case TokInteger:
		node := p.numericNode(ttlast.NumInteger)
		p.next()
		return node, nil
	case TokDecimal:
		node := p.numericNode(ttlast.NumDecimal)
		p.next()
		return node, nil
	case TokDouble:
		node := p.numericNode(ttlast.NumDouble)
		p.next()
		return node, nil
	case TokBoolean:
		node := p.ctx.NewBooleanLiteral(p.tok.Span, p.tok.Text == "true")
		p.next()
		return node, nil
	case TokError:
		return nil, p.tok.Err
	case TokA:
		return nil, p.report(ErrInvalidObject, p.tok.Span, "keyword 'a' cannot be an object")
	default:
		return nil, p.report(ErrUnexpectedToken, p.tok.Span,
			fmt.Sprintf("expected object, got %s", p.tok.Kind))
	}
}

// parseStringObject finishes a string literal, which may grow a language
// tag or a datatype.
func (p *Parser) parseStringObject() (ttlast.Node, *ParseError) {
	span := p.tok.Span
	value := p.tok.Text
	long := p.tok.Long
	p.next()

	switch p.tok.Kind {
	case TokAt:
		p.next()
		if p.tok.Kind != TokIdent {
			return nil, p.report(ErrInvalidLanguageTag, p.tok.Span,
				"expected language tag after '@'")
		}
		tag := p.tok.Text
		if !validLangTag(tag) {
			return nil, p.report(ErrInvalidLanguageTag, p.tok.Span,
				fmt.Sprintf("malformed language tag %q", tag))
		}
		if p.opts.StrictMode || p.opts.NormalizeLiterals {
			tag = strings.ToLower(tag)
		}
		tagSpan := p.tok.Span
		p.next()
		full := span
		full.Length = tagSpan.End() - span.Offset
		return p.ctx.NewLangLiteral(full, value, tag), nil

	case TokDoubleCaret:
		p.next()
		var datatype ttlast.Node
		switch p.tok.Kind {
		case TokIRIRef:
			datatype = p.iriNode()
		case TokPNameLN, TokPNameNS:
			datatype = p.prefixedNameNode()
		default:
			return nil, p.report(ErrExpectedToken, p.tok.Span,
				fmt.Sprintf("expected datatype IRI after '^^', got %s", p.tok.Kind))
		}
		dtSpan := p.tok.Span
		p.next()
		full := span
		full.Length = dtSpan.End() - span.Offset
		return p.ctx.NewTypedLiteral(full, value, datatype), nil

	default:
		return p.ctx.NewStringLiteral(span, value, long), nil
	}
}

func (p *Parser) parseCollection() (ttlast.Node, *ParseError) {
	p.enter()
	defer p.leave()

	span := p.tok.Span
	p.next() // consume '('

	coll := p.ctx.NewCollection(span)
	for {
		switch p.tok.Kind {
		case TokRParen:
			p.next()
			return coll, nil
		case TokEOF:
			return nil, p.report(ErrInvalidCollection, span, "unterminated collection")
		case TokDot, TokSemicolon:
			return nil, p.report(ErrInvalidCollection, p.tok.Span,
				fmt.Sprintf("%s not allowed inside a collection", p.tok.Kind))
		}
		item, err := p.parseObject()
		if err != nil {
			return nil, err
		}
		coll.AddItem(item)
	}
}

func (p *Parser) parseBlankNodePropertyList() (ttlast.Node, *ParseError) {
	p.enter()
	defer p.leave()

	span := p.tok.Span
	p.next() // consume '['

	// Bare [] is an anonymous blank node with a generated id.
	if p.tok.Kind == TokRBracket {
		node := p.ctx.NewAnonBlankNode(span)
		p.next()
		return node, nil
	}

	pol, err := p.parsePredicateObjectList(TokRBracket)
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != TokRBracket {
		return nil, p.report(ErrInvalidBlankNode, p.tok.Span,
			fmt.Sprintf("expected ']' to close property list, got %s", p.tok.Kind))
	}
	p.next()

	return p.ctx.NewBlankNodePropertyList(span, pol), nil
}

// leaf node construction

func (p *Parser) iriNode() *ttlast.IRI {
	value := p.tok.Text
	absolute := iriIsAbsolute(value)
	if (p.opts.StrictMode || p.opts.ValidateIRIs) && !absolute && p.base == "" {
		p.report(ErrInvalidIRI, p.tok.Span,
			fmt.Sprintf("relative IRI %q without a base", value))
	}
	return p.ctx.NewIRI(p.tok.Span, value, absolute)
}

func (p *Parser) prefixedNameNode() *ttlast.PrefixedName {
	prefix, local, _ := strings.Cut(p.tok.Text, ":")
	if _, ok := p.prefixes[prefix]; !ok {
		p.report(ErrUndefinedPrefix, p.tok.Span,
			fmt.Sprintf("prefix %q is not defined", prefix))
	}
	return p.ctx.NewPrefixedName(p.tok.Span, prefix, local)
}

func (p *Parser) numericNode(kind ttlast.NumericKind) *ttlast.NumericLiteral {
	raw := p.tok.Text
	if p.opts.StrictMode || p.opts.NormalizeLiterals {
		raw = normalizeNumeric(raw)
	}
	return p.ctx.NewNumericLiteral(p.tok.Span, raw, kind, p.tok.Int, p.tok.Float)
}

// depth tracking for the MaxDepth statistic

func (p *Parser) enter() {
	p.depth++
	if p.depth > p.stats.MaxDepth {
		p.stats.MaxDepth = p.depth
	}
}

func (p *Parser) leave() { p.depth-- }

// helpers

// iriIsAbsolute reports whether the reference begins with a scheme.
func iriIsAbsolute(iri string) bool {
	for i := 0; i < len(iri); i++ {
		ch := iri[i]
		switch {
		case ch == ':':
			return i > 0
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case i > 0 && (ch >= '0' && ch <= '9' || ch == '+' || ch == '-' || ch == '.'):
		default:
			return false
		}
	}
	return false
}

// validLangTag checks the [a-zA-Z]+ ('-' [a-zA-Z0-9]+)* shape.
func validLangTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, part := range strings.Split(tag, "-") {
		if part == "" {
			return false
		}
		for i := 0; i < len(part); i++ {
			ch := part[i]
			if !isAlpha(ch) && !isDigit(ch) {
				return false
			}
		}
	}
	// The primary subtag is alphabetic only.
	for i := 0; i < len(tag) && tag[i] != '-'; i++ {
		if !isAlpha(tag[i]) {
			return false
		}
	}
	return true
}

// normalizeNumeric trims a leading '+' and lowercases the exponent.
func normalizeNumeric(raw string) string {
	raw = strings.TrimPrefix(raw, "+")
	return strings.ReplaceAll(raw, "E", "e")
}
