package ttlast

// AllocMode selects how a Context allocates nodes and strings.
type AllocMode uint8

const (
	// AllocArena batch-allocates node structs from fixed-size blocks and
	// interns lexemes, so one parse shares a single copy of each distinct
	// string and everything is released together with the Context.
	AllocArena AllocMode = iota

	// AllocPerNode allocates every node individually and keeps no intern
	// table. Nodes stay live as long as anything references them.
	AllocPerNode
)

// slabBlockLen is the number of node structs per arena block. Blocks for
// the hot variants land near the 64KB granularity the arena targets.
const slabBlockLen = 2048

type slab[T any] struct {
	blocks [][]T
	used   int
}

func (s *slab[T]) get() *T {
	if len(s.blocks) == 0 || s.used == slabBlockLen {
		s.blocks = append(s.blocks, make([]T, slabBlockLen))
		s.used = 0
	}
	blk := s.blocks[len(s.blocks)-1]
	p := &blk[s.used]
	s.used++
	return p
}

// ContextStats reports allocation activity for diagnostics.
type ContextStats struct {
	NodesCreated    uint64
	StringsInterned int
	BlankNodes      uint64
}

// Context owns every node of one parse. One Context is scoped to one
// document; it is not safe for concurrent use. After Release, all nodes
// obtained from the context are invalid and constructors panic.
type Context struct {
	mode    AllocMode
	blankID uint64
	created uint64
	strings map[string]string
	closed  bool

	iris     slab[IRI]
	pnames   slab[PrefixedName]
	blanks   slab[BlankNode]
	strLits  slab[StringLiteral]
	numLits  slab[NumericLiteral]
	triples  slab[Triple]
	objLists slab[ObjectList]
	polLists slab[PredicateObjectList]
}

// NewContext creates a Context in the given allocation mode.
func NewContext(mode AllocMode) *Context {
	c := &Context{mode: mode}
	if mode == AllocArena {
		c.strings = make(map[string]string)
	}
	return c
}

// Mode returns the context's allocation mode.
func (c *Context) Mode() AllocMode { return c.mode }

// Stats returns allocation counters.
func (c *Context) Stats() ContextStats {
	return ContextStats{
		NodesCreated:    c.created,
		StringsInterned: len(c.strings),
		BlankNodes:      c.blankID,
	}
}

// Release tears the context down. Arena blocks and the intern table are
// dropped in one step; every node ever created from this context must be
// considered invalid afterwards.
func (c *Context) Release() {
	c.closed = true
	c.strings = nil
	c.iris = slab[IRI]{}
	c.pnames = slab[PrefixedName]{}
	c.blanks = slab[BlankNode]{}
	c.strLits = slab[StringLiteral]{}
	c.numLits = slab[NumericLiteral]{}
	c.triples = slab[Triple]{}
	c.objLists = slab[ObjectList]{}
	c.polLists = slab[PredicateObjectList]{}
}

// NextBlankID returns the next blank node id. IDs are unique per context,
// monotonically increasing, and start at 1.
func (c *Context) NextBlankID() uint64 {
	c.blankID++
	return c.blankID
}

// Intern returns a context-shared copy of s in arena mode, or s unchanged
// in per-node mode.
func (c *Context) Intern(s string) string {
	if c.mode != AllocArena {
		return s
	}
	if interned, ok := c.strings[s]; ok {
		return interned
	}
	c.strings[s] = s
	return s
}

func (c *Context) checkOpen() {
	if c.closed {
		panic("ttlast: node created on released Context")
	}
	c.created++
}

func grab[T any](c *Context, s *slab[T]) *T {
	if c.mode == AllocPerNode {
		return new(T)
	}
	return s.get()
}

// NewDocument creates the root document node.
func (c *Context) NewDocument(span Span) *Document {
	c.checkOpen()
	return &Document{baseNode: baseNode{span: span}}
}

// NewIRI creates an IRI node.
func (c *Context) NewIRI(span Span, value string, absolute bool) *IRI {
	c.checkOpen()
	n := grab(c, &c.iris)
	*n = IRI{baseNode: baseNode{span: span}, Value: c.Intern(value), Absolute: absolute}
	return n
}

// NewPrefixedName creates a prefix:local node.
func (c *Context) NewPrefixedName(span Span, prefix, local string) *PrefixedName {
	c.checkOpen()
	n := grab(c, &c.pnames)
	*n = PrefixedName{baseNode: baseNode{span: span}, Prefix: c.Intern(prefix), Local: c.Intern(local)}
	return n
}

// NewBlankNode creates a labeled blank node.
func (c *Context) NewBlankNode(span Span, label string) *BlankNode {
	c.checkOpen()
	n := grab(c, &c.blanks)
	*n = BlankNode{baseNode: baseNode{span: span}, Label: c.Intern(label)}
	return n
}

// NewAnonBlankNode creates an anonymous blank node with a generated id.
func (c *Context) NewAnonBlankNode(span Span) *BlankNode {
	c.checkOpen()
	n := grab(c, &c.blanks)
	*n = BlankNode{baseNode: baseNode{span: span}, ID: c.NextBlankID()}
	return n
}

// NewStringLiteral creates a string literal node with escapes decoded.
func (c *Context) NewStringLiteral(span Span, value string, long bool) *StringLiteral {
	c.checkOpen()
	n := grab(c, &c.strLits)
	*n = StringLiteral{baseNode: baseNode{span: span}, Value: c.Intern(value), Long: long}
	return n
}

// NewNumericLiteral creates a numeric literal node.
func (c *Context) NewNumericLiteral(span Span, raw string, kind NumericKind, i int64, f float64) *NumericLiteral {
	c.checkOpen()
	n := grab(c, &c.numLits)
	*n = NumericLiteral{baseNode: baseNode{span: span}, Raw: c.Intern(raw), Numeric: kind, Int: i, Float: f}
	return n
}

// NewBooleanLiteral creates a boolean literal node.
func (c *Context) NewBooleanLiteral(span Span, value bool) *BooleanLiteral {
	c.checkOpen()
	return &BooleanLiteral{baseNode: baseNode{span: span}, Value: value}
}

// NewTypedLiteral creates a `"v"^^datatype` node and takes the datatype's
// parent link.
func (c *Context) NewTypedLiteral(span Span, value string, datatype Node) *TypedLiteral {
	c.checkOpen()
	n := &TypedLiteral{baseNode: baseNode{span: span}, Value: c.Intern(value), Datatype: datatype}
	if datatype != nil {
		datatype.setParent(n)
	}
	return n
}

// NewLangLiteral creates a `"v"@lang` node.
func (c *Context) NewLangLiteral(span Span, value, lang string) *LangLiteral {
	c.checkOpen()
	return &LangLiteral{baseNode: baseNode{span: span}, Value: c.Intern(value), Lang: c.Intern(lang)}
}

// NewTriple creates a triple and takes parent links for both children.
func (c *Context) NewTriple(span Span, subject Node, predicates *PredicateObjectList) *Triple {
	c.checkOpen()
	n := grab(c, &c.triples)
	*n = Triple{baseNode: baseNode{span: span}, Subject: subject, Predicates: predicates}
	if subject != nil {
		subject.setParent(n)
	}
	if predicates != nil {
		predicates.setParent(n)
	}
	return n
}

// NewPredicateObjectList creates an empty predicate-object list.
func (c *Context) NewPredicateObjectList(span Span) *PredicateObjectList {
	c.checkOpen()
	n := grab(c, &c.polLists)
	*n = PredicateObjectList{baseNode: baseNode{span: span}}
	return n
}

// NewObjectList creates an empty object list.
func (c *Context) NewObjectList(span Span) *ObjectList {
	c.checkOpen()
	n := grab(c, &c.objLists)
	*n = ObjectList{baseNode: baseNode{span: span}}
	return n
}

// NewCollection creates an empty collection node.
func (c *Context) NewCollection(span Span) *Collection {
	c.checkOpen()
	return &Collection{baseNode: baseNode{span: span}}
}

// NewBlankNodePropertyList creates a `[...]` node; properties may be nil
// for the bare `[]` form.
func (c *Context) NewBlankNodePropertyList(span Span, properties *PredicateObjectList) *BlankNodePropertyList {
	c.checkOpen()
	n := &BlankNodePropertyList{baseNode: baseNode{span: span}, Properties: properties}
	if properties != nil {
		properties.setParent(n)
	}
	return n
}

// NewPrefixDirective creates an `@prefix` node and takes the IRI's parent
// link.
func (c *Context) NewPrefixDirective(span Span, prefix string, iri *IRI) *PrefixDirective {
	c.checkOpen()
	n := &PrefixDirective{baseNode: baseNode{span: span}, Prefix: c.Intern(prefix), IRI: iri}
	if iri != nil {
		iri.setParent(n)
	}
	return n
}

// NewBaseDirective creates an `@base` node and takes the IRI's parent link.
func (c *Context) NewBaseDirective(span Span, iri *IRI) *BaseDirective {
	c.checkOpen()
	n := &BaseDirective{baseNode: baseNode{span: span}, IRI: iri}
	if iri != nil {
		iri.setParent(n)
	}
	return n
}

// NewRdfType creates the `a` predicate shorthand node.
func (c *Context) NewRdfType(span Span) *RdfType {
	c.checkOpen()
	return &RdfType{baseNode: baseNode{span: span}}
}

// NewComment creates a comment node.
func (c *Context) NewComment(span Span, text string) *Comment {
	c.checkOpen()
	return &Comment{baseNode: baseNode{span: span}, Text: c.Intern(text)}
}
