package ttlast

// Span locates a node or token in the source text.
// Line and Column are 1-based; Offset and Length count bytes.
type Span struct {
	Line   int
	Column int
	Offset int
	Length int
}

// IsValid returns true if the span has positive line/column values.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// End returns the byte offset just past the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// Node is the closed interface implemented by every AST variant.
// Child ordering is stable per variant, and ChildCount/Child give uniform
// structural access for the traversal protocol; consumers that need payloads
// dispatch with a type switch over the concrete variants.
//
// The parent link is informational only: it is set on attach and must never
// be used to make ownership or teardown decisions.
type Node interface {
	Kind() NodeKind
	Span() Span
	Parent() Node
	ChildCount() int
	Child(i int) Node

	setParent(Node)
	sealed()
}

type baseNode struct {
	span   Span
	parent Node
}

func (b *baseNode) Span() Span       { return b.span }
func (b *baseNode) Parent() Node     { return b.parent }
func (b *baseNode) setParent(p Node) { b.parent = p }
func (b *baseNode) sealed()          {}
func (b *baseNode) ChildCount() int  { return 0 }
func (b *baseNode) Child(int) Node   { return nil }

// Document is the AST root: a growable list of directives and triples.
type Document struct {
	baseNode
	Statements []Node
}

func (n *Document) Kind() NodeKind   { return KindDocument }
func (n *Document) ChildCount() int  { return len(n.Statements) }
func (n *Document) Child(i int) Node { return n.Statements[i] }

// AddStatement appends a top-level statement and takes the parent link.
func (n *Document) AddStatement(stmt Node) {
	stmt.setParent(n)
	n.Statements = append(n.Statements, stmt)
}

// PrefixDirective records `@prefix p: <iri> .`. An empty Prefix is the
// default namespace (`@prefix : <iri> .`).
type PrefixDirective struct {
	baseNode
	Prefix string
	IRI    *IRI
}

func (n *PrefixDirective) Kind() NodeKind  { return KindPrefixDirective }
func (n *PrefixDirective) ChildCount() int { return 1 }
func (n *PrefixDirective) Child(i int) Node {
	if i == 0 {
		return n.IRI
	}
	return nil
}

// BaseDirective records `@base <iri> .`.
type BaseDirective struct {
	baseNode
	IRI *IRI
}

func (n *BaseDirective) Kind() NodeKind  { return KindBaseDirective }
func (n *BaseDirective) ChildCount() int { return 1 }
func (n *BaseDirective) Child(i int) Node {
	if i == 0 {
		return n.IRI
	}
	return nil
}

// Triple is one subject with its predicate-object list.
type Triple struct {
	baseNode
	Subject    Node
	Predicates *PredicateObjectList
}

func (n *Triple) Kind() NodeKind  { return KindTriple }
func (n *Triple) ChildCount() int { return 2 }
func (n *Triple) Child(i int) Node {
	switch i {
	case 0:
		return n.Subject
	case 1:
		return n.Predicates
	}
	return nil
}

// PredicateObject is one `predicate objectList` group within a
// predicate-object list.
type PredicateObject struct {
	Predicate Node
	Objects   *ObjectList
}

// PredicateObjectList is the `;`-separated group of predicate/object-list
// pairs sharing one subject. Pairs are stored flat: Child(2i) is the i-th
// predicate and Child(2i+1) its object list.
type PredicateObjectList struct {
	baseNode
	Pairs []PredicateObject
}

func (n *PredicateObjectList) Kind() NodeKind  { return KindPredicateObjectList }
func (n *PredicateObjectList) ChildCount() int { return 2 * len(n.Pairs) }
func (n *PredicateObjectList) Child(i int) Node {
	pair := n.Pairs[i/2]
	if i%2 == 0 {
		return pair.Predicate
	}
	return pair.Objects
}

// AddPair appends a predicate with its object list and takes parent links.
func (n *PredicateObjectList) AddPair(pred Node, objects *ObjectList) {
	pred.setParent(n)
	objects.setParent(n)
	n.Pairs = append(n.Pairs, PredicateObject{Predicate: pred, Objects: objects})
}

// ObjectList is the `,`-separated list of objects for one predicate.
type ObjectList struct {
	baseNode
	Objects []Node
}

func (n *ObjectList) Kind() NodeKind   { return KindObjectList }
func (n *ObjectList) ChildCount() int  { return len(n.Objects) }
func (n *ObjectList) Child(i int) Node { return n.Objects[i] }

// AddObject appends an object and takes the parent link.
func (n *ObjectList) AddObject(obj Node) {
	obj.setParent(n)
	n.Objects = append(n.Objects, obj)
}

// IRI is an IRI reference. Absolute marks references carrying a scheme.
type IRI struct {
	baseNode
	Value    string
	Absolute bool
}

func (n *IRI) Kind() NodeKind { return KindIRI }

// PrefixedName is the `prefix:local` shorthand. Resolution against the
// prefix table happens during parsing; the node keeps the written form.
type PrefixedName struct {
	baseNode
	Prefix string
	Local  string
}

func (n *PrefixedName) Kind() NodeKind { return KindPrefixedName }

// BlankNode is a labeled (`_:x`) or anonymous blank node. Anonymous nodes
// carry a context-unique generated ID and an empty label.
type BlankNode struct {
	baseNode
	Label string
	ID    uint64
}

func (n *BlankNode) Kind() NodeKind { return KindBlankNode }

// StringLiteral is a plain quoted literal, short or long form, with escapes
// already decoded.
type StringLiteral struct {
	baseNode
	Value string
	Long  bool
}

func (n *StringLiteral) Kind() NodeKind { return KindStringLiteral }

// NumericLiteral is an integer, decimal, or double literal. Raw preserves
// the written form; Int/Float hold the decoded value per subkind.
type NumericLiteral struct {
	baseNode
	Raw     string
	Numeric NumericKind
	Int     int64
	Float   float64
}

func (n *NumericLiteral) Kind() NodeKind { return KindNumericLiteral }

// BooleanLiteral is `true` or `false`.
type BooleanLiteral struct {
	baseNode
	Value bool
}

func (n *BooleanLiteral) Kind() NodeKind { return KindBooleanLiteral }

// TypedLiteral is `"value"^^datatype`; Datatype is an IRI or PrefixedName.
type TypedLiteral struct {
	baseNode
	Value    string
	Datatype Node
}

func (n *TypedLiteral) Kind() NodeKind  { return KindTypedLiteral }
func (n *TypedLiteral) ChildCount() int { return 1 }
func (n *TypedLiteral) Child(i int) Node {
	if i == 0 {
		return n.Datatype
	}
	return nil
}

// LangLiteral is `"value"@lang`.
type LangLiteral struct {
	baseNode
	Value string
	Lang  string
}

func (n *LangLiteral) Kind() NodeKind { return KindLangLiteral }

// Collection is the `( ... )` RDF collection shorthand.
type Collection struct {
	baseNode
	Items []Node
}

func (n *Collection) Kind() NodeKind   { return KindCollection }
func (n *Collection) ChildCount() int  { return len(n.Items) }
func (n *Collection) Child(i int) Node { return n.Items[i] }

// AddItem appends a collection item and takes the parent link.
func (n *Collection) AddItem(item Node) {
	item.setParent(n)
	n.Items = append(n.Items, item)
}

// BlankNodePropertyList is the `[ p o ; ... ]` anonymous-subject shorthand.
// Properties is nil for the empty `[]` form.
type BlankNodePropertyList struct {
	baseNode
	Properties *PredicateObjectList
}

func (n *BlankNodePropertyList) Kind() NodeKind { return KindBlankNodePropertyList }
func (n *BlankNodePropertyList) ChildCount() int {
	if n.Properties == nil {
		return 0
	}
	return 1
}
func (n *BlankNodePropertyList) Child(i int) Node {
	if i == 0 && n.Properties != nil {
		return n.Properties
	}
	return nil
}

// RdfType is the `a` keyword in predicate position (rdf:type shorthand).
type RdfType struct {
	baseNode
}

func (n *RdfType) Kind() NodeKind { return KindRdfType }

// Comment is a `# ...` comment, collected only when comment tracking is on.
type Comment struct {
	baseNode
	Text string
}

func (n *Comment) Kind() NodeKind { return KindComment }
