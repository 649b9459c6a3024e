// Package ttlast defines the Turtle abstract syntax tree: the closed set of
// node variants, the allocation context that owns them, and the traversal
// protocol consumed by serializers and query code.
package ttlast

// NodeKind classifies the type of an AST node.
type NodeKind uint16

// Node kinds for every Turtle construct the parser produces.
const (
	KindDocument NodeKind = iota
	KindPrefixDirective
	KindBaseDirective
	KindTriple
	KindPredicateObjectList
	KindObjectList
	KindIRI
	KindPrefixedName
	KindBlankNode
	KindStringLiteral
	KindNumericLiteral
	KindBooleanLiteral
	KindTypedLiteral
	KindLangLiteral
	KindCollection
	KindBlankNodePropertyList
	KindRdfType
	KindComment
)

var kindNames = [...]string{
	KindDocument:              "Document",
	KindPrefixDirective:       "PrefixDirective",
	KindBaseDirective:         "BaseDirective",
	KindTriple:                "Triple",
	KindPredicateObjectList:   "PredicateObjectList",
	KindObjectList:            "ObjectList",
	KindIRI:                   "IRI",
	KindPrefixedName:          "PrefixedName",
	KindBlankNode:             "BlankNode",
	KindStringLiteral:         "StringLiteral",
	KindNumericLiteral:        "NumericLiteral",
	KindBooleanLiteral:        "BooleanLiteral",
	KindTypedLiteral:          "TypedLiteral",
	KindLangLiteral:           "LangLiteral",
	KindCollection:            "Collection",
	KindBlankNodePropertyList: "BlankNodePropertyList",
	KindRdfType:               "RdfType",
	KindComment:               "Comment",
}

// String returns the variant name for the kind.
func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// NumericKind distinguishes the three numeric literal forms.
type NumericKind uint8

// Numeric literal subkinds.
const (
	NumInteger NumericKind = iota
	NumDecimal
	NumDouble
)

// String returns the subkind name.
func (k NumericKind) String() string {
	switch k {
	case NumInteger:
		return "integer"
	case NumDecimal:
		return "decimal"
	case NumDouble:
		return "double"
	default:
		return "unknown"
	}
}
