package ttlast

import "fmt"

// ValidationError describes the first structural violation found in a tree.
type ValidationError struct {
	Kind NodeKind
	Span Span
	Msg  string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Span.Line, e.Span.Column, e.Msg)
}

// Validate checks required fields per variant, depth-first, and returns
// the first violation found, or nil for a structurally sound tree.
func Validate(root Node) error {
	if root == nil {
		return &ValidationError{Msg: "nil node"}
	}
	return validate(root)
}

func validate(n Node) error {
	if err := checkNode(n); err != nil {
		return err
	}
	for i, count := 0, n.ChildCount(); i < count; i++ {
		child := n.Child(i)
		if child == nil {
			return fail(n, fmt.Sprintf("nil child at index %d", i))
		}
		if err := validate(child); err != nil {
			return err
		}
	}
	return nil
}

func checkNode(n Node) error {
	switch n := n.(type) {
	case *IRI:
		if n.Value == "" {
			return fail(n, "empty IRI value")
		}
	case *PrefixedName:
		if n.Prefix == "" && n.Local == "" {
			return fail(n, "prefixed name without prefix or local part")
		}
	case *BlankNode:
		if n.Label == "" && n.ID == 0 {
			return fail(n, "blank node without label or generated id")
		}
	case *Triple:
		if n.Subject == nil {
			return fail(n, "triple without subject")
		}
		if n.Predicates == nil {
			return fail(n, "triple without predicate-object list")
		}
	case *PredicateObjectList:
		for _, pair := range n.Pairs {
			if pair.Predicate == nil {
				return fail(n, "predicate-object pair without predicate")
			}
			if pair.Objects == nil {
				return fail(n, "predicate-object pair without objects")
			}
		}
	case *ObjectList:
		if len(n.Objects) == 0 {
			return fail(n, "empty object list")
		}
	case *TypedLiteral:
		if n.Datatype == nil {
			return fail(n, "typed literal without datatype")
		}
	case *LangLiteral:
		if n.Lang == "" {
			return fail(n, "language literal without language tag")
		}
	case *PrefixDirective:
		if n.IRI == nil {
			return fail(n, "prefix directive without IRI")
		}
	case *BaseDirective:
		if n.IRI == nil {
			return fail(n, "base directive without IRI")
		}
	case *NumericLiteral:
		if n.Raw == "" {
			return fail(n, "numeric literal without source form")
		}
	}
	return nil
}

func fail(n Node, msg string) error {
	return &ValidationError{Kind: n.Kind(), Span: n.Span(), Msg: msg}
}
