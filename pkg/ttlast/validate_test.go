package ttlast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/goturtle/pkg/ttlast"
)

func TestValidate_SoundTree(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocPerNode)
	doc := buildTestTree(ctx)

	if err := ttlast.Validate(doc); err != nil {
		t.Errorf("Validate returned %v for a sound tree", err)
	}
}

func TestValidate_NilRoot(t *testing.T) {
	t.Parallel()

	if err := ttlast.Validate(nil); err == nil {
		t.Error("expected error for nil root")
	}
}

func TestValidate_EmptyIRI(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocPerNode)
	doc := ctx.NewDocument(ttlast.Span{Line: 1, Column: 1})
	doc.AddStatement(ctx.NewIRI(ttlast.Span{Line: 2, Column: 3}, "", false))

	err := ttlast.Validate(doc)
	if err == nil {
		t.Fatal("expected error for empty IRI")
	}

	var verr *ttlast.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if verr.Kind != ttlast.KindIRI {
		t.Errorf("Kind = %s, want IRI", verr.Kind)
	}
	if verr.Span.Line != 2 || verr.Span.Column != 3 {
		t.Errorf("Span = %d:%d, want 2:3", verr.Span.Line, verr.Span.Column)
	}
}

func TestValidate_EmptyObjectList(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocPerNode)
	span := ttlast.Span{Line: 1, Column: 1}

	pol := ctx.NewPredicateObjectList(span)
	pol.AddPair(ctx.NewRdfType(span), ctx.NewObjectList(span))
	triple := ctx.NewTriple(span, ctx.NewIRI(span, "http://example.org/s", true), pol)

	doc := ctx.NewDocument(span)
	doc.AddStatement(triple)

	err := ttlast.Validate(doc)
	if err == nil {
		t.Fatal("expected error for empty object list")
	}
	var verr *ttlast.ValidationError
	if errors.As(err, &verr) && verr.Kind != ttlast.KindObjectList {
		t.Errorf("Kind = %s, want ObjectList", verr.Kind)
	}
}

func TestValidate_TypedLiteralWithoutDatatype(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocPerNode)
	span := ttlast.Span{Line: 1, Column: 1}

	lit := ctx.NewTypedLiteral(span, "5", nil)
	if err := ttlast.Validate(lit); err == nil {
		t.Error("expected error for typed literal without datatype")
	}
}
