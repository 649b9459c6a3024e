package ttlast_test

import (
	"fmt"
	"testing"

	"github.com/yaklabco/goturtle/pkg/ttlast"
)

func TestContext_BlankIDs(t *testing.T) {
	t.Parallel()

	for _, mode := range []ttlast.AllocMode{ttlast.AllocArena, ttlast.AllocPerNode} {
		ctx := ttlast.NewContext(mode)
		if id := ctx.NextBlankID(); id != 1 {
			t.Errorf("mode %d: first id = %d, want 1", mode, id)
		}
		if id := ctx.NextBlankID(); id != 2 {
			t.Errorf("mode %d: second id = %d, want 2", mode, id)
		}
	}
}

func TestContext_AnonBlankNodes(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocArena)
	span := ttlast.Span{Line: 1, Column: 1}

	a := ctx.NewAnonBlankNode(span)
	b := ctx.NewAnonBlankNode(span)

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("anon ids = %d, %d; want 1, 2", a.ID, b.ID)
	}
	if a.Label != "" || b.Label != "" {
		t.Error("anonymous blank nodes should have no label")
	}
}

func TestContext_Stats(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocArena)
	buildTestTree(ctx)

	stats := ctx.Stats()
	if stats.NodesCreated != 8 {
		t.Errorf("NodesCreated = %d, want 8", stats.NodesCreated)
	}
	if stats.BlankNodes != 0 {
		t.Errorf("BlankNodes = %d, want 0", stats.BlankNodes)
	}
}

func TestContext_Intern(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocArena)

	a := ctx.Intern("http://example.org/p")
	b := ctx.Intern("http://example.org/p")
	if a != b {
		t.Error("interned strings should be equal")
	}

	stats := ctx.Stats()
	if stats.StringsInterned != 1 {
		t.Errorf("StringsInterned = %d, want 1", stats.StringsInterned)
	}

	// Per-node mode passes strings through without tracking.
	perNode := ttlast.NewContext(ttlast.AllocPerNode)
	if got := perNode.Intern("x"); got != "x" {
		t.Errorf("Intern = %q, want x", got)
	}
	if perNode.Stats().StringsInterned != 0 {
		t.Error("per-node mode should not intern")
	}
}

func TestContext_ArenaSpansBlocks(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocArena)
	span := ttlast.Span{Line: 1, Column: 1}

	// Enough nodes to force the slab onto a second block.
	nodes := make([]*ttlast.IRI, 0, 5000)
	for i := range 5000 {
		nodes = append(nodes, ctx.NewIRI(span, fmt.Sprintf("http://example.org/%d", i), true))
	}
	for i, n := range nodes {
		want := fmt.Sprintf("http://example.org/%d", i)
		if n.Value != want {
			t.Fatalf("node %d: Value = %q, want %q", i, n.Value, want)
		}
	}
	if ctx.Stats().NodesCreated != 5000 {
		t.Errorf("NodesCreated = %d, want 5000", ctx.Stats().NodesCreated)
	}
}

func TestContext_ReleasePanics(t *testing.T) {
	t.Parallel()

	ctx := ttlast.NewContext(ttlast.AllocArena)
	ctx.NewDocument(ttlast.Span{Line: 1, Column: 1})
	ctx.Release()

	defer func() {
		if recover() == nil {
			t.Error("expected panic creating node on released context")
		}
	}()
	ctx.NewDocument(ttlast.Span{Line: 1, Column: 1})
}

func TestContext_ModesBuildSameTree(t *testing.T) {
	t.Parallel()

	arena := ttlast.NewContext(ttlast.AllocArena)
	perNode := ttlast.NewContext(ttlast.AllocPerNode)

	a := collectKinds(buildTestTree(arena), ttlast.PreOrder)
	b := collectKinds(buildTestTree(perNode), ttlast.PreOrder)

	kindsEqual(t, a, b)
}
