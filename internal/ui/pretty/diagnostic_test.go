package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnippet(t *testing.T) {
	t.Parallel()

	snip := RenderSnippet("ex:s ex:p ex:o", 6, 4)
	assert.Equal(t, "ex:s ex:p ex:o", snip.Line)
	assert.Equal(t, "     ^^^^", snip.Caret)
}

func TestRenderSnippet_SingleCaret(t *testing.T) {
	t.Parallel()

	snip := RenderSnippet("abc", 2, 0)
	assert.Equal(t, " ^", snip.Caret)
}

func TestRenderSnippet_ClampsToLine(t *testing.T) {
	t.Parallel()

	snip := RenderSnippet("short", 3, 50)
	assert.Equal(t, "  ^^^", snip.Caret)
}

func TestRenderSnippet_ColumnPastEnd(t *testing.T) {
	t.Parallel()

	// A missing-token diagnostic can point just past the line.
	snip := RenderSnippet("ex:s ex:p ex:o", 15, 1)
	assert.Equal(t, "              ^", snip.Caret)
}

func TestRenderSnippet_InvalidColumn(t *testing.T) {
	t.Parallel()

	snip := RenderSnippet("abc", 0, 1)
	assert.Equal(t, "^", snip.Caret)
}

func TestRenderSnippet_ExpandsTabs(t *testing.T) {
	t.Parallel()

	// Byte column 2 lands on 'x'; after tab expansion the caret sits at
	// visual column 5.
	snip := RenderSnippet("\tx", 2, 1)
	assert.Equal(t, "    x", snip.Line)
	assert.Equal(t, "    ^", snip.Caret)
}

func TestFormatLocation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "input.ttl:3:14", FormatLocation("input.ttl", 3, 14))
}
