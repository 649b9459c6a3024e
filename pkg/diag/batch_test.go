package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goturtle/pkg/diag"
	"github.com/yaklabco/goturtle/pkg/ttlast"
	"github.com/yaklabco/goturtle/pkg/turtle"
)

func perrAt(line, col int, msg string) *turtle.ParseError {
	return &turtle.ParseError{
		Type:     turtle.ErrUnexpectedToken,
		Severity: turtle.SeverityError,
		Span:     ttlast.Span{Line: line, Column: col, Length: 1},
		Message:  msg,
	}
}

func TestBatch_SortsByPosition(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatCompact))
	b := e.NewBatch()

	src := turtle.NewSource("input.ttl", nil)
	b.Add(src, perrAt(5, 3, "third"))
	b.Add(src, perrAt(2, 10, "first"))
	b.Add(src, perrAt(5, 1, "second"))

	sum, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Errors)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "input.ttl:2:10: error: first", lines[0])
	assert.Equal(t, "input.ttl:5:1: error: second", lines[1])
	assert.Equal(t, "input.ttl:5:3: error: third", lines[2])
}

func TestBatch_SortsBySourceFirst(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatCompact))
	b := e.NewBatch()

	b.Add(turtle.NewSource("b.ttl", nil), perrAt(1, 1, "from b"))
	b.Add(turtle.NewSource("a.ttl", nil), perrAt(9, 9, "from a"))

	_, err := b.Flush()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "a.ttl:"))
	assert.True(t, strings.HasPrefix(lines[1], "b.ttl:"))
}

func TestBatch_SummaryCounts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatCompact))
	b := e.NewBatch()

	src := turtle.NewSource("input.ttl", nil)
	b.Add(src, perrAt(1, 1, "an error"))
	b.Add(src, &turtle.ParseError{
		Type:     turtle.ErrDuplicatePrefix,
		Severity: turtle.SeverityWarning,
		Span:     ttlast.Span{Line: 2, Column: 1},
		Message:  "a warning",
	})
	b.Add(src, &turtle.ParseError{
		Type:     turtle.ErrMissingDot,
		Severity: turtle.SeverityError,
		Span:     ttlast.Span{Line: 3, Column: 1},
		Message:  "missing dot",
	})

	sum, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Errors)
	assert.Equal(t, 1, sum.Warnings)
	assert.Equal(t, 3, sum.Total())
	// Enhance gives duplicate-prefix and missing-dot canned suggestions.
	assert.Equal(t, 2, sum.Suggestions)
}

func TestBatch_SuppressedDropped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatCompact))
	e.SuppressWarning(turtle.ErrDuplicatePrefix)
	b := e.NewBatch()

	queued := b.Add(nil, &turtle.ParseError{
		Type:     turtle.ErrDuplicatePrefix,
		Severity: turtle.SeverityWarning,
		Span:     ttlast.Span{Line: 1, Column: 1},
		Message:  "dup",
	})
	assert.False(t, queued)
	assert.Equal(t, 0, b.Len())

	sum, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total())
	assert.Empty(t, buf.String())
}

func TestBatch_AddAll(t *testing.T) {
	t.Parallel()

	e := diag.New(testOptions(&bytes.Buffer{}, diag.FormatCompact))
	e.SuppressWarning(turtle.ErrDuplicatePrefix)
	b := e.NewBatch()

	errs := []*turtle.ParseError{
		perrAt(1, 1, "one"),
		{
			Type:     turtle.ErrDuplicatePrefix,
			Severity: turtle.SeverityWarning,
			Span:     ttlast.Span{Line: 2, Column: 1},
			Message:  "dup",
		},
		perrAt(3, 1, "two"),
	}

	added := b.AddAll(turtle.NewSource("input.ttl", nil), errs)
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, b.Len())
}

func TestBatch_HumanSummaryLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatHuman))
	b := e.NewBatch()

	b.Add(nil, perrAt(1, 1, "boom"))
	sum, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Errors)
	assert.Contains(t, buf.String(), "1 errors, 0 warnings, 0 suggestions")
}

func TestBatch_CompactOmitsSummaryLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	e := diag.New(testOptions(&buf, diag.FormatCompact))
	b := e.NewBatch()

	b.Add(nil, perrAt(1, 1, "boom"))
	_, err := b.Flush()
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "errors,")
}

func TestBatch_FlushResets(t *testing.T) {
	t.Parallel()

	e := diag.New(testOptions(&bytes.Buffer{}, diag.FormatCompact))
	b := e.NewBatch()

	b.Add(nil, perrAt(1, 1, "boom"))
	_, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	sum, err := b.Flush()
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total())
}
