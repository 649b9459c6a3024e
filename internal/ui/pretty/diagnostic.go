package pretty

import (
	"fmt"
	"strings"
)

// Snippet holds the pieces of a rendered source excerpt: the offending
// line and a caret underline aligned beneath the span.
type Snippet struct {
	Line  string
	Caret string
}

// RenderSnippet builds a caret underline for a span within a source line.
// Column is 1-based; length is clamped to the remainder of the line and
// is never rendered shorter than a single caret.
func RenderSnippet(line string, column, length int) Snippet {
	if column < 1 {
		column = 1
	}
	if length < 1 {
		length = 1
	}

	// Expand tabs so the caret lines up with what the terminal shows.
	expanded, visCol := expandTabs(line, column)

	remaining := len(expanded) - (visCol - 1)
	if remaining < 1 {
		remaining = 1
	}
	if length > remaining {
		length = remaining
	}

	var caret strings.Builder
	caret.WriteString(strings.Repeat(" ", visCol-1))
	caret.WriteString(strings.Repeat("^", length))

	return Snippet{Line: expanded, Caret: caret.String()}
}

// expandTabs replaces tabs with spaces (tab stop 4) and translates a
// 1-based byte column into the expanded line.
func expandTabs(line string, column int) (string, int) {
	const tabWidth = 4
	var b strings.Builder
	visCol := column
	for i, ch := range line {
		if ch == '\t' {
			pad := tabWidth - b.Len()%tabWidth
			b.WriteString(strings.Repeat(" ", pad))
			if i < column-1 {
				visCol += pad - 1
			}
			continue
		}
		b.WriteRune(ch)
	}
	return b.String(), visCol
}

// FormatLocation renders a source location as name:line:column.
func FormatLocation(name string, line, column int) string {
	return fmt.Sprintf("%s:%d:%d", name, line, column)
}
