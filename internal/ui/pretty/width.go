package pretty

import (
	"io"
	"os"

	"golang.org/x/term"
)

const defaultTermWidth = 100

// TerminalWidth returns the column width of the terminal behind the
// writer, or a fixed default when the writer is not a terminal.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// Truncate trims s to at most width bytes, appending an ellipsis when
// anything was removed. Widths below 4 return s unchanged.
func Truncate(s string, width int) string {
	if width < 4 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
