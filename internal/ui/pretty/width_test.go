package pretty

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalWidth_NonTerminal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultTermWidth, TerminalWidth(&bytes.Buffer{}))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		s     string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello..."},
		{"tiny width unchanged", "hello", 3, "hello"},
		{"empty", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Truncate(tt.s, tt.width))
		})
	}
}
