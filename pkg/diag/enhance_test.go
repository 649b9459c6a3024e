package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/goturtle/pkg/diag"
	"github.com/yaklabco/goturtle/pkg/turtle"
)

func TestEnhance_FillsSuggestionAndNote(t *testing.T) {
	t.Parallel()

	perr := &turtle.ParseError{Type: turtle.ErrUnterminatedString, Message: "string not closed"}
	diag.Enhance(perr)

	assert.Equal(t, "add a closing quote before the end of the line", perr.Suggestion)
	assert.NotEmpty(t, perr.Note)
}

func TestEnhance_KeepsExistingText(t *testing.T) {
	t.Parallel()

	perr := &turtle.ParseError{
		Type:       turtle.ErrMissingDot,
		Message:    "no dot",
		Suggestion: "already set",
	}
	diag.Enhance(perr)

	assert.Equal(t, "already set", perr.Suggestion)
}

func TestEnhance_UnknownTypeUntouched(t *testing.T) {
	t.Parallel()

	perr := &turtle.ParseError{Type: turtle.ErrInternal, Message: "boom"}
	diag.Enhance(perr)

	assert.Empty(t, perr.Suggestion)
	assert.Empty(t, perr.Note)
}
