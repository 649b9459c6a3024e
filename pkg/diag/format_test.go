package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goturtle/pkg/diag"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  diag.Format
	}{
		{"human", diag.FormatHuman},
		{"", diag.FormatHuman},
		{"json", diag.FormatJSON},
		{"compact", diag.FormatCompact},
		{"gcc", diag.FormatGCC},
		{"msvc", diag.FormatMSVC},
	}

	for _, tt := range tests {
		t.Run("input_"+tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := diag.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	t.Parallel()

	_, err := diag.ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, diag.FormatHuman.IsValid())
	assert.True(t, diag.FormatMSVC.IsValid())
	assert.False(t, diag.Format("xml").IsValid())
	assert.False(t, diag.Format("").IsValid())
}

func TestFormat_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "human", diag.FormatHuman.String())
	assert.Equal(t, "json", diag.FormatJSON.String())
}
