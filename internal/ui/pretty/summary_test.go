package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSummaryOneLine_Clean(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	out := s.FormatSummaryOneLine(SummaryStats{FilesChecked: 3})
	assert.Equal(t, "No problems found (3 files checked)\n", out)
}

func TestFormatSummaryOneLine_WithIssues(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	out := s.FormatSummaryOneLine(SummaryStats{
		FilesChecked:    3,
		FilesWithIssues: 2,
		Diagnostics:     12,
		Errors:          8,
		Warnings:        4,
	})
	assert.Equal(t, "12 diagnostics (8 errors, 4 warnings), in 2 files\n", out)
}

func TestFormatSummaryOneLine_Singular(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	out := s.FormatSummaryOneLine(SummaryStats{
		FilesChecked:    1,
		FilesWithIssues: 1,
		Diagnostics:     1,
		Errors:          1,
	})
	assert.Contains(t, out, "1 diagnostic (")
	assert.Contains(t, out, "in 1 file\n")
}

func TestFormatSummaryOneLine_Suggestions(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	out := s.FormatSummaryOneLine(SummaryStats{
		FilesWithIssues: 1,
		Diagnostics:     2,
		Warnings:        2,
		Suggestions:     2,
	})
	assert.Contains(t, out, "2 suggestions")
}

func TestFormatSummary_Verdicts(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)

	assert.Contains(t, s.FormatSummary(SummaryStats{FilesChecked: 1}), "Check passed")
	assert.Contains(t,
		s.FormatSummary(SummaryStats{FilesChecked: 1, Diagnostics: 1, Warnings: 1}),
		"Check completed with warnings")
	assert.Contains(t,
		s.FormatSummary(SummaryStats{FilesChecked: 1, Diagnostics: 2, Errors: 1, Warnings: 1}),
		"Check failed with errors")
}

func TestFormatSummary_Counts(t *testing.T) {
	t.Parallel()

	s := NewStyles(false)
	out := s.FormatSummary(SummaryStats{
		FilesChecked:    5,
		FilesWithIssues: 2,
		Diagnostics:     7,
		Errors:          4,
		Warnings:        3,
	})
	assert.Contains(t, out, "Files checked:     5")
	assert.Contains(t, out, "Files with issues: 2")
	assert.Contains(t, out, "Total diagnostics: 7")
	assert.Contains(t, out, "Errors:          4")
	assert.Contains(t, out, "Warnings:        3")
	assert.NotContains(t, out, "Suggestions:")
}
