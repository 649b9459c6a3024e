package pretty

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// SummaryStats holds the counts rendered by the summary formatters.
type SummaryStats struct {
	FilesChecked    int
	FilesWithIssues int
	Diagnostics     int
	Errors          int
	Warnings        int
	Suggestions     int
}

// FormatSummaryOneLine formats batch statistics as a single line.
// Example: "12 diagnostics (8 errors, 4 warnings) in 3 files".
func (s *Styles) FormatSummaryOneLine(stats SummaryStats) string {
	if stats.Diagnostics == 0 {
		return s.Success.Render("No problems found") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesChecked)) + "\n"
	}

	var parts []string

	diagWord := "diagnostics"
	if stats.Diagnostics == 1 {
		diagWord = "diagnostic"
	}

	var severityParts []string
	if stats.Errors > 0 {
		severityParts = append(severityParts, s.Error.Render(fmt.Sprintf("%d errors", stats.Errors)))
	}
	if stats.Warnings > 0 {
		severityParts = append(severityParts, s.Warning.Render(fmt.Sprintf("%d warnings", stats.Warnings)))
	}

	if len(severityParts) > 0 {
		parts = append(parts, fmt.Sprintf("%d %s (%s)", stats.Diagnostics, diagWord, strings.Join(severityParts, ", ")))
	} else {
		parts = append(parts, fmt.Sprintf("%d %s", stats.Diagnostics, diagWord))
	}

	fileWord := wordFiles
	if stats.FilesWithIssues == 1 {
		fileWord = wordFile
	}
	parts = append(parts, fmt.Sprintf("in %d %s", stats.FilesWithIssues, fileWord))

	if stats.Suggestions > 0 {
		parts = append(parts, s.Suggestion.Render(fmt.Sprintf("%d suggestions", stats.Suggestions)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats batch statistics as a summary block.
func (s *Styles) FormatSummary(stats SummaryStats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:     " +
		s.Bold.Render(strconv.Itoa(stats.FilesChecked)) + "\n")

	if stats.FilesWithIssues > 0 {
		builder.WriteString("  Files with issues: " +
			s.Failure.Render(strconv.Itoa(stats.FilesWithIssues)) + "\n")
	}

	builder.WriteString("\n")

	builder.WriteString("  Total diagnostics: " +
		s.Bold.Render(strconv.Itoa(stats.Diagnostics)) + "\n")

	if stats.Errors > 0 {
		builder.WriteString("    Errors:          " +
			s.Error.Render(strconv.Itoa(stats.Errors)) + "\n")
	}
	if stats.Warnings > 0 {
		builder.WriteString("    Warnings:        " +
			s.Warning.Render(strconv.Itoa(stats.Warnings)) + "\n")
	}
	if stats.Suggestions > 0 {
		builder.WriteString("    Suggestions:     " +
			s.Suggestion.Render(strconv.Itoa(stats.Suggestions)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.Errors > 0:
		builder.WriteString(s.Failure.Render("Check failed with errors"))
	case stats.Warnings > 0:
		builder.WriteString(s.Warning.Render("Check completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Check passed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
