// Package diag formats and reports parse diagnostics.
package diag

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/goturtle/internal/ui/pretty"
	"github.com/yaklabco/goturtle/pkg/turtle"
)

const bufWriterSize = 32 * 1024

// Options controls diagnostic output.
type Options struct {
	// Format selects the output format. Defaults to FormatHuman.
	Format Format

	// Writer receives formatted output. Defaults to stderr.
	Writer io.Writer

	// Color controls color output: "auto", "always", or "never".
	Color string

	// ShowColumn includes column numbers in locations.
	ShowColumn bool

	// ShowSource includes the offending source line with a caret underline.
	ShowSource bool

	// ShowSuggestions includes help and note annotations.
	ShowSuggestions bool

	// Werror treats every warning as an error.
	Werror bool
}

// DefaultOptions returns the default engine options: human-readable,
// colored when the terminal supports it, with column, source context,
// and suggestions enabled, writing to stderr.
func DefaultOptions() Options {
	return Options{
		Format:          FormatHuman,
		Writer:          os.Stderr,
		Color:           "auto",
		ShowColumn:      true,
		ShowSource:      true,
		ShowSuggestions: true,
	}
}

// Engine renders diagnostics according to a severity policy.
type Engine struct {
	opts       Options
	styles     *pretty.Styles
	bw         *bufio.Writer
	suppressed map[turtle.ErrorType]bool
	promoted   map[turtle.ErrorType]bool
}

// New creates an Engine. Zero-value option fields fall back to defaults.
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.Writer == nil {
		opts.Writer = def.Writer
	}
	if opts.Format == "" {
		opts.Format = def.Format
	}
	if opts.Color == "" {
		opts.Color = def.Color
	}
	colorEnabled := opts.Format == FormatHuman && pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &Engine{
		opts:       opts,
		styles:     pretty.NewStyles(colorEnabled),
		bw:         bufio.NewWriterSize(opts.Writer, bufWriterSize),
		suppressed: make(map[turtle.ErrorType]bool),
		promoted:   make(map[turtle.ErrorType]bool),
	}
}

// SuppressWarning drops warning-severity diagnostics of the given type.
func (e *Engine) SuppressWarning(t turtle.ErrorType) {
	e.suppressed[t] = true
}

// PromoteWarning raises warning-severity diagnostics of the given type
// to error severity.
func (e *Engine) PromoteWarning(t turtle.ErrorType) {
	e.promoted[t] = true
}

// ShouldReport applies the severity policy for a diagnostic. It returns
// the effective severity and whether the diagnostic should be emitted.
// Suppression is checked first and only applies to warnings; promotion
// and Werror then reclassify any remaining warning as an error.
func (e *Engine) ShouldReport(t turtle.ErrorType, sev turtle.Severity) (turtle.Severity, bool) {
	if sev == turtle.SeverityWarning && e.suppressed[t] {
		return sev, false
	}
	if sev == turtle.SeverityWarning && (e.promoted[t] || e.opts.Werror) {
		sev = turtle.SeverityError
	}
	return sev, true
}

// Report renders a single diagnostic. Suppressed diagnostics produce no
// output. The source may be nil; snippets are then omitted.
func (e *Engine) Report(src *turtle.Source, perr *turtle.ParseError) error {
	sev, ok := e.ShouldReport(perr.Type, perr.Severity)
	if !ok {
		return nil
	}
	if err := e.render(src, perr, sev); err != nil {
		return err
	}
	return e.bw.Flush()
}

func (e *Engine) render(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	switch e.opts.Format {
	case FormatJSON:
		return e.renderJSON(src, perr, sev)
	case FormatCompact:
		return e.renderCompact(src, perr, sev)
	case FormatGCC:
		return e.renderGCC(src, perr, sev)
	case FormatMSVC:
		return e.renderMSVC(src, perr, sev)
	default:
		return e.renderHuman(src, perr, sev)
	}
}

func sourceName(src *turtle.Source) string {
	if src == nil || src.Name == "" {
		return "<input>"
	}
	return src.Name
}

func (e *Engine) severityStyle(sev turtle.Severity) func(...string) string {
	switch sev {
	case turtle.SeverityWarning:
		return e.styles.Warning.Render
	case turtle.SeverityFatal:
		return e.styles.Fatal.Render
	default:
		return e.styles.Error.Render
	}
}

// renderHuman writes a multi-line diagnostic with a source snippet:
//
//	input.ttl:3:14: error: expected '.' after triple [missing-dot]
//	    3 | :s :p :o
//	      |         ^
//	      = help: insert '.' to terminate the statement
func (e *Engine) renderHuman(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	loc := e.location(src, perr)
	fmt.Fprintf(e.bw, "%s %s %s %s\n",
		e.styles.FilePath.Render(loc+":"),
		e.severityStyle(sev)(sev.String()+":"),
		e.styles.Message.Render(perr.Message),
		e.styles.Dim.Render("["+perr.Type.String()+"]"),
	)

	if e.opts.ShowSource && src != nil && perr.Span.IsValid() {
		line := src.LineContent(perr.Span.Line)
		if len(line) > 0 {
			snip := pretty.RenderSnippet(string(line), perr.Span.Column, perr.Span.Length)
			width := pretty.TerminalWidth(e.opts.Writer)
			gutter := fmt.Sprintf("%5d | ", perr.Span.Line)
			fmt.Fprintf(e.bw, "%s%s\n",
				e.styles.Location.Render(gutter),
				e.styles.SourceLine.Render(pretty.Truncate(snip.Line, width-len(gutter))),
			)
			fmt.Fprintf(e.bw, "%s%s\n",
				e.styles.Location.Render("      | "),
				e.styles.Caret.Render(pretty.Truncate(snip.Caret, width-len(gutter))),
			)
		}
	}

	if e.opts.ShowSuggestions {
		if perr.Note != "" {
			fmt.Fprintf(e.bw, "      = %s %s\n",
				e.styles.Note.Render("note:"), perr.Note)
		}
		if perr.Suggestion != "" {
			fmt.Fprintf(e.bw, "      = %s %s\n",
				e.styles.Suggestion.Render("help:"), perr.Suggestion)
		}
	}
	return nil
}

// renderCompact writes "source:line:col: severity: message".
func (e *Engine) renderCompact(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	fmt.Fprintf(e.bw, "%s: %s: %s\n", e.location(src, perr), sev, perr.Message)
	return nil
}

// renderGCC writes the compact line with a trailing diagnostic flag,
// the way gcc tags warnings.
func (e *Engine) renderGCC(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	fmt.Fprintf(e.bw, "%s: %s: %s [-W%s]\n", e.location(src, perr), sev, perr.Message, perr.Type)
	return nil
}

// renderMSVC writes "source(line,col): severity: message".
func (e *Engine) renderMSVC(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	if e.opts.ShowColumn {
		fmt.Fprintf(e.bw, "%s(%d,%d): %s: %s\n",
			sourceName(src), perr.Span.Line, perr.Span.Column, sev, perr.Message)
	} else {
		fmt.Fprintf(e.bw, "%s(%d): %s: %s\n",
			sourceName(src), perr.Span.Line, sev, perr.Message)
	}
	return nil
}

func (e *Engine) location(src *turtle.Source, perr *turtle.ParseError) string {
	if e.opts.ShowColumn {
		return pretty.FormatLocation(sourceName(src), perr.Span.Line, perr.Span.Column)
	}
	return fmt.Sprintf("%s:%d", sourceName(src), perr.Span.Line)
}
