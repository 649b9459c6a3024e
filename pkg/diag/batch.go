package diag

import (
	"fmt"
	"sort"

	"github.com/yaklabco/goturtle/pkg/turtle"
)

// Summary counts the diagnostics emitted by a batch.
type Summary struct {
	Errors      int
	Warnings    int
	Suggestions int
}

// Total returns the number of diagnostics reported.
func (s Summary) Total() int { return s.Errors + s.Warnings }

// Batch collects diagnostics, sorts them by source position, and emits
// them in one pass followed by a summary line.
type Batch struct {
	engine  *Engine
	entries []batchEntry
}

type batchEntry struct {
	src  *turtle.Source
	perr *turtle.ParseError
	sev  turtle.Severity
}

// NewBatch creates an empty batch bound to the engine's policy and format.
func (e *Engine) NewBatch() *Batch {
	return &Batch{engine: e}
}

// Add enhances a diagnostic and queues it for reporting. Diagnostics
// suppressed by the engine's policy are dropped. It reports whether the
// diagnostic was queued.
func (b *Batch) Add(src *turtle.Source, perr *turtle.ParseError) bool {
	sev, ok := b.engine.ShouldReport(perr.Type, perr.Severity)
	if !ok {
		return false
	}
	Enhance(perr)
	b.entries = append(b.entries, batchEntry{src: src, perr: perr, sev: sev})
	return true
}

// AddAll queues every diagnostic from a parse result's error list.
func (b *Batch) AddAll(src *turtle.Source, errs []*turtle.ParseError) int {
	var added int
	for _, perr := range errs {
		if b.Add(src, perr) {
			added++
		}
	}
	return added
}

// Len returns the number of queued diagnostics.
func (b *Batch) Len() int { return len(b.entries) }

// Flush sorts the queued diagnostics by line then column, renders them,
// writes a summary line, and resets the batch.
func (b *Batch) Flush() (Summary, error) {
	sort.SliceStable(b.entries, func(i, j int) bool {
		a, c := b.entries[i], b.entries[j]
		if a.src != c.src {
			return sourceName(a.src) < sourceName(c.src)
		}
		if a.perr.Span.Line != c.perr.Span.Line {
			return a.perr.Span.Line < c.perr.Span.Line
		}
		return a.perr.Span.Column < c.perr.Span.Column
	})

	var sum Summary
	e := b.engine
	for _, ent := range b.entries {
		if err := e.render(ent.src, ent.perr, ent.sev); err != nil {
			return sum, err
		}
		switch ent.sev {
		case turtle.SeverityWarning:
			sum.Warnings++
		default:
			sum.Errors++
		}
		if ent.perr.Suggestion != "" {
			sum.Suggestions++
		}
	}

	if e.opts.Format == FormatHuman && len(b.entries) > 0 {
		fmt.Fprintf(e.bw, "\n%s\n", e.styles.Bold.Render(summaryLine(sum)))
	}

	b.entries = b.entries[:0]
	return sum, e.bw.Flush()
}

func summaryLine(sum Summary) string {
	return fmt.Sprintf("%d errors, %d warnings, %d suggestions",
		sum.Errors, sum.Warnings, sum.Suggestions)
}
