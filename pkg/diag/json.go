package diag

import (
	"encoding/json"

	"github.com/yaklabco/goturtle/pkg/turtle"
)

// jsonDiagnostic is the wire shape of a single diagnostic.
type jsonDiagnostic struct {
	Severity   string `json:"severity"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	File       string `json:"file"`
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	Length     int    `json:"length,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Note       string `json:"note,omitempty"`
}

func toJSONDiagnostic(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) jsonDiagnostic {
	return jsonDiagnostic{
		Severity:   sev.String(),
		Type:       perr.Type.String(),
		Message:    perr.Message,
		File:       sourceName(src),
		Line:       perr.Span.Line,
		Column:     perr.Span.Column,
		Length:     perr.Span.Length,
		Suggestion: perr.Suggestion,
		Note:       perr.Note,
	}
}

// renderJSON writes one diagnostic as a JSON object per line.
func (e *Engine) renderJSON(src *turtle.Source, perr *turtle.ParseError, sev turtle.Severity) error {
	enc := json.NewEncoder(e.bw)
	return enc.Encode(toJSONDiagnostic(src, perr, sev))
}
