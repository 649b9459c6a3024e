package turtle_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/yaklabco/goturtle/pkg/turtle"
)

func newTestLexer(input string, opts turtle.Options) *turtle.Lexer {
	return turtle.NewLexer(turtle.NewSource("test.ttl", []byte(input)), opts, nil)
}

func lexAll(t *testing.T, input string, opts turtle.Options) []turtle.Token {
	t.Helper()
	lx := newTestLexer(input, opts)
	var toks []turtle.Token
	for {
		tok := lx.NextToken()
		if tok.Kind == turtle.TokEOF {
			return toks
		}
		toks = append(toks, tok)
		if len(toks) > 1000 {
			t.Fatal("lexer did not terminate")
		}
	}
}

func TestLexer_PrefixDirective(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "@prefix ex: <http://example.org/> .", turtle.DefaultOptions())

	want := []struct {
		kind turtle.TokenKind
		text string
	}{
		{turtle.TokPrefixDirective, "prefix"},
		{turtle.TokPNameNS, "ex:"},
		{turtle.TokIRIRef, "http://example.org/"},
		{turtle.TokDot, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w.kind {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, w.kind)
		}
		if toks[i].Text != w.text {
			t.Errorf("token %d: text = %q, want %q", i, toks[i].Text, w.text)
		}
	}
}

func TestLexer_UnicodeEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"four digit", `"caf\u00e9"`, "café"},
		{"eight digit", `"\U0001F409"`, "\U0001F409"},
		{"in iri", `<http://example.org/é>`, "http://example.org/é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tt.input, turtle.DefaultOptions())
			if len(toks) != 1 {
				t.Fatalf("expected 1 token, got %d", len(toks))
			}
			if toks[0].Kind == turtle.TokError {
				t.Fatalf("unexpected error token: %s", toks[0].Text)
			}
			if toks[0].Text != tt.want {
				t.Errorf("text = %q, want %q", toks[0].Text, tt.want)
			}
		})
	}
}

func TestLexer_FourDigitEscapeBytes(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, `"café"`, turtle.DefaultOptions())
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	got := []byte(toks[0].Text)
	want := []byte{'c', 'a', 'f', 0xC3, 0xA9}
	if !bytes.Equal(got, want) {
		t.Errorf("decoded bytes = % X, want % X", got, want)
	}
}

func TestLexer_InvalidUnicodeEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"surrogate", `"\uD800"`},
		{"above max", `"\U00110000"`},
		{"short hex", `"\u00g9"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lx := newTestLexer(tt.input, turtle.DefaultOptions())
			tok := lx.NextToken()
			if tok.Kind != turtle.TokError {
				t.Fatalf("kind = %s, want TokError", tok.Kind)
			}
			if tok.Err.Type != turtle.ErrInvalidUnicodeEscape {
				t.Errorf("error type = %s, want invalid-unicode-escape", tok.Err.Type)
			}
		})
	}
}

func TestLexer_StringEscapes(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, `"a\tb\\c\"d\n"`, turtle.DefaultOptions())
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Text != "a\tb\\c\"d\n" {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestLexer_LongString(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "\"\"\"line one\nline two\"\"\"", turtle.DefaultOptions())
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d", len(toks))
	}
	if toks[0].Kind != turtle.TokString || !toks[0].Long {
		t.Errorf("expected long string, got %s long=%v", toks[0].Kind, toks[0].Long)
	}
	if toks[0].Text != "line one\nline two" {
		t.Errorf("text = %q", toks[0].Text)
	}
}

func TestLexer_UnterminatedString(t *testing.T) {
	t.Parallel()

	lx := newTestLexer(`"abc`, turtle.DefaultOptions())
	tok := lx.NextToken()
	if tok.Kind != turtle.TokError {
		t.Fatalf("kind = %s, want TokError", tok.Kind)
	}
	if tok.Err.Type != turtle.ErrUnterminatedString {
		t.Errorf("error type = %s", tok.Err.Type)
	}
	if lx.Errors().Len() != 1 {
		t.Errorf("error list len = %d, want 1", lx.Errors().Len())
	}
}

func TestLexer_Numbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  turtle.TokenKind
		i     int64
		f     float64
	}{
		{"42", turtle.TokInteger, 42, 0},
		{"-7", turtle.TokInteger, -7, 0},
		{"3.14", turtle.TokDecimal, 0, 3.14},
		{"+.5", turtle.TokDecimal, 0, 0.5},
		{"1e6", turtle.TokDouble, 0, 1e6},
		{"1.2E-3", turtle.TokDouble, 0, 1.2e-3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tt.input, turtle.DefaultOptions())
			if len(toks) != 1 {
				t.Fatalf("expected 1 token, got %d: %v", len(toks), toks)
			}
			tok := toks[0]
			if tok.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", tok.Kind, tt.kind)
			}
			if tok.Int != tt.i {
				t.Errorf("Int = %d, want %d", tok.Int, tt.i)
			}
			if tok.Float != tt.f {
				t.Errorf("Float = %g, want %g", tok.Float, tt.f)
			}
		})
	}
}

func TestLexer_IntegerOverflow(t *testing.T) {
	t.Parallel()

	lx := newTestLexer("99999999999999999999", turtle.DefaultOptions())
	tok := lx.NextToken()
	if tok.Kind != turtle.TokError {
		t.Fatalf("kind = %s, want TokError", tok.Kind)
	}
	if tok.Err.Type != turtle.ErrNumberTooLarge {
		t.Errorf("error type = %s, want number-too-large", tok.Err.Type)
	}
}

func TestLexer_Keywords(t *testing.T) {
	t.Parallel()

	toks := lexAll(t, "a true false thing", turtle.DefaultOptions())
	wantKinds := []turtle.TokenKind{
		turtle.TokA, turtle.TokBoolean, turtle.TokBoolean, turtle.TokIdent,
	}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d", len(wantKinds), len(toks))
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, want)
		}
	}
}

func TestLexer_PrefixedNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  turtle.TokenKind
		text  string
	}{
		{"ex:name", turtle.TokPNameLN, "ex:name"},
		{":local", turtle.TokPNameLN, ":local"},
		{"ex:", turtle.TokPNameNS, "ex:"},
		{"true:x", turtle.TokPNameLN, "true:x"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			toks := lexAll(t, tt.input, turtle.DefaultOptions())
			if len(toks) != 1 {
				t.Fatalf("expected 1 token, got %d: %v", len(toks), toks)
			}
			if toks[0].Kind != tt.kind || toks[0].Text != tt.text {
				t.Errorf("got %s %q, want %s %q", toks[0].Kind, toks[0].Text, tt.kind, tt.text)
			}
		})
	}
}

func TestLexer_BlankNodeLabels(t *testing.T) {
	t.Parallel()

	// Trailing dots belong to the statement, not the label.
	toks := lexAll(t, "_:b1 _:a.b. ", turtle.DefaultOptions())
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Kind != turtle.TokBlankNodeLabel || toks[0].Text != "b1" {
		t.Errorf("token 0 = %s %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != turtle.TokBlankNodeLabel || toks[1].Text != "a.b" {
		t.Errorf("token 1 = %s %q", toks[1].Kind, toks[1].Text)
	}
	if toks[2].Kind != turtle.TokDot {
		t.Errorf("token 2 = %s, want dot", toks[2].Kind)
	}
}

func TestLexer_DirectiveDegrade(t *testing.T) {
	t.Parallel()

	// @words other than prefix/base degrade to an '@' token followed by
	// an identifier, the shape language tags are parsed from.
	toks := lexAll(t, `"hi"@en-US`, turtle.DefaultOptions())
	wantKinds := []turtle.TokenKind{turtle.TokString, turtle.TokAt, turtle.TokIdent}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d: %v", len(wantKinds), len(toks), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: kind = %s, want %s", i, toks[i].Kind, want)
		}
	}
	if toks[2].Text != "en-US" {
		t.Errorf("ident text = %q, want en-US", toks[2].Text)
	}
}

func TestLexer_Peek(t *testing.T) {
	t.Parallel()

	lx := newTestLexer("ex:s ex:p ex:o ; ex:q ex:r .", turtle.DefaultOptions())

	// Deep lookahead forces the ring to grow past its initial capacity.
	var peeked []turtle.TokenKind
	for k := 0; k < 7; k++ {
		peeked = append(peeked, lx.PeekToken(k).Kind)
	}

	for k, want := range peeked {
		got := lx.NextToken().Kind
		if got != want {
			t.Errorf("token %d: NextToken = %s, peeked %s", k, got, want)
		}
	}
	if lx.NextToken().Kind != turtle.TokEOF {
		t.Error("expected EOF after all tokens")
	}
}

func TestLexer_Comments(t *testing.T) {
	t.Parallel()

	input := "# leading\nex:s ex:p ex:o . # trailing"

	toks := lexAll(t, input, turtle.DefaultOptions())
	for _, tok := range toks {
		if tok.Kind == turtle.TokComment {
			t.Fatal("comments should be skipped by default")
		}
	}

	opts := turtle.DefaultOptions()
	opts.TrackComments = true
	toks = lexAll(t, input, opts)
	var comments []string
	for _, tok := range toks {
		if tok.Kind == turtle.TokComment {
			comments = append(comments, tok.Text)
		}
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0] != " leading" || comments[1] != " trailing" {
		t.Errorf("comments = %q", comments)
	}
}

func TestLexer_Positions(t *testing.T) {
	t.Parallel()

	lx := newTestLexer("ex:a\n  ex:b", turtle.DefaultOptions())

	first := lx.NextToken()
	if first.Span.Line != 1 || first.Span.Column != 1 {
		t.Errorf("first span = %d:%d, want 1:1", first.Span.Line, first.Span.Column)
	}
	second := lx.NextToken()
	if second.Span.Line != 2 || second.Span.Column != 3 {
		t.Errorf("second span = %d:%d, want 2:3", second.Span.Line, second.Span.Column)
	}
}

func TestLexer_UnsafeIRICharacters(t *testing.T) {
	t.Parallel()

	lx := newTestLexer("<http://example.org/a b>", turtle.DefaultOptions())
	tok := lx.NextToken()
	if tok.Kind != turtle.TokError {
		t.Fatalf("kind = %s, want TokError", tok.Kind)
	}
	if tok.Err.Type != turtle.ErrInvalidIRI {
		t.Errorf("error type = %s, want invalid-iri", tok.Err.Type)
	}
	// Scanning resumes cleanly after the closing '>'.
	if next := lx.NextToken(); next.Kind != turtle.TokEOF {
		t.Errorf("next = %s, want EOF", next.Kind)
	}
}

func TestLexer_StreamingStubs(t *testing.T) {
	t.Parallel()

	lx := newTestLexer("", turtle.DefaultOptions())
	if err := lx.Feed(nil); !errors.Is(err, turtle.ErrStreamingUnsupported) {
		t.Errorf("Feed = %v", err)
	}
	if err := lx.EndInput(); !errors.Is(err, turtle.ErrStreamingUnsupported) {
		t.Errorf("EndInput = %v", err)
	}
}
