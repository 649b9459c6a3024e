// Package turtle implements the Turtle/TTL lexer and recursive-descent
// parser, the error taxonomy they share, and the parse options surface.
package turtle

import "sort"

// lineInfo records the byte extents of one source line.
type lineInfo struct {
	startOffset  int
	newlineStart int
	endOffset    int
}

// Source is an immutable snapshot of one document plus its line index.
// One Source is scoped to one parse and shared by the lexer, the parser,
// and the diagnostic renderer.
type Source struct {
	Name    string
	Content []byte

	lines []lineInfo
}

// NewSource builds a snapshot with an eagerly built line index. Both LF
// and CRLF line endings are handled.
func NewSource(name string, content []byte) *Source {
	return &Source{Name: name, Content: content, lines: buildLines(content)}
}

func buildLines(content []byte) []lineInfo {
	if len(content) == 0 {
		return []lineInfo{}
	}

	var lines []lineInfo
	lineStart := 0

	for idx, ch := range content {
		if ch == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}
			lines = append(lines, lineInfo{
				startOffset:  lineStart,
				newlineStart: newlineStart,
				endOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, lineInfo{
			startOffset:  lineStart,
			newlineStart: len(content),
			endOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the source.
func (s *Source) LineCount() int { return len(s.lines) }

// LineAt converts a byte offset to 1-based line and column numbers.
// Column counts bytes. Returns (0, 0) if the offset is out of range.
func (s *Source) LineAt(offset int) (int, int) {
	if offset < 0 || len(s.lines) == 0 {
		return 0, 0
	}

	if offset >= len(s.Content) {
		last := s.lines[len(s.lines)-1]
		return len(s.lines), offset - last.startOffset + 1
	}

	lineIdx := sort.Search(len(s.lines), func(i int) bool {
		return s.lines[i].endOffset > offset
	})
	if lineIdx >= len(s.lines) {
		lineIdx = len(s.lines) - 1
	}

	info := s.lines[lineIdx]
	if offset < info.startOffset {
		return 0, 0
	}

	return lineIdx + 1, offset - info.startOffset + 1
}

// LineContent returns the bytes of a 1-based line, excluding the newline.
// Returns nil if the line number is out of range.
func (s *Source) LineContent(line int) []byte {
	if line < 1 || line > len(s.lines) {
		return nil
	}
	info := s.lines[line-1]
	return s.Content[info.startOffset:info.newlineStart]
}
