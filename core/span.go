package core

import "fmt"

// Line is a single 0-based, newline-terminated-in-file-offsets line of the
// source document.
type Line struct {
	// Index is this line's 0-based position in the document.
	Index int
	// Text is the line's content, without a trailing newline.
	Text string
}

// Span is a line-relative candidate boundary [Start, End) into a Line's
// text. 0 <= Start < End <= len(line text).
type Span struct {
	Start int
	End   int
}

// Key returns the canonical "start-end" string used to address a span in
// line-scoped forced-label maps (built by enumstate and feedback).
func (s Span) Key() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Text returns the substring of line that this span covers.
func (s Span) Text(line string) string {
	if s.Start < 0 || s.End > len(line) || s.Start >= s.End {
		return ""
	}
	return line[s.Start:s.End]
}

// LineSpans is the ordered sequence of candidate spans for one line.
// Spans are ordered by (Start, End); they may overlap unless the caller
// that produced them forbids it.
type LineSpans struct {
	LineIndex int
	Spans     []Span
}

// ValidateSpansPerLine checks that spansPerLine has one entry per line, in
// matching line-index order, and that every span's offsets are well formed
// and ordered. It returns a wrapped ErrInvalidSpans on the first violation.
func ValidateSpansPerLine(lines []Line, spansPerLine []LineSpans) error {
	if len(spansPerLine) != len(lines) {
		return fmt.Errorf("%w: spansPerLine has %d entries for %d lines", ErrInvalidSpans, len(spansPerLine), len(lines))
	}
	for i, ls := range spansPerLine {
		if ls.LineIndex != i {
			return fmt.Errorf("%w: spansPerLine[%d].LineIndex = %d, want %d", ErrInvalidSpans, i, ls.LineIndex, i)
		}
		lineLen := len(lines[i].Text)
		prev := Span{Start: -1, End: -1}
		for k, sp := range ls.Spans {
			if sp.Start < 0 || sp.End > lineLen || sp.Start >= sp.End {
				return fmt.Errorf("%w: line %d span %d = [%d,%d) out of range for line of length %d", ErrInvalidSpans, i, k, sp.Start, sp.End, lineLen)
			}
			if sp.Start < prev.Start || (sp.Start == prev.Start && sp.End < prev.End) {
				return fmt.Errorf("%w: line %d spans not ordered by (start,end) at index %d", ErrInvalidSpans, i, k)
			}
			prev = sp
		}
	}
	return nil
}

// IsWhitespaceOnly reports whether every rune in the span's text is
// whitespace (including the empty span, vacuously).
func IsWhitespaceOnly(text string) bool {
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		default:
			return false
		}
	}
	return true
}
