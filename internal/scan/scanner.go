package scan

import (
	"notemark/internal/marker"
	"notemark/internal/source"
)

// Scan walks the buffer once, left to right, and classifies each span
// into a marker kind exactly once. Single-pass tokenizing replaces the
// per-family regex sweeps: a color's hex digits can never be re-read as
// a priority marker because "color:#ff0000" is consumed as one token,
// and "+alice@example" never reaches the date scanner because the '@'
// sits on a word byte, not a marker boundary.
//
// Dispatch precedence at a marker boundary: tag, color, priority, date,
// assignee. Matches come back in buffer order.
func Scan(file *source.File) []marker.Match {
	var matches []marker.Match
	cur := NewCursor(file)

	for !cur.EOF() {
		loopStart := cur.Off
		b := cur.Peek()

		switch {
		case b == '[':
			if m, ok := scanTag(&cur); ok {
				matches = append(matches, m)
			}

		case b == 'c' && atBoundary(&cur) && cur.HasPrefix("color:"):
			if m, ok := scanColor(&cur); ok {
				matches = append(matches, m)
			}

		case b == '#' && atBoundary(&cur):
			if m, ok := scanSigil(&cur, marker.KindPriority, isPriorityValueByte); ok {
				matches = append(matches, m)
			}

		case b == '@' && atBoundary(&cur):
			if m, ok := scanSigil(&cur, marker.KindDate, isDateValueByte); ok {
				matches = append(matches, m)
			}

		case b == '+' && atBoundary(&cur):
			if m, ok := scanSigil(&cur, marker.KindAssignee, isAssigneeValueByte); ok {
				matches = append(matches, m)
			}

		case isWordByte(b):
			// Plain word: consume it whole so that embedded trigger
			// bytes ("discolor:", "a@b") stay plain text.
			for !cur.EOF() && isWordByte(cur.Peek()) {
				cur.Bump()
			}

		default:
			cur.Bump()
		}

		// Forced-progress guard: never allow a zero-width iteration.
		if cur.Off == loopStart {
			cur.Bump()
		}
	}

	return matches
}

// atBoundary reports whether the cursor sits at a marker boundary:
// start of buffer or right after a non-word byte.
func atBoundary(cur *Cursor) bool {
	return !isWordByte(cur.Prev())
}

// scanTag consumes "[content]". Without a closing bracket the opener is
// skipped and scanning resumes just past it, so markers after an
// unterminated '[' are still found; the incomplete-pattern pass owns
// the trailing-bracket warning.
func scanTag(cur *Cursor) (marker.Match, bool) {
	start := cur.Mark()
	cur.Bump() // '['
	valueStart := cur.Mark()

	for !cur.EOF() && cur.Peek() != ']' {
		cur.Bump()
	}
	if cur.EOF() {
		cur.Reset(start)
		cur.Bump()
		return marker.Match{}, false
	}

	valueSpan := cur.SpanFrom(valueStart)
	cur.Bump() // ']'
	return marker.Match{
		Kind:      marker.KindTag,
		Value:     valueSpan.Text(cur.File.Content),
		Span:      cur.SpanFrom(start),
		ValueSpan: valueSpan,
	}, true
}

// scanColor consumes "color:" plus its value run: an optional '#'
// followed by alphanumerics. A bare "color:" with nothing attached
// produces no match and is left to the incomplete-pattern pass.
func scanColor(cur *Cursor) (marker.Match, bool) {
	start := cur.Mark()
	for i := 0; i < len("color:"); i++ {
		cur.Bump()
	}
	valueStart := cur.Mark()

	cur.Eat('#')
	for !cur.EOF() && isWordByte(cur.Peek()) {
		cur.Bump()
	}

	valueSpan := cur.SpanFrom(valueStart)
	if valueSpan.Empty() {
		return marker.Match{}, false
	}
	return marker.Match{
		Kind:      marker.KindColor,
		Value:     valueSpan.Text(cur.File.Content),
		Span:      cur.SpanFrom(start),
		ValueSpan: valueSpan,
	}, true
}

// scanSigil consumes a one-byte prefix ('#', '@', '+') plus the value
// run allowed for the kind. An empty run produces no match: a lone
// trigger character is the incomplete-pattern pass's business.
func scanSigil(cur *Cursor, kind marker.Kind, valueByte func(byte) bool) (marker.Match, bool) {
	start := cur.Mark()
	cur.Bump() // prefix
	valueStart := cur.Mark()

	for !cur.EOF() && valueByte(cur.Peek()) {
		cur.Bump()
	}

	valueSpan := cur.SpanFrom(valueStart)
	if valueSpan.Empty() {
		return marker.Match{}, false
	}
	return marker.Match{
		Kind:      kind,
		Value:     valueSpan.Text(cur.File.Content),
		Span:      cur.SpanFrom(start),
		ValueSpan: valueSpan,
	}, true
}

// isWordByte treats ASCII alphanumerics and all non-ASCII bytes as word
// content, so multi-byte runes never split into false marker boundaries.
func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= 0x80
}

func isPriorityValueByte(b byte) bool {
	return isWordByte(b) || b == '_' || b == '-'
}

func isDateValueByte(b byte) bool {
	return isWordByte(b) || b == '-' || b == '/'
}

func isAssigneeValueByte(b byte) bool {
	return isWordByte(b) || b == '.' || b == '_' || b == '-'
}
