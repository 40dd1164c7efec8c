package marker

import "notemark/internal/source"

// Match is one marker occurrence found by the scanner. It is ephemeral:
// produced by one pass over the buffer and consumed immediately by the
// matching validator, never retained.
type Match struct {
	Kind  Kind
	Value string // raw value with the prefix stripped (tag: bracket content)
	// Span covers the whole marker including its prefix (and closing
	// bracket for tags); ValueSpan covers only Value.
	Span      source.Span
	ValueSpan source.Span
}
