package fix

import "notemark/internal/source"

// ApplyToContent performs the single atomic span replace the quick-fix
// contract promises: substitute replacement into [span.Start, span.End)
// of the given buffer snapshot. Out-of-range spans return the content
// unchanged; the operation never panics.
func ApplyToContent(content []byte, span source.Span, replacement string) []byte {
	start, end := int(span.Start), int(span.End)
	if start < 0 || end < start || end > len(content) {
		return content
	}
	out := make([]byte, 0, len(content)-(end-start)+len(replacement))
	out = append(out, content[:start]...)
	out = append(out, replacement...)
	out = append(out, content[end:]...)
	return out
}
