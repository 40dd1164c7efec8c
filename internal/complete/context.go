package complete

import (
	"notemark/internal/marker"
	"notemark/internal/source"
)

// Context describes the marker the cursor is actively typing: its kind,
// the partial query between the prefix and the cursor, and the anchor
// span of that query in the buffer.
type Context struct {
	Kind   marker.Kind
	Query  string
	Anchor source.Span
}

// ContextAt detects whether the cursor sits immediately after an open
// marker prefix with no intervening whitespace. If not, there is no
// completion context.
func ContextAt(content string, cursor int) (Context, bool) {
	if cursor < 0 || cursor > len(content) {
		return Context{}, false
	}

	// Walk left over query characters until a potential prefix byte.
	i := cursor - 1
	for i >= 0 && isQueryByte(content[i]) {
		i--
	}
	if i < 0 {
		return Context{}, false
	}

	switch content[i] {
	case '[':
		return queryContext(marker.KindTag, content, i+1, cursor), true

	case '@':
		if !prefixAtBoundary(content, i) {
			return Context{}, false
		}
		return queryContext(marker.KindDate, content, i+1, cursor), true

	case '+':
		if !prefixAtBoundary(content, i) {
			return Context{}, false
		}
		return queryContext(marker.KindAssignee, content, i+1, cursor), true

	case '#':
		if hasColorPrefixBefore(content, i) {
			// The '#' belongs to a color marker; the query keeps it so
			// it lines up with the "#rrggbb" candidate values.
			return queryContext(marker.KindColor, content, i, cursor), true
		}
		if !prefixAtBoundary(content, i) {
			return Context{}, false
		}
		return queryContext(marker.KindPriority, content, i+1, cursor), true

	case ':':
		// "color:" with the hex part not yet started.
		if hasColorPrefixBefore(content, i+1) {
			return queryContext(marker.KindColor, content, i+1, cursor), true
		}
	}
	return Context{}, false
}

func queryContext(kind marker.Kind, content string, start, cursor int) Context {
	return Context{
		Kind:  kind,
		Query: content[start:cursor],
		Anchor: source.Span{
			Start: uint32(start),
			End:   uint32(cursor),
		},
	}
}

// prefixAtBoundary mirrors the scanner's rule: a sigil prefix only
// counts when it does not sit on a word byte ("+alice@ex|" is an email
// remainder, not a date being typed).
func prefixAtBoundary(content string, i int) bool {
	if i == 0 {
		return true
	}
	return !isWordByte(content[i-1])
}

// hasColorPrefixBefore reports whether content[:end] ends with "color:"
// at a marker boundary.
func hasColorPrefixBefore(content string, end int) bool {
	const lit = "color:"
	if end < len(lit) || content[end-len(lit):end] != lit {
		return false
	}
	start := end - len(lit)
	return start == 0 || !isWordByte(content[start-1])
}

func isWordByte(b byte) bool {
	return b >= '0' && b <= '9' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= 0x80
}

func isQueryByte(b byte) bool {
	return isWordByte(b) || b == '.' || b == '_' || b == '-' || b == '/'
}
