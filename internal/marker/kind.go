package marker

// Kind identifies one of the five marker families.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindTag          // [content]
	KindColor        // color:#hex
	KindPriority     // #word
	KindDate         // @value
	KindAssignee     // +username
)

func (k Kind) String() string {
	switch k {
	case KindTag:
		return "tag"
	case KindColor:
		return "color"
	case KindPriority:
		return "priority"
	case KindDate:
		return "date"
	case KindAssignee:
		return "assignee"
	}
	return "invalid"
}

// Prefix returns the literal text that introduces the marker.
// Tags close with ']'; the other families run until a word boundary.
func (k Kind) Prefix() string {
	switch k {
	case KindTag:
		return "["
	case KindColor:
		return "color:"
	case KindPriority:
		return "#"
	case KindDate:
		return "@"
	case KindAssignee:
		return "+"
	}
	return ""
}
