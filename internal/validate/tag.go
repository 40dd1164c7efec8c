package validate

import (
	"fmt"
	"regexp"
	"strings"

	"notemark/internal/diag"
	"notemark/internal/marker"
)

// checkboxRe is the checkbox mini-grammar: empty, whitespace-only, or a
// single x/X optionally surrounded by whitespace. Such brackets mean
// "task completion state", not a tag, and are never diagnosed.
var checkboxRe = regexp.MustCompile(`^[ \t]*[xX]?[ \t]*$`)

const tagDisallowedChars = "<>\"'"

// ValidateTag checks tag bracket content.
func ValidateTag(pol Policy, m marker.Match) *diag.Diagnostic {
	value := m.Value

	// "[]", "[ ]", and "[x]" are checkboxes, not tags.
	if checkboxRe.MatchString(value) {
		return nil
	}

	if strings.TrimSpace(value) == "" {
		d := diag.NewError(diag.TagEmpty, m.Span, "tag is empty").
			WithHint("expected [name]").
			WithSuggested("Use [todo]", "[todo]")
		return &d
	}

	if strings.ContainsAny(value, tagDisallowedChars) {
		sanitized := stripChars(value, tagDisallowedChars)
		d := diag.NewWarning(diag.TagBadChars, m.Span,
			fmt.Sprintf("tag %q contains special characters", value)).
			WithHint("avoid <, >, and quotes in tags").
			WithSuggested("Remove special characters", "["+sanitized+"]")
		return &d
	}

	if runes := []rune(value); len(runes) > pol.TagMaxLen {
		d := diag.NewWarning(diag.TagTooLong, m.Span,
			fmt.Sprintf("tag is %d characters long (max %d)", len(runes), pol.TagMaxLen)).
			WithSuggested("Truncate tag", "["+string(runes[:pol.TagMaxLen])+"]")
		return &d
	}

	return nil
}

func stripChars(s, cutset string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !strings.ContainsRune(cutset, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
