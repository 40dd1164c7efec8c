package validate

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"notemark/internal/diag"
	"notemark/internal/marker"
)

// Assignee grammar: a letter, then letters, digits, '.', '_', '-'.
var assigneeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._-]*$`)

// ValidateAssignee checks an assignee username. Single-character inputs
// are tolerated without diagnostic (partial-typing policy).
func ValidateAssignee(pol Policy, m marker.Match) *diag.Diagnostic {
	value := m.Value

	if utf8.RuneCountInString(value) <= pol.AssigneePartialTolerance {
		return nil
	}

	if assigneeRe.MatchString(value) {
		if len(value) > pol.AssigneeMaxLen {
			d := diag.NewWarning(diag.AssigneeTooLong, m.Span,
				fmt.Sprintf("assignee name is %d characters long (max %d)", len(value), pol.AssigneeMaxLen)).
				WithSuggested("Truncate name", "+"+value[:pol.AssigneeMaxLen])
			return &d
		}
		return nil
	}

	sanitized := sanitizeAssignee(value)
	d := diag.NewError(diag.AssigneeBadName, m.Span,
		fmt.Sprintf("invalid assignee %q", value)).
		WithHint("names start with a letter and use letters, digits, '.', '_', '-'").
		WithSuggested("Use +"+sanitized, "+"+sanitized)
	return &d
}

// sanitizeAssignee reduces the input to the nearest valid username:
// keep allowed characters, drop anything before the first letter.
func sanitizeAssignee(value string) string {
	kept := make([]byte, 0, len(value))
	for i := 0; i < len(value); i++ {
		b := value[i]
		switch {
		case b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z':
			kept = append(kept, b)
		case len(kept) > 0 && (b >= '0' && b <= '9' || b == '.' || b == '_' || b == '-'):
			kept = append(kept, b)
		}
	}
	if len(kept) == 0 {
		return "user"
	}
	return string(kept)
}
