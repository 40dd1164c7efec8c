package diag

import (
	"notemark/internal/source"
)

// QuickFix is a literal single-span replacement: substituting
// Replacement into the diagnostic's Primary range resolves the issue.
type QuickFix struct {
	Label       string
	Replacement string
	Desc        string
}

// Diagnostic is a validation result attached to a character range.
// Hint, Suggested, and Fixes are optional; consumers must tolerate
// their absence.
type Diagnostic struct {
	Severity  Severity
	Code      Code
	Message   string
	Primary   source.Span
	Hint      string // short format reminder, e.g. "expected YYYY-MM-DD"
	Suggested string // preferred literal replacement for Primary
	Fixes     []QuickFix
}
