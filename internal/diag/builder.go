package diag

import "notemark/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func NewSuggestion(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevSuggestion, code, primary, msg)
}

func (d Diagnostic) WithHint(hint string) Diagnostic {
	d.Hint = hint
	return d
}

// WithSuggested records the preferred replacement and prepends it as the
// first quick fix so that consumers only looking at Fixes still see it.
func (d Diagnostic) WithSuggested(label, replacement string) Diagnostic {
	d.Suggested = replacement
	d.Fixes = append([]QuickFix{{Label: label, Replacement: replacement}}, d.Fixes...)
	return d
}

func (d Diagnostic) WithFix(label, replacement string) Diagnostic {
	d.Fixes = append(d.Fixes, QuickFix{Label: label, Replacement: replacement})
	return d
}

func (d Diagnostic) WithFixDesc(label, replacement, desc string) Diagnostic {
	d.Fixes = append(d.Fixes, QuickFix{Label: label, Replacement: replacement, Desc: desc})
	return d
}
