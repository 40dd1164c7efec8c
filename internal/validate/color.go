package validate

import (
	"fmt"
	"regexp"
	"strings"

	"notemark/internal/diag"
	"notemark/internal/marker"
)

var hexColorRe = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateColor accepts 3- or 6-digit hex values, case-insensitive.
func ValidateColor(pol Policy, m marker.Match) *diag.Diagnostic {
	if hexColorRe.MatchString(m.Value) {
		return nil
	}

	fallback := hexFallback(m.Value)
	d := diag.NewError(diag.ColorBadHex, m.Span,
		fmt.Sprintf("invalid color %q", m.Value)).
		WithHint("expected #rgb or #rrggbb").
		WithSuggested("Use #"+fallback, "color:#"+fallback).
		WithFix("Use red", "color:#ff0000").
		WithFix("Use blue", "color:#0000ff").
		WithFix("Use black", "color:#000000")
	return &d
}

// hexFallback strips non-hex characters and zero-pads to six digits.
func hexFallback(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if r >= '0' && r <= '9' || r >= 'a' && r <= 'f' {
			b.WriteRune(r)
		}
		if b.Len() == 6 {
			break
		}
	}
	out := b.String()
	for len(out) < 6 {
		out += "0"
	}
	return out
}
