package validate

import (
	"fmt"
	"strings"

	"notemark/internal/diag"
	"notemark/internal/marker"
)

// ValidatePriority checks membership in the canonical priority
// vocabulary. Short inputs that prefix a vocabulary entry are treated
// as still being typed, mirroring the date validator's policy.
func ValidatePriority(pol Policy, m marker.Match) *diag.Diagnostic {
	if marker.IsPriority(m.Value) {
		return nil
	}
	if len(m.Value) <= pol.PriorityPrefixTolerance && marker.IsPriorityPrefix(m.Value) {
		return nil
	}

	suggestion := priorityByFirstLetter(m.Value)
	d := diag.NewError(diag.PriorityUnknown, m.Span,
		fmt.Sprintf("unknown priority %q; valid priorities: %s",
			m.Value, strings.Join(marker.PriorityVocabulary, ", "))).
		WithHint("expected #" + suggestion).
		WithSuggested("Use #"+suggestion, "#"+suggestion)
	for _, alt := range []string{"high", "medium", "low"} {
		if alt != suggestion {
			d = d.WithFix("Use #"+alt, "#"+alt)
		}
	}
	return &d
}

// priorityByFirstLetter picks the vocabulary entry sharing the input's
// first letter, falling back to "medium".
func priorityByFirstLetter(value string) string {
	folded := marker.Fold(value)
	if folded != "" {
		for _, p := range marker.PriorityVocabulary {
			if p[0] == folded[0] {
				return p
			}
		}
	}
	return "medium"
}
