package validate

import (
	"strings"
	"testing"

	"notemark/internal/diag"
	"notemark/internal/marker"
	"notemark/internal/source"
)

func priorityMatch(value string) marker.Match {
	return marker.Match{
		Kind:      marker.KindPriority,
		Value:     value,
		Span:      source.Span{Start: 0, End: uint32(len(value) + 1)},
		ValueSpan: source.Span{Start: 1, End: uint32(len(value) + 1)},
	}
}

func TestValidatePriorityVocabulary(t *testing.T) {
	pol := DefaultPolicy()

	// Every vocabulary entry passes, in any case.
	for _, p := range marker.PriorityVocabulary {
		if d := ValidatePriority(pol, priorityMatch(p)); d != nil {
			t.Errorf("%q produced %s: %s", p, d.Code.ID(), d.Message)
		}
		upper := strings.ToUpper(p)
		if d := ValidatePriority(pol, priorityMatch(upper)); d != nil {
			t.Errorf("%q produced %s: %s", upper, d.Code.ID(), d.Message)
		}
	}
}

func TestValidatePriorityPrefixTolerance(t *testing.T) {
	pol := DefaultPolicy()

	// "h" and "hi" prefix "high" and stay quiet at the default
	// tolerance of two characters.
	for _, partial := range []string{"h", "hi", "c", "lo"} {
		if d := ValidatePriority(pol, priorityMatch(partial)); d != nil {
			t.Errorf("partial %q produced %s: %s", partial, d.Code.ID(), d.Message)
		}
	}

	// Three characters exceed the tolerance even when still a prefix.
	if d := ValidatePriority(pol, priorityMatch("hig")); d == nil {
		t.Error("expected diagnostic for 3-char prefix")
	}

	// A non-prefix is diagnosed at any length past one keystroke.
	if d := ValidatePriority(pol, priorityMatch("zz")); d == nil {
		t.Error("expected diagnostic for non-prefix input")
	}
}

func TestValidatePriorityConfigurableTolerance(t *testing.T) {
	pol := DefaultPolicy()
	pol.PriorityPrefixTolerance = 4

	if d := ValidatePriority(pol, priorityMatch("crit")); d != nil {
		t.Errorf("4-char prefix with raised tolerance produced %s", d.Code.ID())
	}
}

func TestValidatePriorityUnknown(t *testing.T) {
	pol := DefaultPolicy()

	d := ValidatePriority(pol, priorityMatch("hgih"))
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.Code != diag.PriorityUnknown {
		t.Errorf("code = %s", d.Code.ID())
	}

	// The message lists the whole vocabulary.
	for _, p := range marker.PriorityVocabulary {
		if !strings.Contains(d.Message, p) {
			t.Errorf("message %q does not list %q", d.Message, p)
		}
	}

	// First-letter match drives the suggestion: 'h' picks "high".
	if d.Suggested != "#high" {
		t.Errorf("suggested = %q, want #high", d.Suggested)
	}

	// Alternates skip the already-suggested value.
	for _, f := range d.Fixes[1:] {
		if f.Replacement == "#high" {
			t.Errorf("alternates repeat the suggestion: %+v", d.Fixes)
		}
	}
}

func TestValidatePriorityFallbackSuggestion(t *testing.T) {
	pol := DefaultPolicy()

	// No vocabulary entry starts with 'z'.
	d := ValidatePriority(pol, priorityMatch("zzz"))
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.Suggested != "#medium" {
		t.Errorf("suggested = %q, want #medium", d.Suggested)
	}
}
