package validate

import (
	"strings"
	"testing"

	"notemark/internal/diag"
	"notemark/internal/marker"
	"notemark/internal/source"
)

func tagMatch(value string) marker.Match {
	return marker.Match{
		Kind:      marker.KindTag,
		Value:     value,
		Span:      source.Span{Start: 0, End: uint32(len(value) + 2)},
		ValueSpan: source.Span{Start: 1, End: uint32(len(value) + 1)},
	}
}

func TestValidateTagCheckboxExemption(t *testing.T) {
	pol := DefaultPolicy()

	// Checkbox states are not tags and never diagnosed; the empty
	// bracket pair counts as an unticked checkbox too.
	for _, checkbox := range []string{"", " ", "x", "X", " x ", "\tX\t", "  "} {
		if d := ValidateTag(pol, tagMatch(checkbox)); d != nil {
			t.Errorf("checkbox %q produced %s: %s", checkbox, d.Code.ID(), d.Message)
		}
	}
}

func TestValidateTagOrdinary(t *testing.T) {
	pol := DefaultPolicy()

	for _, ok := range []string{"groceries", "work stuff", "проект", "q1-2024"} {
		if d := ValidateTag(pol, tagMatch(ok)); d != nil {
			t.Errorf("%q produced %s: %s", ok, d.Code.ID(), d.Message)
		}
	}
}

func TestValidateTagSpecialChars(t *testing.T) {
	pol := DefaultPolicy()

	d := ValidateTag(pol, tagMatch(`a<b>"c'`))
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.Code != diag.TagBadChars {
		t.Errorf("code = %s", d.Code.ID())
	}
	if d.Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", d.Severity)
	}
	if d.Suggested != "[abc]" {
		t.Errorf("suggested = %q, want [abc]", d.Suggested)
	}
}

func TestValidateTagTooLong(t *testing.T) {
	pol := DefaultPolicy()

	long := strings.Repeat("a", pol.TagMaxLen+5)
	d := ValidateTag(pol, tagMatch(long))
	if d == nil {
		t.Fatal("expected diagnostic")
	}
	if d.Code != diag.TagTooLong {
		t.Errorf("code = %s", d.Code.ID())
	}
	want := "[" + strings.Repeat("a", pol.TagMaxLen) + "]"
	if d.Suggested != want {
		t.Errorf("suggested length = %d, want %d", len(d.Suggested), len(want))
	}

	// Truncation counts runes, not bytes: multi-byte content must not
	// be split mid-rune.
	longCyrillic := strings.Repeat("я", pol.TagMaxLen+1)
	d = ValidateTag(pol, tagMatch(longCyrillic))
	if d == nil {
		t.Fatal("expected diagnostic for long cyrillic tag")
	}
	wantCyrillic := "[" + strings.Repeat("я", pol.TagMaxLen) + "]"
	if d.Suggested != wantCyrillic {
		t.Errorf("cyrillic truncation = %q", d.Suggested)
	}
}
