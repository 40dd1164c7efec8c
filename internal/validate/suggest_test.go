package validate

import (
	"testing"

	"notemark/internal/diag"
	"notemark/internal/scan"
	"notemark/internal/source"
)

func suggestDiags(t *testing.T, text string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("note", []byte(text))
	file := fs.Get(id)
	return Suggest(DefaultPolicy(), file, scan.Scan(file))
}

func TestSuggestTagWrap(t *testing.T) {
	diags := suggestDiags(t, "this is urgent stuff")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", codesOf(diags))
	}
	d := diags[0]
	if d.Code != diag.SuggestTagWrap {
		t.Errorf("code = %s", d.Code.ID())
	}
	if d.Severity != diag.SevSuggestion {
		t.Errorf("severity = %v, want suggestion", d.Severity)
	}
	if d.Suggested != "[urgent]" {
		t.Errorf("suggested = %q", d.Suggested)
	}

	// The span covers the bare word, not the whole line.
	if got := d.Primary.Text([]byte("this is urgent stuff")); got != "urgent" {
		t.Errorf("span text = %q", got)
	}
}

func TestSuggestTagWrapSkipsAlreadyTagged(t *testing.T) {
	// The word already exists as a tag: no suggestion.
	if diags := suggestDiags(t, "urgent [urgent]"); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", codesOf(diags))
	}

	// A priority marker with the same value counts too.
	if diags := suggestDiags(t, "urgent #urgent"); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", codesOf(diags))
	}
}

func TestSuggestTagWrapSkipsMarkerContent(t *testing.T) {
	// "urgent" inside an existing marker is not a bare word.
	if diags := suggestDiags(t, "[urgent]"); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", codesOf(diags))
	}
}

func TestSuggestDatePrefix(t *testing.T) {
	diags := suggestDiags(t, "call mom friday")
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", codesOf(diags))
	}
	d := diags[0]
	if d.Code != diag.SuggestDatePrefix {
		t.Errorf("code = %s", d.Code.ID())
	}
	if d.Suggested != "@friday" {
		t.Errorf("suggested = %q", d.Suggested)
	}
}

func TestSuggestDatePrefixSuppressedByExistingDate(t *testing.T) {
	// The buffer already carries a date marker; the plain weekday word
	// stays unremarked.
	if diags := suggestDiags(t, "friday @monday"); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", codesOf(diags))
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	diags := suggestDiags(t, "URGENT call")
	if len(diags) != 1 || diags[0].Code != diag.SuggestTagWrap {
		t.Fatalf("diagnostics = %v", codesOf(diags))
	}
	// The wrap keeps the user's casing.
	if diags[0].Suggested != "[URGENT]" {
		t.Errorf("suggested = %q", diags[0].Suggested)
	}
}

func TestSuggestQuietOnPlainText(t *testing.T) {
	if diags := suggestDiags(t, "nothing special here"); len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", codesOf(diags))
	}
}
