package validate

import (
	"testing"

	"notemark/internal/diag"
	"notemark/internal/source"
)

func incompleteDiags(t *testing.T, text string) []diag.Diagnostic {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("note", []byte(text))
	return CheckIncomplete(DefaultPolicy(), fs.Get(id))
}

func codesOf(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}

func TestCheckIncompleteTag(t *testing.T) {
	diags := incompleteDiags(t, "[groceries and more")
	if len(diags) != 1 || diags[0].Code != diag.IncompleteTag {
		t.Fatalf("diagnostics = %v", codesOf(diags))
	}
	if diags[0].Severity != diag.SevWarning {
		t.Errorf("severity = %v, want warning", diags[0].Severity)
	}

	// A closed pair is fine, as is a closer after the last opener.
	if diags := incompleteDiags(t, "[a] then [b]"); len(diags) != 0 {
		t.Errorf("closed tags produced %v", codesOf(diags))
	}
}

func TestCheckIncompleteColor(t *testing.T) {
	for _, text := range []string{"pick a color:", "pick a color:#", "pick a color:#f", "pick a color:#ff"} {
		diags := incompleteDiags(t, text)
		if len(diags) != 1 || diags[0].Code != diag.IncompleteColor {
			t.Errorf("%q: diagnostics = %v", text, codesOf(diags))
		}
	}

	// Three hex digits are already a valid short form.
	if diags := incompleteDiags(t, "pick a color:#fff"); len(diags) != 0 {
		t.Errorf("complete color produced %v", codesOf(diags))
	}
}

func TestCheckIncompleteTrailingSigils(t *testing.T) {
	tests := []struct {
		text string
		code diag.Code
	}{
		{"due @", diag.IncompleteDate},
		{"assign +", diag.IncompleteAssignee},
		{"prio #", diag.IncompletePriority},
	}
	for _, tt := range tests {
		diags := incompleteDiags(t, tt.text)
		if len(diags) != 1 || diags[0].Code != tt.code {
			t.Errorf("%q: diagnostics = %v, want [%s]", tt.text, codesOf(diags), tt.code.ID())
		}
	}
}

func TestCheckIncompleteMinimumLength(t *testing.T) {
	// A buffer holding nothing but the freshly-typed trigger stays quiet.
	for _, text := range []string{"[", "@", "+", "#"} {
		if diags := incompleteDiags(t, text); len(diags) != 0 {
			t.Errorf("%q: diagnostics = %v, want none", text, codesOf(diags))
		}
	}
}

func TestCheckIncompleteSpansReachBufferEnd(t *testing.T) {
	text := "note [open"
	diags := incompleteDiags(t, text)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v", codesOf(diags))
	}
	span := diags[0].Primary
	if span.Start != 5 || span.End != uint32(len(text)) {
		t.Errorf("span = %v, want 5-%d", span, len(text))
	}
}
