package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"notemark/internal/diag"
	"notemark/internal/source"
)

func TestJSONShape(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("round trip: %v", err)
	}

	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("output = %+v", out)
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "DAT1002" {
		t.Errorf("severity/code = %s/%s", d.Severity, d.Code)
	}
	if d.Location.File != "note.txt" || d.Location.StartByte != 4 || d.Location.EndByte != 15 {
		t.Errorf("location = %+v", d.Location)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 5 {
		t.Errorf("position = %+v", d.Location)
	}
	if d.Suggested != "@2024-01-15" {
		t.Errorf("suggested = %q", d.Suggested)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Replacement != "@2024-01-15" {
		t.Errorf("fixes = %+v", d.Fixes)
	}
}

func TestJSONOmitsPositionsAndFixes(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	raw := buf.String()
	for _, field := range []string{"start_line", "fixes"} {
		if bytes.Contains([]byte(raw), []byte(field)) {
			t.Errorf("field %q present in %s", field, raw)
		}
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("note.txt", []byte("#zz #zz #zz"))

	bag := diag.NewBag(0)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevWarning,
			Code:     diag.PriorityUnknown,
			Message:  "unknown priority",
			Primary:  source.Span{File: id, Start: i * 4, End: i*4 + 3},
		})
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("output = %+v", out)
	}
	// The bag itself is untouched.
	if bag.Len() != 3 {
		t.Errorf("bag length = %d, want 3", bag.Len())
	}
}

func TestMsgPackRoundTrip(t *testing.T) {
	bag, fs := sampleBag(t)

	var buf bytes.Buffer
	if err := MsgPack(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true}); err != nil {
		t.Fatalf("MsgPack: %v", err)
	}

	want := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true, IncludeFixes: true})
	got, err := DecodeMsgPack(&buf)
	if err != nil {
		t.Fatalf("DecodeMsgPack: %v", err)
	}
	if got.Count != want.Count || len(got.Diagnostics) != len(want.Diagnostics) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if got.Diagnostics[0].Code != "DAT1002" {
		t.Errorf("code = %q", got.Diagnostics[0].Code)
	}
	if got.Diagnostics[0].Location.EndByte != 15 {
		t.Errorf("location = %+v", got.Diagnostics[0].Location)
	}
}
