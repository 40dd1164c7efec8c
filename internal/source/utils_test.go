package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	got, changed := normalizeCRLF([]byte("a\r\nb\r\n"))
	if !changed {
		t.Error("expected CRLF normalization to be detected")
	}
	if string(got) != "a\nb\n" {
		t.Errorf("normalized = %q, want %q", got, "a\nb\n")
	}

	// Lone \r stays.
	got, changed = normalizeCRLF([]byte("a\rb"))
	if changed {
		t.Error("lone \\r should not count as a change")
	}
	if string(got) != "a\rb" {
		t.Errorf("normalized = %q, want %q", got, "a\rb")
	}

	got, changed = normalizeCRLF([]byte("plain"))
	if changed || string(got) != "plain" {
		t.Errorf("no-op failed: %q changed=%v", got, changed)
	}
}

func TestRemoveBOM(t *testing.T) {
	got, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'x', '\n'})
	if !had {
		t.Error("expected BOM to be detected")
	}
	if string(got) != "x\n" {
		t.Errorf("content = %q, want %q", got, "x\n")
	}

	got, had = removeBOM([]byte("xy"))
	if had || string(got) != "xy" {
		t.Errorf("short buffer mishandled: %q had=%v", got, had)
	}
}

func TestToLineCol(t *testing.T) {
	// "ab\ncd\n" has newlines at 2 and 5.
	lineIdx := buildLineIndex([]byte("ab\ncd\n"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{1, LineCol{Line: 1, Col: 2}},
		{2, LineCol{Line: 2, Col: 0}}, // the newline itself
		{3, LineCol{Line: 2, Col: 1}},
		{4, LineCol{Line: 2, Col: 2}},
		{5, LineCol{Line: 3, Col: 0}},
	}
	for _, tt := range tests {
		if got := toLineCol(lineIdx, tt.off); got != tt.want {
			t.Errorf("toLineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}

	// Single-line buffer.
	if got := toLineCol(nil, 7); got != (LineCol{Line: 1, Col: 8}) {
		t.Errorf("single line = %+v", got)
	}
}
