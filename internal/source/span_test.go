package source

import (
	"testing"
)

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 10}

	if s.Empty() {
		t.Error("expected non-empty span")
	}
	if got := s.Len(); got != 6 {
		t.Errorf("Len() = %d, want 6", got)
	}
	if got := s.String(); got != "1:4-10" {
		t.Errorf("String() = %q, want %q", got, "1:4-10")
	}

	empty := Span{File: 1, Start: 7, End: 7}
	if !empty.Empty() {
		t.Error("expected empty span")
	}
	if empty.Len() != 0 {
		t.Errorf("empty Len() = %d, want 0", empty.Len())
	}
}

func TestSpanContains(t *testing.T) {
	s := Span{File: 0, Start: 5, End: 8}

	tests := []struct {
		off  uint32
		want bool
	}{
		{4, false},
		{5, true},
		{7, true},
		{8, false}, // end is exclusive
	}
	for _, tt := range tests {
		if got := s.Contains(tt.off); got != tt.want {
			t.Errorf("Contains(%d) = %v, want %v", tt.off, got, tt.want)
		}
	}
}

func TestSpanOverlaps(t *testing.T) {
	base := Span{File: 0, Start: 10, End: 20}

	tests := []struct {
		name  string
		other Span
		want  bool
	}{
		{"identical", Span{File: 0, Start: 10, End: 20}, true},
		{"partial overlap", Span{File: 0, Start: 15, End: 25}, true},
		{"contained", Span{File: 0, Start: 12, End: 14}, true},
		{"touching at end", Span{File: 0, Start: 20, End: 25}, false},
		{"touching at start", Span{File: 0, Start: 5, End: 10}, false},
		{"disjoint", Span{File: 0, Start: 30, End: 40}, false},
		{"different file", Span{File: 1, Start: 10, End: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestSpanCover(t *testing.T) {
	base := Span{File: 0, Start: 10, End: 20}

	got := base.Cover(Span{File: 0, Start: 5, End: 12})
	want := Span{File: 0, Start: 5, End: 20}
	if got != want {
		t.Errorf("Cover = %v, want %v", got, want)
	}

	// A span in a different file leaves the receiver untouched.
	got = base.Cover(Span{File: 2, Start: 0, End: 100})
	if got != base {
		t.Errorf("Cover across files = %v, want %v", got, base)
	}
}

func TestSpanText(t *testing.T) {
	content := []byte("Buy milk @tomorrow")

	tests := []struct {
		name string
		span Span
		want string
	}{
		{"marker slice", Span{Start: 9, End: 18}, "@tomorrow"},
		{"word slice", Span{Start: 0, End: 3}, "Buy"},
		{"end clamped", Span{Start: 9, End: 999}, "@tomorrow"},
		{"start past end of buffer", Span{Start: 100, End: 110}, ""},
		{"inverted", Span{Start: 10, End: 5}, ""},
		{"empty", Span{Start: 3, End: 3}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.Text(content); got != tt.want {
				t.Errorf("Text = %q, want %q", got, tt.want)
			}
		})
	}
}
