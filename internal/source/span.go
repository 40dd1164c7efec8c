package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into one buffer.
// Every diagnostic range is expressed this way against the exact
// buffer snapshot that was scanned.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Contains reports whether the byte offset falls inside the span.
func (s Span) Contains(off uint32) bool {
	return s.Start <= off && off < s.End
}

// Overlaps reports whether two spans in the same file share at least one byte.
func (s Span) Overlaps(other Span) bool {
	if s.File != other.File {
		return false
	}
	return s.Start < other.End && other.Start < s.End
}

// Cover extends the span to include other (same file only).
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text slices the span out of the buffer content. Out-of-range spans
// yield an empty string instead of panicking.
func (s Span) Text(content []byte) string {
	if int(s.Start) >= len(content) || s.Start >= s.End {
		return ""
	}
	end := s.End
	if int(end) > len(content) {
		end = uint32(len(content))
	}
	return string(content[s.Start:end])
}
