package marker

import (
	"golang.org/x/text/cases"
)

// folder performs Unicode-correct case folding so that keyword and
// vocabulary membership checks behave the same for "Today", "TODAY",
// and any case variant a user types.
var folder = cases.Fold()

// Fold lowercases a marker value for vocabulary comparison.
func Fold(s string) string {
	return folder.String(s)
}

// Weekdays are the seven weekday names accepted as date keywords.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// RelativeDateWords are the non-weekday date keywords.
var RelativeDateWords = []string{
	"today", "tomorrow", "yesterday", "week", "month", "next", "last",
}

// DateKeywords is the full fixed date vocabulary: relative words plus
// the weekday names. Matching is case-insensitive via Fold.
var DateKeywords = buildDateKeywords()

func buildDateKeywords() map[string]bool {
	m := make(map[string]bool, len(Weekdays)+len(RelativeDateWords))
	for _, w := range RelativeDateWords {
		m[w] = true
	}
	for _, w := range Weekdays {
		m[w] = true
	}
	return m
}

// IsDateKeyword reports case-insensitive membership in the date vocabulary.
func IsDateKeyword(s string) bool {
	return DateKeywords[Fold(s)]
}

// PriorityVocabulary is the canonical set of priority words, in the
// order used when listing them in messages and picking suggestions.
var PriorityVocabulary = []string{
	"critical", "high", "medium", "low",
	"urgent", "asap", "blocked", "waiting",
	"review", "done", "todo", "next", "later",
}

// IsPriority reports case-insensitive membership in the priority vocabulary.
func IsPriority(s string) bool {
	f := Fold(s)
	for _, p := range PriorityVocabulary {
		if p == f {
			return true
		}
	}
	return false
}

// IsPriorityPrefix reports whether s is a strict prefix of at least one
// vocabulary entry. Used for partial-typing tolerance on short inputs.
func IsPriorityPrefix(s string) bool {
	f := Fold(s)
	if f == "" {
		return false
	}
	for _, p := range PriorityVocabulary {
		if len(f) < len(p) && p[:len(f)] == f {
			return true
		}
	}
	return false
}

// SuggestionTriggerWords are plain words that, unmarked, prompt the
// advisory "wrap as tag" suggestion.
var SuggestionTriggerWords = []string{"urgent", "important"}
