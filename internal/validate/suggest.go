package validate

import (
	"fmt"
	"regexp"

	"notemark/internal/diag"
	"notemark/internal/marker"
	"notemark/internal/source"
)

var plainWordRe = regexp.MustCompile(`[A-Za-z]+`)

// Suggest is the low-priority advisory pass. It proposes adopting a
// marker for plain words: "urgent"/"important" become tag candidates,
// weekday and relative-date words become date candidates when the
// buffer has no date marker at all. Suggestions never imply anything is
// wrong and may overlap other diagnostics' ranges.
func Suggest(pol Policy, file *source.File, matches []marker.Match) []diag.Diagnostic {
	content := string(file.Content)
	var out []diag.Diagnostic

	hasDate := false
	for _, m := range matches {
		if m.Kind == marker.KindDate {
			hasDate = true
			break
		}
	}

	for _, loc := range plainWordRe.FindAllStringIndex(content, -1) {
		span := source.Span{File: file.ID, Start: uint32(loc[0]), End: uint32(loc[1])}
		if insideMatch(matches, span) {
			continue
		}
		word := content[loc[0]:loc[1]]
		folded := marker.Fold(word)

		if isSuggestionTrigger(folded) && !taggedElsewhere(content, matches, folded) {
			out = append(out, diag.NewSuggestion(diag.SuggestTagWrap, span,
				fmt.Sprintf("%q could be a tag", word)).
				WithSuggested("Wrap as ["+word+"]", "["+word+"]"))
			continue
		}

		if !hasDate && marker.IsDateKeyword(folded) {
			out = append(out, diag.NewSuggestion(diag.SuggestDatePrefix, span,
				fmt.Sprintf("%q could be a date marker", word)).
				WithSuggested("Use @"+word, "@"+word))
		}
	}

	return out
}

func isSuggestionTrigger(folded string) bool {
	for _, w := range marker.SuggestionTriggerWords {
		if w == folded {
			return true
		}
	}
	return false
}

// insideMatch reports whether the word span is already part of a marker.
func insideMatch(matches []marker.Match, span source.Span) bool {
	for _, m := range matches {
		if m.Span.Overlaps(span) {
			return true
		}
	}
	return false
}

// taggedElsewhere reports whether a tag or priority marker with the
// same folded value already exists somewhere in the buffer.
func taggedElsewhere(content string, matches []marker.Match, folded string) bool {
	for _, m := range matches {
		if m.Kind != marker.KindTag && m.Kind != marker.KindPriority {
			continue
		}
		if marker.Fold(m.Value) == folded {
			return true
		}
	}
	return false
}
