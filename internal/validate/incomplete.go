package validate

import (
	"regexp"
	"strings"

	"notemark/internal/diag"
	"notemark/internal/source"
)

// danglingColorRe matches a color marker whose hex part is absent or
// too short to be valid yet.
var danglingColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{0,2}$`)

// CheckIncomplete runs a second, independent scan for markers left open
// at the end of the buffer. Each rule requires a minimum total buffer
// length so a single freshly-typed trigger character stays quiet.
func CheckIncomplete(pol Policy, file *source.File) []diag.Diagnostic {
	content := string(file.Content)
	n := uint32(len(content))
	var out []diag.Diagnostic

	// Unterminated '[': an opener with no closer after it.
	if len(content) >= pol.MinIncompleteTag {
		open := strings.LastIndexByte(content, '[')
		if open >= 0 && open > strings.LastIndexByte(content, ']') {
			out = append(out, diag.NewWarning(diag.IncompleteTag,
				source.Span{File: file.ID, Start: uint32(open), End: n},
				"tag bracket is never closed").
				WithHint("close it with ']'"))
		}
	}

	// Dangling "color:" with no or too-short hex suffix.
	if len(content) >= pol.MinIncompleteColor {
		if idx := strings.LastIndex(content, "color:"); idx >= 0 {
			tail := content[idx+len("color:"):]
			if danglingColorRe.MatchString(tail) {
				out = append(out, diag.NewWarning(diag.IncompleteColor,
					source.Span{File: file.ID, Start: uint32(idx), End: n},
					"color marker has no hex value yet").
					WithHint("expected color:#rrggbb"))
			}
		}
	}

	// A bare trigger character at the very end of the buffer.
	if len(content) >= pol.MinIncompleteSigil {
		span := source.Span{File: file.ID, Start: n - 1, End: n}
		switch content[len(content)-1] {
		case '@':
			out = append(out, diag.NewWarning(diag.IncompleteDate, span,
				"date marker has no value yet").
				WithHint("expected @YYYY-MM-DD or @today"))
		case '+':
			out = append(out, diag.NewWarning(diag.IncompleteAssignee, span,
				"assignee marker has no name yet").
				WithHint("expected +username"))
		case '#':
			// A '#' right after "color:" belongs to the color marker.
			if !strings.HasSuffix(content, "color:#") {
				out = append(out, diag.NewWarning(diag.IncompletePriority, span,
					"priority marker has no value yet").
					WithHint("expected #high, #low, ..."))
			}
		}
	}

	return out
}
