package diagfmt

import (
	"encoding/json"
	"io"

	"notemark/internal/diag"
	"notemark/internal/source"
)

// LocationJSON is a file position for JSON output.
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// FixJSON is a single quick fix for JSON output.
type FixJSON struct {
	Label       string `json:"label"`
	Replacement string `json:"replacement"`
	Desc        string `json:"desc,omitempty"`
}

// DiagnosticJSON is one diagnostic for JSON output.
type DiagnosticJSON struct {
	Severity  string       `json:"severity"`
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	Location  LocationJSON `json:"location"`
	Hint      string       `json:"hint,omitempty"`
	Suggested string       `json:"suggested,omitempty"`
	Fixes     []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput is the root structure of the JSON output.
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	f := fs.Get(span.File)

	loc := LocationJSON{
		File:      formatPath(f, fs, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}

	if includePositions {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}

	return loc
}

// BuildDiagnosticsOutput builds the JSON output structure without
// serializing it. Shared by the JSON and MsgPack writers.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for i := 0; i < maxItems; i++ {
		d := items[i]

		diagJSON := DiagnosticJSON{
			Severity:  d.Severity.String(),
			Code:      d.Code.ID(),
			Message:   d.Message,
			Location:  makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
			Hint:      d.Hint,
			Suggested: d.Suggested,
		}

		if opts.IncludeFixes && len(d.Fixes) > 0 {
			diagJSON.Fixes = make([]FixJSON, len(d.Fixes))
			for j, fix := range d.Fixes {
				diagJSON.Fixes[j] = FixJSON{
					Label:       fix.Label,
					Replacement: fix.Replacement,
					Desc:        fix.Desc,
				}
			}
		}

		diagnostics = append(diagnostics, diagJSON)
	}

	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
	}
}

// JSON writes the diagnostics as indented JSON.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
