package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"notemark/internal/diag"
	"notemark/internal/source"
)

// Pretty formats diagnostics in a human-readable form, one block per
// diagnostic. Expects the bag to be sorted beforehand. Each diagnostic
// prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// optionally followed by the offending source line with a caret
// underline, the hint, and the quick-fix labels.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writePretty(w, d, fs, opts)
	}
}

func writePretty(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
		code = color.New(color.Bold).Sprint(code)
	}

	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		formatPath(f, fs, opts.PathMode), start.Line, start.Col, sev, code, d.Message)

	if opts.Context {
		writeContext(w, d, f, start, opts)
	}
	if opts.ShowHints && d.Hint != "" {
		fmt.Fprintf(w, "  hint: %s\n", d.Hint)
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			if fix.Desc != "" {
				fmt.Fprintf(w, "  fix: %s (%s)\n", fix.Label, fix.Desc)
			} else {
				fmt.Fprintf(w, "  fix: %s\n", fix.Label)
			}
		}
	}
}

// writeContext prints the source line holding the primary span with a
// ^~~~ underline. Display columns come from runewidth so that wide
// characters keep the caret aligned.
func writeContext(w io.Writer, d diag.Diagnostic, f *source.File, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" && start.Col > 0 {
		return
	}
	line = strings.ReplaceAll(line, "\t", " ")
	fmt.Fprintf(w, "  %s\n", line)

	// Col is 1-based; byte index into the line is one less.
	col := int(start.Col)
	if col > 0 {
		col--
	}
	if col > len(line) {
		col = len(line)
	}
	pad := runewidth.StringWidth(line[:col])

	spanLen := int(d.Primary.End - d.Primary.Start)
	if spanLen < 1 {
		spanLen = 1
	}
	end := col + spanLen
	if end > len(line) {
		end = len(line)
	}
	width := runewidth.StringWidth(line[col:end])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = severityColor(d.Severity).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), underline)
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
