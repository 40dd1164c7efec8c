package validate

import (
	"go.uber.org/zap"

	"notemark/internal/diag"
	"notemark/internal/marker"
	"notemark/internal/scan"
	"notemark/internal/source"
)

// Analyzer composes the scanner, the per-kind validators, the
// incomplete-pattern detector, and the suggestion pass into one
// diagnostic list per buffer snapshot.
//
// The public contract cannot fail: any internal fault is logged at the
// boundary and degrades to "no diagnostic" for that occurrence, or to
// an empty list for a total failure. A single malformed marker never
// prevents diagnostics for the rest of the buffer.
type Analyzer struct {
	pol Policy
	log *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithPolicy overrides the default thresholds.
func WithPolicy(pol Policy) Option {
	return func(a *Analyzer) { a.pol = pol }
}

// WithLogger supplies the boundary logger for recovered faults.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		if log != nil {
			a.log = log
		}
	}
}

func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		pol: DefaultPolicy(),
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Policy returns the thresholds in effect.
func (a *Analyzer) Policy() Policy {
	return a.pol
}

// Analyze recomputes the full diagnostic list for one buffer snapshot.
// It is wholesale by design: buffers are short single-field inputs, so
// simplicity wins over incremental patching.
func (a *Analyzer) Analyze(file *source.File) (bag *diag.Bag) {
	bag = diag.NewBag(a.pol.MaxDiagnostics)

	defer func() {
		if r := recover(); r != nil {
			a.log.Error("analysis pass failed", zap.Any("panic", r))
			bag = diag.NewBag(a.pol.MaxDiagnostics)
		}
	}()

	rep := diag.BagReporter{Bag: bag}
	matches := a.scanMatches(file)

	for _, m := range matches {
		if d := a.validateMatch(m); d != nil {
			rep.Report(*d)
		}
	}

	a.runPass(file, "incomplete", func() []diag.Diagnostic {
		return CheckIncomplete(a.pol, file)
	}, rep)
	a.runPass(file, "suggest", func() []diag.Diagnostic {
		return Suggest(a.pol, file, matches)
	}, rep)

	bag.Sort()
	return bag
}

// AnalyzeText is a convenience for callers holding a raw string: it
// wraps the text in a fresh virtual buffer and analyzes it.
func (a *Analyzer) AnalyzeText(name, text string) (*source.FileSet, *source.File, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(text))
	file := fs.Get(id)
	return fs, file, a.Analyze(file)
}

// scanMatches guards the scanner itself: a scan fault degrades to "no
// markers found", never a panic.
func (a *Analyzer) scanMatches(file *source.File) (matches []marker.Match) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("scanner failed", zap.Any("panic", r))
			matches = nil
		}
	}()
	return scan.Scan(file)
}

// validateMatch dispatches one occurrence to its own validator, with
// per-occurrence fault isolation. Each occurrence yields at most one
// diagnostic from its validator.
func (a *Analyzer) validateMatch(m marker.Match) (d *diag.Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("validator failed",
				zap.String("kind", m.Kind.String()),
				zap.Any("panic", r))
			d = nil
		}
	}()

	switch m.Kind {
	case marker.KindDate:
		return ValidateDate(a.pol, m)
	case marker.KindColor:
		return ValidateColor(a.pol, m)
	case marker.KindPriority:
		return ValidatePriority(a.pol, m)
	case marker.KindTag:
		return ValidateTag(a.pol, m)
	case marker.KindAssignee:
		return ValidateAssignee(a.pol, m)
	}
	return nil
}

// runPass executes a secondary pass with the same degrade-to-nothing
// fault policy as the validators.
func (a *Analyzer) runPass(file *source.File, name string, pass func() []diag.Diagnostic, rep diag.Reporter) {
	defer func() {
		if r := recover(); r != nil {
			a.log.Error("pass failed",
				zap.String("pass", name),
				zap.String("path", file.Path),
				zap.Any("panic", r))
		}
	}()
	for _, d := range pass() {
		rep.Report(d)
	}
}
