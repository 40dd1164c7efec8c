package diag

// Reporter is the minimal contract for receiving diagnostics from
// validation passes. Implementations: BagReporter (collects into a Bag),
// NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter forwards diagnostics into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
