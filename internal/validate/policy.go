package validate

import "time"

// Policy carries the tunable validation thresholds. The partial-typing
// tolerances are policy, not constants: they are sensitive to the
// vocabulary word lengths and may need to move with it.
type Policy struct {
	// PriorityPrefixTolerance suppresses the unknown-priority diagnostic
	// for inputs up to this length when they prefix a vocabulary entry.
	PriorityPrefixTolerance int
	// AssigneePartialTolerance suppresses assignee diagnostics for
	// inputs up to this length.
	AssigneePartialTolerance int

	TagMaxLen      int
	AssigneeMaxLen int

	// Minimum total buffer lengths before the incomplete-pattern rules
	// fire, so a single freshly-typed trigger character stays quiet.
	MinIncompleteTag   int
	MinIncompleteColor int
	MinIncompleteSigil int

	// MaxDiagnostics caps the Bag for one scan pass.
	MaxDiagnostics int

	// Now supplies the current time for "today"/"tomorrow" fix text.
	Now func() time.Time
}

// DefaultPolicy returns the built-in thresholds.
func DefaultPolicy() Policy {
	return Policy{
		PriorityPrefixTolerance:  2,
		AssigneePartialTolerance: 1,
		TagMaxLen:                50,
		AssigneeMaxLen:           30,
		MinIncompleteTag:         2,
		MinIncompleteColor:       7,
		MinIncompleteSigil:       2,
		MaxDiagnostics:           100,
		Now:                      time.Now,
	}
}

func (p Policy) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}
