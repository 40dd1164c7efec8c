package diag

// Severity defines how a diagnostic is classified.
//
// Error blocks semantic correctness (an impossible calendar date).
// Warning is stylistic or risky but not wrong (special characters in
// a tag, an unterminated marker). Suggestion is purely advisory and
// never implies anything is wrong.
type Severity uint8

const (
	SevSuggestion Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevSuggestion:
		return "SUGGESTION"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}
