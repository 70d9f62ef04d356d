package diag

import (
	"quartz/internal/source"
)

// Severity ranks a diagnostic. The order is load-bearing: gates such as
// Bag.HasErrors compare with >=, so any new level has to slot into the
// escalation.
type Severity uint8

const (
	// SevInfo carries context that never affects the run's outcome.
	SevInfo Severity = iota
	// SevWarning flags suspicious input that still scans.
	SevWarning
	// SevError marks input the scanner could not turn into a token; a run
	// holding one fails.
	SevError
)

// String returns the label used in rendered output, e.g. "ERROR".
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Note attaches secondary context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one immutable finding: what went wrong, how bad, and where.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Phase    Phase
	Message  string
	Primary  source.Span
	Notes    []Note
}
