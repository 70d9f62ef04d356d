package diag

// Phase names the pipeline stage that produced a diagnostic.
type Phase uint8

const (
	// PhaseLex marks diagnostics produced during scanning.
	PhaseLex Phase = iota
	// PhaseParse is reserved for the future syntax phase.
	PhaseParse
)

func (p Phase) String() string {
	switch p {
	case PhaseLex:
		return "lexical"
	case PhaseParse:
		return "syntax"
	}
	return "unknown"
}
