package diag

import (
	"smir/internal/source"
)

// Note is a secondary span/message pair giving additional context.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is a single replacement in source coordinates. OldText is an
// optional guard: when non-empty, appliers must verify the span currently
// holds this text before editing.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// FixKind coarsely classifies a fix.
type FixKind uint8

const (
	FixKindQuickFix FixKind = iota
	FixKindRewrite
)

// FixApplicability is the confidence level attached to a fix.
type FixApplicability uint8

const (
	// FixApplicabilityAlwaysSafe marks fixes that preserve behavior.
	FixApplicabilityAlwaysSafe FixApplicability = iota
	// FixApplicabilitySafeWithHeuristics marks fixes relying on heuristics.
	FixApplicabilitySafeWithHeuristics
	// FixApplicabilityMaybeIncorrect marks fixes that assume intent the
	// producer cannot prove.
	FixApplicabilityMaybeIncorrect
)

func (a FixApplicability) String() string {
	switch a {
	case FixApplicabilityAlwaysSafe:
		return "always-safe"
	case FixApplicabilitySafeWithHeuristics:
		return "safe-with-heuristics"
	case FixApplicabilityMaybeIncorrect:
		return "may be incorrect"
	}
	return "unknown"
}

// Fix represents a possible automated correction. Fixes are data-only;
// materialising and applying edits is the consumer's job.
type Fix struct {
	ID            string
	Title         string
	Kind          FixKind
	Applicability FixApplicability
	IsPreferred   bool
	Edits         []TextEdit
}

// Diagnostic is the central record produced by all passes.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
