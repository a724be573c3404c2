package rules

import "github.com/neroguard/neroguard/pkg/models"

// Scope controls which input types a rule is evaluated against.
type Scope int

const (
	// ScopeHost rules run only for url and domain inputs.
	ScopeHost Scope = iota

	// ScopeText rules run for every input type.
	ScopeText
)

// Input is the precomputed view of one analysis input that rules match
// against. The engine builds it once per call; rules never re-parse.
type Input struct {
	// Raw is the trimmed input string.
	Raw string

	// Type is the classifier's verdict for Raw.
	Type models.InputType

	// Domain is the extracted lowercase hostname. Valid only when
	// HasDomain is true; extraction failure disables domain-specific
	// rules for the call without aborting the analysis.
	Domain    string
	HasDomain bool
}

// Rule is a single stateless detection heuristic.
//
// Rules are evaluated in the order they appear in the rule table, and that
// order is observable: it fixes the indicator and detail ordering in the
// final result. Every rule is independent; several may fire on the same
// input, and their deltas simply sum.
type Rule interface {
	// Name is the rule's category label, used as the indicator type.
	Name() string

	// Severity is the urgency bucket attached to the rule's indicator.
	Severity() models.Severity

	// Description explains why a match matters, in end-user language.
	Description() string

	// Detail is the detail-log line emitted on a match. Empty means the
	// rule contributes an indicator and score only, no detail line.
	Detail() string

	// Scope reports which input types the rule applies to.
	Scope() Scope

	// Evaluate returns the rule's score delta and whether it fired.
	// Deltas may be negative (trust signals subtract risk).
	Evaluate(in Input) (int, bool)
}
