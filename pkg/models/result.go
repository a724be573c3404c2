package models

import "time"

// RiskLevel is the overall classification assigned to an analyzed input.
//
// The scoring engine only ever produces the first five values. LevelUnknown
// exists as a display fallback for callers that need to render a result
// slot before an analysis has run.
type RiskLevel string

const (
	LevelSafe     RiskLevel = "safe"
	LevelLow      RiskLevel = "low"
	LevelMedium   RiskLevel = "medium"
	LevelHigh     RiskLevel = "high"
	LevelCritical RiskLevel = "critical"
	LevelUnknown  RiskLevel = "unknown"
)

// Severity tags a single indicator's urgency. It is independent of the
// overall RiskLevel: a danger indicator on an otherwise clean input can
// still net out to a low overall level.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// InputType records how the classifier interpreted the raw input string.
type InputType string

const (
	InputURL    InputType = "url"
	InputDomain InputType = "domain"
	InputText   InputType = "text"
)

// Indicator is one matched detection rule's output.
//
// Indicators are emitted in rule-table order, which is an observable part of
// the contract: reports and UIs render them in emission order. An Indicator
// is never mutated after the engine creates it.
type Indicator struct {
	// Type is the rule's category label (e.g. "IP Address URL").
	Type string `json:"type"`

	// Severity is the per-indicator urgency bucket.
	Severity Severity `json:"severity"`

	// Description is a human-readable explanation of why the rule fired.
	Description string `json:"description"`
}

// AnalysisResult is the complete output of one analysis.
//
// The engine does NOT make a binary block/allow decision. It returns a
// risk level with itemized indicators and narrative guidance, leaving
// policy decisions to the integrating application.
//
// A result is created once per Analyze call and never mutated afterwards.
// The caller owns it: it may be rendered, exported as a plain-text report,
// or persisted to a history store. Timestamp round-trips through JSON as
// RFC 3339, so results survive serialization unchanged.
type AnalysisResult struct {
	// RiskLevel is a deterministic function of the accumulated score.
	RiskLevel RiskLevel `json:"riskLevel"`

	// Confidence is a display-only percentage in [0, 95] derived from the
	// indicator count, not a statistical measure.
	Confidence int `json:"confidence"`

	// Summary is the fixed narrative for the assigned risk level.
	Summary string `json:"summary"`

	// Details holds one line per detail-worthy rule match, in emission
	// order. When no rule fired it holds a single fallback entry.
	Details []string `json:"details"`

	// Recommendations is the fixed guidance list for the assigned risk
	// level. Non-empty for every result.
	Recommendations []string `json:"recommendations"`

	// Indicators lists every rule that fired, in rule-table order.
	Indicators []Indicator `json:"indicators"`

	Timestamp time.Time `json:"timestamp"`
	InputType InputType `json:"inputType"`
}
