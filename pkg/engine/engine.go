// Package engine runs the NeroGuard input analysis pipeline: input-type
// classification, rule evaluation, score accumulation, tier derivation, and
// report assembly.
package engine

import (
	"strings"
	"time"

	"github.com/neroguard/neroguard/pkg/models"
	"github.com/neroguard/neroguard/pkg/rules"
)

// fallbackDetail is the synthetic details entry used when no rule emitted
// a detail line.
const fallbackDetail = "No specific threat indicators identified in this analysis."

// maxConfidence caps the derived confidence percentage.
const maxConfidence = 95

// Engine is the heuristic risk-scoring engine.
//
// Architecture principles (shared with the rest of the library):
//   - Engine is rule-agnostic: it iterates an ordered rule list and never
//     type-switches on concrete rule types.
//   - Explainable: each firing rule contributes an itemized indicator.
//   - Pure: analysis is a function of the input string plus the fixed rule
//     table. No I/O, no lookups, no cross-call state.
//
// The rule table is read-only after construction, so a single Engine is
// safe for any number of concurrent Analyze calls without locking.
//
// Usage:
//
//	guard := engine.New()
//	result := guard.Analyze("http://192.168.1.1/login?verify=1")
type Engine struct {
	rules []rules.Rule
}

// New creates an engine loaded with the default detection table.
func New() *Engine {
	return &Engine{rules: rules.DefaultRules()}
}

// AddRule appends a custom rule to the table. Rules are evaluated in the
// order they were added, after the defaults. Not safe to call concurrently
// with Analyze.
func (e *Engine) AddRule(r rules.Rule) {
	e.rules = append(e.rules, r)
}

// Analyze classifies a raw input string and returns a complete risk
// assessment.
//
// The pipeline is single-pass and synchronous: trim, classify the input
// type, extract the domain (failing soft), evaluate the applicable rules in
// table order, sum their deltas with no floor, map the net score to a tier,
// and assemble the immutable result.
//
// Analyze is total: every string, including the empty string, yields a
// well-formed result and no error. Host-scoped rules are skipped for text
// inputs; domain extraction failure only disables the rules that need the
// extracted domain.
func (e *Engine) Analyze(input string) *models.AnalysisResult {
	trimmed := strings.TrimSpace(input)
	inputType := rules.DetectInputType(trimmed)

	in := rules.Input{
		Raw:  trimmed,
		Type: inputType,
	}
	if inputType == models.InputURL || inputType == models.InputDomain {
		in.Domain, in.HasDomain = rules.ExtractDomain(trimmed)
	}

	score := 0
	indicators := make([]models.Indicator, 0)
	details := make([]string, 0)

	for _, r := range e.rules {
		if r.Scope() == rules.ScopeHost && inputType == models.InputText {
			continue
		}

		delta, fired := r.Evaluate(in)
		if !fired {
			continue
		}

		score += delta
		indicators = append(indicators, models.Indicator{
			Type:        r.Name(),
			Severity:    r.Severity(),
			Description: r.Description(),
		})
		if detail := r.Detail(); detail != "" {
			details = append(details, detail)
		}
	}

	if len(details) == 0 {
		details = append(details, fallbackDetail)
	}

	t := classifyScore(score)

	confidence := 50 + len(indicators)*10
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return &models.AnalysisResult{
		RiskLevel:       t.level,
		Confidence:      confidence,
		Summary:         t.summary,
		Details:         details,
		Recommendations: t.recommendations,
		Indicators:      indicators,
		Timestamp:       time.Now(),
		InputType:       inputType,
	}
}
