package rules

import (
	"regexp"

	"github.com/neroguard/neroguard/pkg/models"
)

// PatternRule matches a regular expression against the raw input string.
// Most of the default rule table is built from these; rules that need the
// extracted domain or a match count get their own types.
type PatternRule struct {
	name        string
	severity    models.Severity
	description string
	detail      string
	scope       Scope
	delta       int
	pattern     *regexp.Regexp
}

// NewPatternRule builds a regex-backed rule. An empty detail means the rule
// emits no detail line when it fires.
func NewPatternRule(name string, severity models.Severity, description, detail string, scope Scope, delta int, pattern *regexp.Regexp) *PatternRule {
	return &PatternRule{
		name:        name,
		severity:    severity,
		description: description,
		detail:      detail,
		scope:       scope,
		delta:       delta,
		pattern:     pattern,
	}
}

func (r *PatternRule) Name() string              { return r.name }
func (r *PatternRule) Severity() models.Severity { return r.severity }
func (r *PatternRule) Description() string       { return r.description }
func (r *PatternRule) Detail() string            { return r.detail }
func (r *PatternRule) Scope() Scope              { return r.scope }

func (r *PatternRule) Evaluate(in Input) (int, bool) {
	if r.pattern.MatchString(in.Raw) {
		return r.delta, true
	}
	return 0, false
}
