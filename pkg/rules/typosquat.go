package rules

import (
	"regexp"

	"github.com/neroguard/neroguard/pkg/models"
)

// TyposquatRule flags extracted domains containing character-substituted
// brand look-alikes (g00gle, amaz0n, ...). Unlike PatternRule it matches
// the extracted domain rather than the raw input, so a look-alike hidden
// in a URL path does not trigger it.
type TyposquatRule struct {
	pattern *regexp.Regexp
	delta   int
}

// defaultTyposquatPattern covers a fixed set of digit-for-letter brand
// impersonations.
var defaultTyposquatPattern = regexp.MustCompile(`(?i)(g00gle|amaz0n|paypa1|micr0soft|faceb00k|netf1ix)`)

// NewTyposquatRule builds the brand look-alike rule with the default set.
func NewTyposquatRule(delta int) *TyposquatRule {
	return &TyposquatRule{pattern: defaultTyposquatPattern, delta: delta}
}

func (r *TyposquatRule) Name() string              { return "Possible Typosquatting" }
func (r *TyposquatRule) Severity() models.Severity { return models.SeverityDanger }
func (r *TyposquatRule) Description() string {
	return "Domain resembles a known brand with character substitutions."
}
func (r *TyposquatRule) Detail() string {
	return "Domain may be impersonating a well-known brand"
}
func (r *TyposquatRule) Scope() Scope { return ScopeHost }

func (r *TyposquatRule) Evaluate(in Input) (int, bool) {
	if !in.HasDomain {
		return 0, false
	}
	if r.pattern.MatchString(in.Domain) {
		return r.delta, true
	}
	return 0, false
}
