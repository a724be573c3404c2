package rules

import (
	"strings"

	"github.com/neroguard/neroguard/pkg/models"
)

// KnownSafeRule rewards inputs whose extracted domain is, or is a subdomain
// of, a well-known established organization. It is the only rule in the
// default table with a negative delta: a strong trust signal can pull the
// net score below the safe threshold even when other rules also fired.
type KnownSafeRule struct {
	safeDomains []string
	delta       int
}

// DefaultSafeDomains is a simplified allow-list of widely recognized
// registrable domains.
var DefaultSafeDomains = []string{
	"google.com", "youtube.com", "facebook.com", "amazon.com", "microsoft.com",
	"apple.com", "github.com", "stackoverflow.com", "wikipedia.org", "linkedin.com",
	"twitter.com", "instagram.com", "reddit.com", "netflix.com", "spotify.com",
}

// NewKnownSafeRule builds the allow-list rule. delta should be negative.
func NewKnownSafeRule(safeDomains []string, delta int) *KnownSafeRule {
	return &KnownSafeRule{safeDomains: safeDomains, delta: delta}
}

func (r *KnownSafeRule) Name() string              { return "Known Domain" }
func (r *KnownSafeRule) Severity() models.Severity { return models.SeverityInfo }
func (r *KnownSafeRule) Description() string {
	return "This domain is from a well-known, established organization."
}

// Detail is empty: the trust signal shows up as an indicator and a score
// contribution only.
func (r *KnownSafeRule) Detail() string { return "" }

func (r *KnownSafeRule) Scope() Scope { return ScopeHost }

func (r *KnownSafeRule) Evaluate(in Input) (int, bool) {
	if !in.HasDomain {
		return 0, false
	}
	for _, safe := range r.safeDomains {
		if in.Domain == safe || strings.HasSuffix(in.Domain, "."+safe) {
			return r.delta, true
		}
	}
	return 0, false
}
