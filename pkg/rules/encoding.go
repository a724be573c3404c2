package rules

import (
	"regexp"

	"github.com/neroguard/neroguard/pkg/models"
)

// EncodedCharsRule flags inputs with more than a threshold number of
// percent-encoded byte sequences. A couple of encoded characters are normal
// in legitimate URLs; heavy encoding is a common obfuscation trick.
type EncodedCharsRule struct {
	threshold int
	delta     int
}

var encodedCharPattern = regexp.MustCompile(`%[0-9a-fA-F]{2}`)

// NewEncodedCharsRule fires when the input holds strictly more than
// threshold percent-encoded sequences.
func NewEncodedCharsRule(threshold, delta int) *EncodedCharsRule {
	return &EncodedCharsRule{threshold: threshold, delta: delta}
}

func (r *EncodedCharsRule) Name() string              { return "URL Encoding" }
func (r *EncodedCharsRule) Severity() models.Severity { return models.SeverityWarning }
func (r *EncodedCharsRule) Description() string {
	return "Excessive URL encoding may be used to hide the true destination."
}
func (r *EncodedCharsRule) Detail() string { return "Multiple encoded characters in URL" }
func (r *EncodedCharsRule) Scope() Scope   { return ScopeHost }

func (r *EncodedCharsRule) Evaluate(in Input) (int, bool) {
	if len(encodedCharPattern.FindAllString(in.Raw, -1)) > r.threshold {
		return r.delta, true
	}
	return 0, false
}
