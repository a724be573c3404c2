package rules

import (
	"regexp"

	"github.com/neroguard/neroguard/pkg/models"
)

// Patterns for the regex-backed default rules. Kept as package data so the
// table reads as configuration rather than control flow.
var (
	ipAddressPattern     = regexp.MustCompile(`^https?://\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`)
	subdomainPattern     = regexp.MustCompile(`^https?://([^.]+\.){4,}`)
	suspiciousTLDPattern = regexp.MustCompile(`(?i)\.(xyz|tk|ml|ga|cf|gq|top|work|click|link|loan|win)$`)
	homoglyphPattern     = regexp.MustCompile(`[а-яА-Яα-ωΑ-Ω]`)
	dataURIPattern       = regexp.MustCompile(`(?i)^data:`)
	portPattern          = regexp.MustCompile(`:\d{4,5}/`)
	plainHTTPPattern     = regexp.MustCompile(`^http://`)

	urgencyPattern   = regexp.MustCompile(`(?i)\b(urgent|immediate|act now|limited time|expire|suspended|verify|confirm|update required)\b`)
	financialPattern = regexp.MustCompile(`(?i)\b(bank|account|credit card|password|ssn|social security|wire transfer|bitcoin|crypto)\b`)
	threatPattern    = regexp.MustCompile(`(?i)\b(locked|suspended|unauthorized|illegal|breach|compromised|hacked)\b`)
	rewardPattern    = regexp.MustCompile(`(?i)\b(winner|prize|lottery|free|gift card|congratulations|selected|claim)\b`)
)

// DefaultRules returns the fixed detection table in evaluation order:
// host-scoped rules first, then the text rules that run for every input
// type. The order is part of the engine's contract; reordering changes the
// observable indicator and detail sequences.
//
// Note: the Data URI rule is host-scoped, but the classifier routes "data:"
// strings to the text type (they match neither the http(s) scheme prefix
// nor the domain grammar). The rule is therefore unreachable through
// DetectInputType. That gap is inherited behavior and is kept as-is.
func DefaultRules() []Rule {
	return []Rule{
		NewKnownSafeRule(DefaultSafeDomains, -20),
		NewPatternRule(
			"IP Address URL",
			models.SeverityWarning,
			"URL uses an IP address instead of a domain name, which is uncommon for legitimate sites.",
			"Direct IP address usage detected in URL",
			ScopeHost, 25, ipAddressPattern,
		),
		NewPatternRule(
			"Complex Subdomain",
			models.SeverityWarning,
			"Multiple subdomains may indicate an attempt to obfuscate the true destination.",
			"Unusually complex subdomain structure",
			ScopeHost, 15, subdomainPattern,
		),
		NewPatternRule(
			"Unusual TLD",
			models.SeverityWarning,
			"This top-level domain is commonly associated with low-cost registration and spam.",
			"Domain uses a TLD commonly associated with malicious activity",
			ScopeHost, 20, suspiciousTLDPattern,
		),
		NewPatternRule(
			"Character Substitution",
			models.SeverityDanger,
			"Domain contains characters from other alphabets that may impersonate legitimate sites.",
			"Potential homoglyph attack detected",
			ScopeHost, 40, homoglyphPattern,
		),
		NewEncodedCharsRule(2, 15),
		NewPatternRule(
			"Data URI",
			models.SeverityDanger,
			"Data URIs can embed malicious content directly in the URL.",
			"Data URI scheme detected",
			ScopeHost, 50, dataURIPattern,
		),
		NewPatternRule(
			"Non-Standard Port",
			models.SeverityInfo,
			"URL specifies a non-standard port number.",
			"Non-standard port in URL",
			ScopeHost, 10, portPattern,
		),
		NewTyposquatRule(45),
		NewPatternRule(
			"Unencrypted Connection",
			models.SeverityWarning,
			"This URL uses HTTP instead of HTTPS, meaning data is not encrypted.",
			"Connection is not encrypted (HTTP)",
			ScopeHost, 15, plainHTTPPattern,
		),

		NewPatternRule(
			"Urgency Tactics",
			models.SeverityWarning,
			"Contains language designed to create a sense of urgency.",
			"Uses urgency-inducing language",
			ScopeText, 15, urgencyPattern,
		),
		NewPatternRule(
			"Financial Keywords",
			models.SeverityWarning,
			"Contains references to financial or sensitive information.",
			"References financial or sensitive topics",
			ScopeText, 10, financialPattern,
		),
		NewPatternRule(
			"Threat Language",
			models.SeverityWarning,
			"Contains threatening language often used in phishing attempts.",
			"Uses threatening or alarming language",
			ScopeText, 20, threatPattern,
		),
		NewPatternRule(
			"Reward Bait",
			models.SeverityWarning,
			"Promises prizes or rewards, a common social engineering tactic.",
			"Contains promises of prizes or rewards",
			ScopeText, 15, rewardPattern,
		),
	}
}
