package rules

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/neroguard/neroguard/pkg/models"
)

// domainPattern is the bare-domain grammar: an alphanumeric first label with
// optional internal hyphens, followed by one or more alphabetic labels of at
// least two characters (the last of which is the TLD).
var domainPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z]{2,})+$`)

// DetectInputType classifies a raw input string as a URL, a bare domain, or
// free text. It is total: every string gets exactly one tag and there are no
// error cases. The scheme check is case-sensitive on purpose; "HTTP://"
// falls through to the domain/text checks.
func DetectInputType(input string) models.InputType {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return models.InputURL
	}
	if domainPattern.MatchString(strings.TrimSpace(input)) {
		return models.InputDomain
	}
	return models.InputText
}

// ExtractDomain normalizes a URL or bare-domain string to a lowercase
// hostname for domain-specific checks.
//
// It fails soft: a malformed URL or a non-domain input returns ok=false,
// which disables the domain rules for that call only. It never aborts the
// overall analysis.
func ExtractDomain(input string) (string, bool) {
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		u, err := url.Parse(input)
		if err != nil || u.Hostname() == "" {
			return "", false
		}
		return strings.ToLower(u.Hostname()), true
	}
	if domainPattern.MatchString(input) {
		return strings.ToLower(input), true
	}
	return "", false
}
