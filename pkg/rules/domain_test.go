package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neroguard/neroguard/pkg/models"
)

func TestDetectInputType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  models.InputType
	}{
		{"https url", "https://example.com/path", models.InputURL},
		{"http url", "http://example.com", models.InputURL},
		{"scheme is case-sensitive", "HTTPS://example.com", models.InputText},
		{"bare domain", "example.com", models.InputDomain},
		{"subdomain", "mail.example.com", models.InputDomain},
		{"hyphenated domain", "my-site.example.org", models.InputDomain},
		{"leading hyphen is not a domain", "-example.com", models.InputText},
		{"single label is not a domain", "localhost", models.InputText},
		{"numeric tld is not a domain", "example.123", models.InputText},
		{"data uri falls through to text", "data:text/html,hi", models.InputText},
		{"free text", "hello, how are you today", models.InputText},
		{"empty string", "", models.InputText},
		{"whitespace around domain", "  example.com  ", models.InputDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectInputType(tt.input))
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"url hostname", "https://www.GitHub.com/foo", "www.github.com", true},
		{"url with port", "http://Example.com:8443/x", "example.com", true},
		{"bare domain lowered", "Example.COM", "example.com", true},
		{"free text", "not a domain at all", "", false},
		{"empty", "", "", false},
		{"malformed url fails soft", "http://%zz", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDomain(tt.input)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
