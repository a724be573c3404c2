// Package report serializes an AnalysisResult into the fixed plain-text
// report format used for copy/export.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/neroguard/neroguard/pkg/models"
)

// timestampLayout matches the display format used across NeroGuard
// surfaces, e.g. "Aug 28, 2026, 14:30:05".
const timestampLayout = "Jan 2, 2006, 15:04:05"

// FormatTimestamp renders a timestamp the way reports and history views
// display it.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// Format renders the fixed plain-text report: risk level, confidence,
// timestamp, input type, summary, indicator lines, and recommendation
// bullets, in that order.
func Format(result *models.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString("NeroGuard Security Report\n")
	sb.WriteString("========================\n")
	sb.WriteString(fmt.Sprintf("Risk Level: %s\n", strings.ToUpper(string(result.RiskLevel))))
	sb.WriteString(fmt.Sprintf("Confidence: %d%%\n", result.Confidence))
	sb.WriteString(fmt.Sprintf("Analyzed: %s\n", FormatTimestamp(result.Timestamp)))
	sb.WriteString(fmt.Sprintf("Type: %s\n", result.InputType))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Summary: %s\n", result.Summary))
	sb.WriteString("\n")

	sb.WriteString("Indicators:\n")
	for _, ind := range result.Indicators {
		sb.WriteString(fmt.Sprintf("- [%s] %s: %s\n", strings.ToUpper(string(ind.Severity)), ind.Type, ind.Description))
	}
	sb.WriteString("\n")

	sb.WriteString("Recommendations:\n")
	for _, rec := range result.Recommendations {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}

	return sb.String()
}
