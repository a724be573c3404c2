package engine

import "github.com/neroguard/neroguard/pkg/models"

// tier bundles the narrative attached to one risk band.
type tier struct {
	level           models.RiskLevel
	summary         string
	recommendations []string
}

// classifyScore maps an accumulated score to its risk tier. Bands are
// contiguous with inclusive upper bounds, checked lowest first; the
// function is total and never yields LevelUnknown.
//
// Scores can be negative: trust signals subtract risk, and the net sum is
// taken literally even when danger indicators also fired.
func classifyScore(score int) tier {
	switch {
	case score <= -10:
		return tier{
			level:   models.LevelSafe,
			summary: "This appears to be a legitimate, trusted resource.",
			recommendations: []string{
				"Always verify you're on the correct site before entering sensitive information.",
			},
		}
	case score <= 10:
		return tier{
			level:   models.LevelLow,
			summary: "No significant threats detected, but exercise normal caution.",
			recommendations: []string{
				"Verify the source if you weren't expecting this content.",
				"Look for official verification badges or certificates.",
			},
		}
	case score <= 30:
		return tier{
			level:   models.LevelMedium,
			summary: "Some suspicious indicators detected. Proceed with caution.",
			recommendations: []string{
				"Verify the legitimacy of this content through official channels.",
				"Do not enter sensitive information without verification.",
				"Check for official communications from the claimed source.",
			},
		}
	case score <= 50:
		return tier{
			level:   models.LevelHigh,
			summary: "Multiple warning signs detected. This content may be malicious.",
			recommendations: []string{
				"Do not click links or download files from this source.",
				"Do not enter any personal or financial information.",
				"Report this content if it was sent to you unsolicited.",
				"If you've already interacted, consider changing relevant passwords.",
			},
		}
	default:
		return tier{
			level:   models.LevelCritical,
			summary: "Strong indicators of malicious content. Avoid interaction.",
			recommendations: []string{
				"Do not interact with this content in any way.",
				"Close this tab/window immediately if viewing the actual content.",
				"Report this to relevant authorities or platforms.",
				"If you've shared any information, take immediate protective action.",
			},
		}
	}
}
