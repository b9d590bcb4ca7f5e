package scoring

import (
	"fmt"

	"github.com/uia-collective/compass/internal/catalog"
)

const maxInsights = 5

// buildInsights produces the headline takeaways shown at the top of a
// report. Derived only from the computed scores, so it is deterministic.
func buildInsights(overall float64, overallTier catalog.Tier, categories []CategoryScore, bonusTotal float64) []string {
	insights := make([]string, 0, maxInsights)

	switch overallTier {
	case catalog.TierExemplary:
		insights = append(insights, fmt.Sprintf("Exemplary overall performance (%.1f/100): a leading example of sustainable architecture.", overall))
	case catalog.TierAdvanced:
		insights = append(insights, fmt.Sprintf("Advanced overall performance (%.1f/100): strong alignment with key sustainability goals.", overall))
	case catalog.TierBasic:
		insights = append(insights, fmt.Sprintf("Basic overall performance (%.1f/100): a sound foundation with clear room to improve.", overall))
	default:
		insights = append(insights, fmt.Sprintf("Minimal overall performance (%.1f/100): significant opportunities for enhancement.", overall))
	}

	if len(categories) > 1 {
		best, worst := categories[0], categories[0]
		for _, c := range categories[1:] {
			if c.Score > best.Score {
				best = c
			}
			if c.Score < worst.Score {
				worst = c
			}
		}
		if best.Category != worst.Category {
			insights = append(insights, fmt.Sprintf("Strongest area: %s, averaging %.1f/100.", best.Category, best.Score))
			insights = append(insights, fmt.Sprintf("Priority area: %s, averaging %.1f/100.", worst.Category, worst.Score))
		}
	}

	if bonusTotal > 0 {
		insights = append(insights, fmt.Sprintf("Synergies between related goals added %.1f bonus points.", bonusTotal))
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
