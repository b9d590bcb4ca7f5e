package scoring

import (
	"github.com/uia-collective/compass/internal/catalog"
)

// Input is one questionnaire submission: the project phase and the selected
// answer level per question id.
type Input struct {
	Phase   catalog.Phase  `json:"phase"`
	Answers map[string]int `json:"answers"`
}

// SDGScore is the per-goal breakdown: the raw weighted percentage, the synergy
// bonus granted by related goals, the capped adjusted score, and its tier.
type SDGScore struct {
	SDG      catalog.SDGID `json:"sdg"`
	Name     string        `json:"name"`
	Raw      float64       `json:"raw"`
	Bonus    float64       `json:"bonus"`
	Adjusted float64       `json:"adjusted"`
	Tier     catalog.Tier  `json:"tier"`
	Answered int           `json:"answered"`
}

type CategoryScore struct {
	Category catalog.Category `json:"category"`
	Score    float64          `json:"score"`
	Tier     catalog.Tier     `json:"tier"`
}

type FacetScore struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

type Recommendation struct {
	SDG   catalog.SDGID `json:"sdg"`
	Tier  catalog.Tier  `json:"tier"`
	Items []string      `json:"items"`
}

// Result is the complete assessment output, recomputed top-down from the
// answers on every evaluation.
type Result struct {
	Phase           catalog.Phase        `json:"phase"`
	SDGScores       []SDGScore           `json:"sdg_scores"`
	CategoryScores  []CategoryScore      `json:"category_scores"`
	OverallScore    float64              `json:"overall_score"`
	OverallTier     catalog.Tier         `json:"overall_tier"`
	Recommendations []Recommendation     `json:"recommendations"`
	Strengths       []SDGScore           `json:"strengths"`
	Weaknesses      []SDGScore           `json:"weaknesses"`
	TierCounts      map[catalog.Tier]int `json:"tier_counts"`
	Facets          []FacetScore         `json:"facets,omitempty"`
	Insights        []string             `json:"insights"`

	// Dropped lists answer keys that matched no catalog question, for
	// caller-side warning logs. Sorted for stable output.
	Dropped []string `json:"dropped_questions,omitempty"`
}
