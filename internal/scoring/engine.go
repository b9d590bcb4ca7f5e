package scoring

import (
	"sort"

	"github.com/uia-collective/compass/internal/catalog"
)

// Engine evaluates questionnaire submissions against an immutable catalog.
// It holds no mutable state, so a single Engine is safe for concurrent use.
type Engine struct {
	cat            *catalog.Catalog
	rules          []catalog.SynergyRule
	questions      map[string]catalog.Question
	maxPoints      map[catalog.SDGID]float64
	synergyEnabled bool
}

// NewEngine creates an Engine over a validated catalog.
func NewEngine(cat *catalog.Catalog, synergyEnabled bool) *Engine {
	questions := make(map[string]catalog.Question, len(cat.Questions))
	maxPoints := make(map[catalog.SDGID]float64, len(cat.SDGs))
	for _, q := range cat.Questions {
		questions[q.ID] = q
		maxPoints[q.SDG] += q.MaxPoints() * q.Weight
	}
	return &Engine{
		cat:            cat,
		rules:          cat.Rules(),
		questions:      questions,
		maxPoints:      maxPoints,
		synergyEnabled: synergyEnabled,
	}
}

// Evaluate scores one submission. Identical input yields identical output,
// and anomalous input is normalized rather than rejected: unknown question
// ids are reported in Result.Dropped, out-of-range levels are clamped, and
// an empty answer map is a valid all-unanswered assessment.
func (e *Engine) Evaluate(in Input) Result {
	if in.Phase == "" {
		in.Phase = catalog.PhaseDesign
	}

	// Raw score per goal: earned weighted points over the maximum possible,
	// on a 0-100 scale.
	raw, answered, dropped := e.rawScores(in.Answers)

	// Synergy pass: strong partners grant capped bonus points.
	bonus := e.synergyBonus(raw)

	// Adjusted score and tier per goal, in goal id order.
	scores := make([]SDGScore, 0, len(e.cat.SDGs))
	adjusted := make(map[catalog.SDGID]float64, len(e.cat.SDGs))
	tierCounts := make(map[catalog.Tier]int, len(catalog.Tiers()))
	var total float64
	for _, s := range e.cat.SDGs {
		adj := clamp(raw[s.ID]+bonus[s.ID], 0, 100)
		tier := e.cat.Scale.Classify(adj)
		scores = append(scores, SDGScore{
			SDG:      s.ID,
			Name:     s.Name,
			Raw:      raw[s.ID],
			Bonus:    bonus[s.ID],
			Adjusted: adj,
			Tier:     tier,
			Answered: answered[s.ID],
		})
		adjusted[s.ID] = adj
		tierCounts[tier]++
		total += adj
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].SDG < scores[j].SDG })

	categories := e.categoryScores(adjusted)

	var overall float64
	if len(scores) > 0 {
		overall = total / float64(len(scores))
	}
	overallTier := e.cat.Scale.Classify(overall)

	recs := make([]Recommendation, 0, len(scores))
	for _, sc := range scores {
		recs = append(recs, Recommendation{
			SDG:   sc.SDG,
			Tier:  sc.Tier,
			Items: e.cat.Recommend(sc.SDG, in.Phase, sc.Tier),
		})
	}

	return Result{
		Phase:           in.Phase,
		SDGScores:       scores,
		CategoryScores:  categories,
		OverallScore:    overall,
		OverallTier:     overallTier,
		Recommendations: recs,
		Strengths:       strengths(scores),
		Weaknesses:      weaknesses(scores, e.weaknessBound()),
		TierCounts:      tierCounts,
		Facets:          e.facetScores(adjusted),
		Insights:        buildInsights(overall, overallTier, categories, sumBonus(bonus)),
		Dropped:         dropped,
	}
}

// rawScores totals the earned weighted points per goal and converts them to
// percentages of each goal's maximum. Unanswered questions earn zero but
// still count toward the maximum.
func (e *Engine) rawScores(answers map[string]int) (map[catalog.SDGID]float64, map[catalog.SDGID]int, []string) {
	earned := make(map[catalog.SDGID]float64, len(e.maxPoints))
	answered := make(map[catalog.SDGID]int, len(e.maxPoints))
	var dropped []string
	for id, level := range answers {
		q, ok := e.questions[id]
		if !ok {
			dropped = append(dropped, id)
			continue
		}
		earned[q.SDG] += q.Points(level) * q.Weight
		answered[q.SDG]++
	}
	sort.Strings(dropped)

	raw := make(map[catalog.SDGID]float64, len(e.maxPoints))
	for id, max := range e.maxPoints {
		if max > 0 {
			raw[id] = earned[id] * 100 / max
		}
	}
	return raw, answered, dropped
}

// synergyBonus runs every compiled synergy rule once over the raw scores.
// Bonuses accumulate per target up to the catalog cap, so the result does
// not depend on rule order.
func (e *Engine) synergyBonus(raw map[catalog.SDGID]float64) map[catalog.SDGID]float64 {
	bonus := make(map[catalog.SDGID]float64)
	if !e.synergyEnabled {
		return bonus
	}
	limit := e.cat.Synergy.Cap
	for _, r := range e.rules {
		if raw[r.Partner] < r.Threshold {
			continue
		}
		add := r.Bonus
		if remaining := limit - bonus[r.Target]; add > remaining {
			add = remaining
		}
		if add > 0 {
			bonus[r.Target] += add
		}
	}
	return bonus
}

// categoryScores averages the adjusted scores of each category's member
// goals. Categories with no members in the catalog are omitted.
func (e *Engine) categoryScores(adjusted map[catalog.SDGID]float64) []CategoryScore {
	var out []CategoryScore
	for _, c := range catalog.Categories() {
		members := e.cat.Members(c)
		if len(members) == 0 {
			continue
		}
		var sum float64
		for _, id := range members {
			sum += adjusted[id]
		}
		mean := sum / float64(len(members))
		out = append(out, CategoryScore{
			Category: c,
			Score:    mean,
			Tier:     e.cat.Scale.Classify(mean),
		})
	}
	return out
}

func (e *Engine) facetScores(adjusted map[catalog.SDGID]float64) []FacetScore {
	var out []FacetScore
	for _, f := range e.cat.Facets {
		var sum float64
		for _, id := range f.SDGs {
			sum += adjusted[id]
		}
		out = append(out, FacetScore{Name: f.Name, Score: sum / float64(len(f.SDGs))})
	}
	return out
}

// weaknessBound is the adjusted score below which a goal counts as a
// weakness: the lower bound of the Advanced tier, or of the best tier when
// the scale defines no Advanced cut.
func (e *Engine) weaknessBound() float64 {
	for _, cut := range e.cat.Scale {
		if cut.Tier == catalog.TierAdvanced {
			return cut.Min
		}
	}
	return e.cat.Scale[0].Min
}

// strengths returns the top five goals by adjusted score, best first.
// Ties resolve to the lower goal id.
func strengths(scores []SDGScore) []SDGScore {
	ranked := make([]SDGScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Adjusted != ranked[j].Adjusted {
			return ranked[i].Adjusted > ranked[j].Adjusted
		}
		return ranked[i].SDG < ranked[j].SDG
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	return ranked
}

// weaknesses returns up to five goals scoring below bound, worst first.
// Ties resolve to the lower goal id.
func weaknesses(scores []SDGScore, bound float64) []SDGScore {
	var below []SDGScore
	for _, s := range scores {
		if s.Adjusted < bound {
			below = append(below, s)
		}
	}
	sort.Slice(below, func(i, j int) bool {
		if below[i].Adjusted != below[j].Adjusted {
			return below[i].Adjusted < below[j].Adjusted
		}
		return below[i].SDG < below[j].SDG
	})
	if len(below) > 5 {
		below = below[:5]
	}
	return below
}

func sumBonus(bonus map[catalog.SDGID]float64) float64 {
	var sum float64
	for _, b := range bonus {
		sum += b
	}
	return sum
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
