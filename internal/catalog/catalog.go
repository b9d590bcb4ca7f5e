package catalog

// SDGID identifies one of the 17 UN Sustainable Development Goals.
type SDGID int

type Category string

const (
	CategoryPeople      Category = "People"
	CategoryPlanet      Category = "Planet"
	CategoryProsperity  Category = "Prosperity"
	CategoryPeace       Category = "Peace"
	CategoryPartnership Category = "Partnership"
)

// Categories returns the 5Ps in reporting order.
func Categories() []Category {
	return []Category{CategoryPeople, CategoryPlanet, CategoryProsperity, CategoryPeace, CategoryPartnership}
}

type Phase string

const (
	PhaseDesign       Phase = "design"
	PhaseConstruction Phase = "construction"
	PhaseOperation    Phase = "operation"
)

// Phases returns the project lifecycle phases in order.
func Phases() []Phase {
	return []Phase{PhaseDesign, PhaseConstruction, PhaseOperation}
}

// ParsePhase normalizes a phase string. Empty input defaults to design.
func ParsePhase(s string) (Phase, bool) {
	switch Phase(s) {
	case "":
		return PhaseDesign, true
	case PhaseDesign, PhaseConstruction, PhaseOperation:
		return Phase(s), true
	}
	return "", false
}

type Tier string

const (
	TierExemplary Tier = "Exemplary"
	TierAdvanced  Tier = "Advanced"
	TierBasic     Tier = "Basic"
	TierMinimal   Tier = "Minimal"
	TierNoScore   Tier = "No Score"
)

// Tiers returns all performance tiers from best to worst.
func Tiers() []Tier {
	return []Tier{TierExemplary, TierAdvanced, TierBasic, TierMinimal, TierNoScore}
}

type QuestionKind string

const (
	// KindSingle questions take one choice; each option is one answer level.
	KindSingle QuestionKind = "single"
	// KindMulti questions are checklists; the answer level is the count of
	// selected options and Levels maps that count to points.
	KindMulti QuestionKind = "multi"
)

type SDG struct {
	ID          SDGID      `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description"`
	Categories  []Category `json:"categories" yaml:"categories"`
}

type Question struct {
	ID     string       `json:"id" yaml:"id"`
	SDG    SDGID        `json:"sdg" yaml:"sdg"`
	Kind   QuestionKind `json:"kind" yaml:"kind"`
	Text   string       `json:"text" yaml:"text"`
	Weight float64      `json:"weight" yaml:"weight"`

	// Options are display labels for the collector: one per level for
	// single-choice questions, one per selectable item for checklists.
	Options []string `json:"options,omitempty" yaml:"options"`

	// Levels holds the point value for each ordinal answer level.
	Levels []float64 `json:"levels" yaml:"levels"`
}

// ClampLevel snaps an answer level onto the question's valid range.
func (q Question) ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level >= len(q.Levels) {
		return len(q.Levels) - 1
	}
	return level
}

// Points returns the point value for an answer level, clamping out-of-range input.
func (q Question) Points(level int) float64 {
	return q.Levels[q.ClampLevel(level)]
}

// MaxPoints is the highest point value the question can contribute.
func (q Question) MaxPoints() float64 {
	var max float64
	for _, p := range q.Levels {
		if p > max {
			max = p
		}
	}
	return max
}

// Section groups questions for questionnaire presentation.
type Section struct {
	Title     string   `json:"title" yaml:"title"`
	Questions []string `json:"questions" yaml:"questions"`
}

// SynergyBand adds Bonus to every goal strengthened by a source whose raw
// score is at or above Threshold. Bands are cumulative.
type SynergyBand struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Bonus     float64 `json:"bonus" yaml:"bonus"`
}

type SynergyLink struct {
	Source      SDGID   `json:"source" yaml:"source"`
	Strengthens []SDGID `json:"strengthens" yaml:"strengthens"`
}

type Synergy struct {
	Cap   float64       `json:"cap" yaml:"cap"`
	Bands []SynergyBand `json:"bands" yaml:"bands"`
	Links []SynergyLink `json:"links" yaml:"links"`
}

// SynergyRule is the flattened form the scoring engine consumes: if the
// partner's raw score is at or above Threshold, Target gains Bonus.
type SynergyRule struct {
	Target    SDGID   `json:"target"`
	Partner   SDGID   `json:"partner"`
	Threshold float64 `json:"threshold"`
	Bonus     float64 `json:"bonus"`
}

// TierCut is the inclusive lower bound of one tier.
type TierCut struct {
	Tier Tier    `json:"tier" yaml:"tier"`
	Min  float64 `json:"min" yaml:"min"`
}

// TierScale maps scores to tiers via descending inclusive lower bounds.
type TierScale []TierCut

// Classify returns the tier for a score. Zero scores, and positive scores
// below every cut, classify as No Score.
func (s TierScale) Classify(score float64) Tier {
	if score <= 0 {
		return TierNoScore
	}
	for _, cut := range s {
		if score >= cut.Min {
			return cut.Tier
		}
	}
	return TierNoScore
}

// RecommendationEntry holds guidance items for one goal and phase. An empty
// Tiers list applies the entry to every tier.
type RecommendationEntry struct {
	SDG   SDGID    `json:"sdg" yaml:"sdg"`
	Phase Phase    `json:"phase" yaml:"phase"`
	Tiers []Tier   `json:"tiers,omitempty" yaml:"tiers"`
	Items []string `json:"items" yaml:"items"`
}

// TierFallback is the generic guidance used when no entry matches a lookup.
type TierFallback struct {
	Tier  Tier     `json:"tier" yaml:"tier"`
	Items []string `json:"items" yaml:"items"`
}

// Facet is a named group of goals reported as one building-performance metric.
type Facet struct {
	Name string  `json:"name" yaml:"name"`
	SDGs []SDGID `json:"sdgs" yaml:"sdgs"`
}

// CertificationGroup lists certification schemes relevant to a focus area.
type CertificationGroup struct {
	Focus   string   `json:"focus" yaml:"focus"`
	Schemes []string `json:"schemes" yaml:"schemes"`
}

// Catalog is the immutable reference data the scoring engine evaluates
// against. Built once at startup, validated, then only read.
type Catalog struct {
	Version         int                   `json:"version" yaml:"version"`
	SDGs            []SDG                 `json:"sdgs" yaml:"sdgs"`
	Sections        []Section             `json:"sections,omitempty" yaml:"sections"`
	Questions       []Question            `json:"questions" yaml:"questions"`
	Synergy         Synergy               `json:"synergy" yaml:"synergy"`
	Scale           TierScale             `json:"tiers" yaml:"tiers"`
	Recommendations []RecommendationEntry `json:"recommendations" yaml:"recommendations"`
	Fallbacks       []TierFallback        `json:"fallbacks" yaml:"fallbacks"`
	Facets          []Facet               `json:"facets,omitempty" yaml:"facets"`
	Certifications  []CertificationGroup  `json:"certifications,omitempty" yaml:"certifications"`
}

// SDGByID returns the goal definition for an id.
func (c *Catalog) SDGByID(id SDGID) (SDG, bool) {
	for _, s := range c.SDGs {
		if s.ID == id {
			return s, true
		}
	}
	return SDG{}, false
}

// Question returns the question with the given id.
func (c *Catalog) Question(id string) (Question, bool) {
	for _, q := range c.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// QuestionsBySDG returns the questions contributing to one goal, in catalog order.
func (c *Catalog) QuestionsBySDG(id SDGID) []Question {
	var out []Question
	for _, q := range c.Questions {
		if q.SDG == id {
			out = append(out, q)
		}
	}
	return out
}

// Members returns the ids of the goals belonging to a category, in catalog order.
func (c *Catalog) Members(cat Category) []SDGID {
	var out []SDGID
	for _, s := range c.SDGs {
		for _, sc := range s.Categories {
			if sc == cat {
				out = append(out, s.ID)
				break
			}
		}
	}
	return out
}

// Rules flattens the synergy links and bands into per-partner rules.
func (c *Catalog) Rules() []SynergyRule {
	var rules []SynergyRule
	for _, link := range c.Synergy.Links {
		for _, target := range link.Strengthens {
			for _, band := range c.Synergy.Bands {
				rules = append(rules, SynergyRule{
					Target:    target,
					Partner:   link.Source,
					Threshold: band.Threshold,
					Bonus:     band.Bonus,
				})
			}
		}
	}
	return rules
}

// Recommend resolves guidance for (goal, phase, tier). Lookup prefers an
// entry naming the tier, then a tier-agnostic entry, then the tier fallback.
// Given a validated catalog it always returns at least one item.
func (c *Catalog) Recommend(id SDGID, phase Phase, tier Tier) []string {
	var generic []string
	for _, e := range c.Recommendations {
		if e.SDG != id || e.Phase != phase {
			continue
		}
		if len(e.Tiers) == 0 {
			if generic == nil {
				generic = e.Items
			}
			continue
		}
		for _, t := range e.Tiers {
			if t == tier {
				return e.Items
			}
		}
	}
	if generic != nil {
		return generic
	}
	return c.FallbackItems(tier)
}

// FallbackItems returns the generic guidance for a tier.
func (c *Catalog) FallbackItems(tier Tier) []string {
	for _, f := range c.Fallbacks {
		if f.Tier == tier {
			return f.Items
		}
	}
	return nil
}
