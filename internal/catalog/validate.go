package catalog

import "fmt"

const (
	minSDGID = 1
	maxSDGID = 17
)

func validCategory(c Category) bool {
	switch c {
	case CategoryPeople, CategoryPlanet, CategoryProsperity, CategoryPeace, CategoryPartnership:
		return true
	}
	return false
}

func validPhase(p Phase) bool {
	switch p {
	case PhaseDesign, PhaseConstruction, PhaseOperation:
		return true
	}
	return false
}

func validTier(t Tier) bool {
	switch t {
	case TierExemplary, TierAdvanced, TierBasic, TierMinimal, TierNoScore:
		return true
	}
	return false
}

// Validate checks catalog integrity. Any violation is a configuration defect
// and should be fatal at startup: the engine assumes a validated catalog.
func (c *Catalog) Validate() error {
	if len(c.SDGs) == 0 {
		return fmt.Errorf("catalog defines no sdgs")
	}
	known := make(map[SDGID]bool, len(c.SDGs))
	for _, s := range c.SDGs {
		if s.ID < minSDGID || s.ID > maxSDGID {
			return fmt.Errorf("sdg %d: id outside %d..%d", s.ID, minSDGID, maxSDGID)
		}
		if known[s.ID] {
			return fmt.Errorf("sdg %d: duplicate id", s.ID)
		}
		known[s.ID] = true
		if s.Name == "" {
			return fmt.Errorf("sdg %d: missing name", s.ID)
		}
		if len(s.Categories) == 0 {
			return fmt.Errorf("sdg %d: no category membership", s.ID)
		}
		for _, cat := range s.Categories {
			if !validCategory(cat) {
				return fmt.Errorf("sdg %d: unknown category %q", s.ID, cat)
			}
		}
	}

	if len(c.Questions) == 0 {
		return fmt.Errorf("catalog defines no questions")
	}
	questions := make(map[string]bool, len(c.Questions))
	covered := make(map[SDGID]bool)
	for _, q := range c.Questions {
		if q.ID == "" {
			return fmt.Errorf("question with empty id")
		}
		if questions[q.ID] {
			return fmt.Errorf("question %s: duplicate id", q.ID)
		}
		questions[q.ID] = true
		if !known[q.SDG] {
			return fmt.Errorf("question %s: unknown sdg %d", q.ID, q.SDG)
		}
		if q.Text == "" {
			return fmt.Errorf("question %s: missing text", q.ID)
		}
		if q.Weight <= 0 {
			return fmt.Errorf("question %s: weight must be positive, got %g", q.ID, q.Weight)
		}
		if q.Kind != KindSingle && q.Kind != KindMulti {
			return fmt.Errorf("question %s: unknown kind %q", q.ID, q.Kind)
		}
		if len(q.Levels) < 2 {
			return fmt.Errorf("question %s: needs at least 2 answer levels", q.ID)
		}
		for i, p := range q.Levels {
			if p < 0 {
				return fmt.Errorf("question %s: level %d has negative points", q.ID, i)
			}
		}
		if q.MaxPoints() <= 0 {
			return fmt.Errorf("question %s: all levels score zero", q.ID)
		}
		// Option labels are presentation data and may be omitted in fixtures,
		// but when present their arity must match the level table.
		if len(q.Options) > 0 {
			want := len(q.Levels)
			if q.Kind == KindMulti {
				want = len(q.Levels) - 1
			}
			if len(q.Options) != want {
				return fmt.Errorf("question %s: %d options for %d levels", q.ID, len(q.Options), len(q.Levels))
			}
		}
		covered[q.SDG] = true
	}
	for _, s := range c.SDGs {
		if !covered[s.ID] {
			return fmt.Errorf("sdg %d: no questions", s.ID)
		}
	}

	sectioned := make(map[string]bool)
	for _, sec := range c.Sections {
		if sec.Title == "" {
			return fmt.Errorf("section with empty title")
		}
		for _, qid := range sec.Questions {
			if !questions[qid] {
				return fmt.Errorf("section %q: unknown question %s", sec.Title, qid)
			}
			if sectioned[qid] {
				return fmt.Errorf("section %q: question %s listed twice", sec.Title, qid)
			}
			sectioned[qid] = true
		}
	}

	if c.Synergy.Cap < 0 {
		return fmt.Errorf("synergy cap must not be negative, got %g", c.Synergy.Cap)
	}
	prev := 0.0
	for i, band := range c.Synergy.Bands {
		if band.Threshold <= prev || band.Threshold > 100 {
			return fmt.Errorf("synergy band %d: thresholds must ascend within (0,100], got %g", i, band.Threshold)
		}
		prev = band.Threshold
		if band.Bonus <= 0 {
			return fmt.Errorf("synergy band %d: bonus must be positive, got %g", i, band.Bonus)
		}
	}
	sources := make(map[SDGID]bool)
	for _, link := range c.Synergy.Links {
		if !known[link.Source] {
			return fmt.Errorf("synergy link: unknown source sdg %d", link.Source)
		}
		if sources[link.Source] {
			return fmt.Errorf("synergy link: duplicate source sdg %d", link.Source)
		}
		sources[link.Source] = true
		if len(link.Strengthens) == 0 {
			return fmt.Errorf("synergy link %d: strengthens nothing", link.Source)
		}
		targets := make(map[SDGID]bool)
		for _, t := range link.Strengthens {
			if !known[t] {
				return fmt.Errorf("synergy link %d: unknown target sdg %d", link.Source, t)
			}
			if t == link.Source {
				return fmt.Errorf("synergy link %d: strengthens itself", link.Source)
			}
			if targets[t] {
				return fmt.Errorf("synergy link %d: duplicate target sdg %d", link.Source, t)
			}
			targets[t] = true
		}
	}

	if len(c.Scale) == 0 {
		return fmt.Errorf("catalog defines no tier scale")
	}
	scaleTiers := make(map[Tier]bool)
	prevMin := 101.0
	for _, cut := range c.Scale {
		if !validTier(cut.Tier) {
			return fmt.Errorf("tier scale: unknown tier %q", cut.Tier)
		}
		if cut.Tier == TierNoScore {
			return fmt.Errorf("tier scale: %q is the implicit floor and takes no bound", TierNoScore)
		}
		if scaleTiers[cut.Tier] {
			return fmt.Errorf("tier scale: duplicate tier %q", cut.Tier)
		}
		scaleTiers[cut.Tier] = true
		if cut.Min < 0 || cut.Min > 100 {
			return fmt.Errorf("tier scale: %s bound %g outside [0,100]", cut.Tier, cut.Min)
		}
		if cut.Min >= prevMin {
			return fmt.Errorf("tier scale: bounds must strictly descend, %s at %g", cut.Tier, cut.Min)
		}
		prevMin = cut.Min
	}

	for i, e := range c.Recommendations {
		if !known[e.SDG] {
			return fmt.Errorf("recommendation %d: unknown sdg %d", i, e.SDG)
		}
		if !validPhase(e.Phase) {
			return fmt.Errorf("recommendation %d: unknown phase %q", i, e.Phase)
		}
		for _, t := range e.Tiers {
			if !validTier(t) {
				return fmt.Errorf("recommendation %d: unknown tier %q", i, t)
			}
		}
		if len(e.Items) == 0 {
			return fmt.Errorf("recommendation %d: no items", i)
		}
	}
	fallbacks := make(map[Tier]bool)
	for _, f := range c.Fallbacks {
		if !validTier(f.Tier) {
			return fmt.Errorf("fallback: unknown tier %q", f.Tier)
		}
		if fallbacks[f.Tier] {
			return fmt.Errorf("fallback: duplicate tier %q", f.Tier)
		}
		if len(f.Items) == 0 {
			return fmt.Errorf("fallback %s: no items", f.Tier)
		}
		fallbacks[f.Tier] = true
	}
	for _, t := range Tiers() {
		if !fallbacks[t] {
			return fmt.Errorf("fallback: missing tier %q", t)
		}
	}

	facets := make(map[string]bool)
	for _, f := range c.Facets {
		if f.Name == "" {
			return fmt.Errorf("facet with empty name")
		}
		if facets[f.Name] {
			return fmt.Errorf("facet %s: duplicate name", f.Name)
		}
		facets[f.Name] = true
		if len(f.SDGs) == 0 {
			return fmt.Errorf("facet %s: no member sdgs", f.Name)
		}
		for _, id := range f.SDGs {
			if !known[id] {
				return fmt.Errorf("facet %s: unknown sdg %d", f.Name, id)
			}
		}
	}

	groups := make(map[string]bool)
	for _, g := range c.Certifications {
		if g.Focus == "" {
			return fmt.Errorf("certification group with empty focus")
		}
		if groups[g.Focus] {
			return fmt.Errorf("certification group %s: duplicate focus", g.Focus)
		}
		groups[g.Focus] = true
		if len(g.Schemes) == 0 {
			return fmt.Errorf("certification group %s: no schemes", g.Focus)
		}
	}

	return nil
}
