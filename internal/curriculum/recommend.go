package curriculum

// RecommendNext selects the next competency to practice. Candidates are
// competencies not yet mastered (level ≤ MasteredThreshold) whose
// prerequisites all sit above PrereqThreshold. Among candidates the one with
// the lowest current level wins; ties keep the first candidate encountered in
// graph insertion order. Returns nil when nothing qualifies — that is the
// normal "all caught up or still blocked" outcome, not an error.
//
// Competencies absent from levels are treated as sitting at the prior: they
// qualify as candidates but do not satisfy the prerequisite threshold.
func RecommendNext(g *Graph, levels map[string]float64, prior float64) *Competency {
	level := func(id string) float64 {
		if m, ok := levels[id]; ok {
			return m
		}
		return prior
	}

	var best *Competency
	for i := range g.competencies {
		c := &g.competencies[i]
		if level(c.ID) > MasteredThreshold {
			continue
		}

		unlocked := true
		for _, prereqID := range c.Prerequisites {
			if level(prereqID) <= PrereqThreshold {
				unlocked = false
				break
			}
		}
		if !unlocked {
			continue
		}

		if best == nil || level(c.ID) < level(best.ID) {
			best = c
		}
	}

	if best == nil {
		return nil
	}
	out := *best
	return &out
}
