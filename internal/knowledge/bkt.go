// Package knowledge estimates a learner's probability of having mastered a
// competency using Bayesian Knowledge Tracing (BKT): a two-state hidden
// variable (mastered / not mastered) updated from binary-graded answers.
package knowledge

import "math"

// BKT model parameters. Hand-tuned for short-form quiz interactions; the
// update math assumes they never zero both terms of a posterior denominator.
const (
	// PriorMastery (pL0) seeds a learner/competency pair that has no history.
	PriorMastery = 0.1
	// PTransit (pT) is the probability of learning the skill between two
	// answer opportunities.
	PTransit = 0.3
	// PGuess (pG) is the probability of a correct answer without mastery.
	PGuess = 0.2
	// PSlip (pS) is the probability of an incorrect answer despite mastery.
	PSlip = 0.1
)

// Interaction is one graded answer. A session reduces an ordered sequence of
// these to a single mastery estimate, so chronological order matters.
type Interaction struct {
	CompetencyID string `json:"competencyId"`
	Correct      bool   `json:"correct"`
	TimeSpentMs  int    `json:"timeSpentMs,omitempty"`
}

// UpdateKnowledge applies one Bayesian observation update to a mastery
// estimate. The caller must pass a mastery value in [0, 1]; out-of-range
// inputs are a precondition violation, not defended against.
func UpdateKnowledge(mastery float64, correct bool) float64 {
	if correct {
		return mastery * (1 - PSlip) / (mastery*(1-PSlip) + (1-mastery)*PGuess)
	}
	return mastery * PSlip / (mastery*PSlip + (1-mastery)*(1-PGuess))
}

// ApplyLearning models forgetting-free acquisition between opportunities.
// The result is always in [mastery, 1].
func ApplyLearning(mastery float64) float64 {
	return mastery + (1-mastery)*PTransit
}

// MasteryLevel folds an ordered interaction sequence into a mastery estimate,
// starting from PriorMastery. Each step is an observation update followed by a
// learning step. An empty sequence yields the prior. The final clamp guards
// floating-point overshoot above 1.
func MasteryLevel(interactions []Interaction) float64 {
	m := PriorMastery
	for _, it := range interactions {
		m = UpdateKnowledge(m, it.Correct)
		m = ApplyLearning(m)
	}
	return math.Min(m, 1)
}
