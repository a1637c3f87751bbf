package cognitive

// Score thresholds for the weighted-rule classifier.
const (
	confusedThreshold   = 4
	frustratedThreshold = 8
)

// Classify maps the current signals to a state, returning the state and the
// accumulated score (0 when an override fired). The rule order is fixed:
// hard overrides first, then the additive score.
//
// The score weights are hand-tuned product levers; note in particular that
// backspaceCount > 20 stacks on top of the > 10 bonus for a total of +5.
// Classification is memoryless — no hysteresis — so rapid signal noise can
// flap between states. That is a known characteristic, not a bug.
func Classify(s Signals) (State, int) {
	// Hard override: vocal frustration wins over everything.
	if s.VocalState == "frustrated" {
		return StateFrustrated, 0
	}
	// Hard override: facial sadness reads as confusion.
	if s.FacialExpression == "sad" {
		return StateConfused, 0
	}

	score := 0
	if s.RephraseCount > 1 {
		score += 3
	}
	if s.BackspaceCount > 10 {
		score += 2
	}
	if s.BackspaceCount > 20 {
		score += 3
	}

	switch s.VocalState {
	case "stressed":
		score += 4
	case "hesitant":
		score += 3
	}

	switch s.FacialExpression {
	case "fear", "angry", "frustrated":
		score += 3
	case "surprise":
		score += 1
	}

	switch {
	case score >= frustratedThreshold:
		return StateFrustrated, score
	case score >= confusedThreshold:
		return StateConfused, score
	default:
		return StateFocused, score
	}
}
