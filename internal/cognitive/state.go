// Package cognitive classifies a learner's current affective state from
// weak, noisy signals: an externally produced facial-expression label, an
// externally produced vocal-state label, and the typing-friction counters.
// The classifier is a deliberately simple weighted-rule policy — auditable
// and designer-tunable rather than statistically optimal.
package cognitive

// State is the discrete affective state the tutoring flow adapts to.
type State string

const (
	StateFocused    State = "focused"
	StateConfused   State = "confused"
	StateFrustrated State = "frustrated"
)

// Label returns a display label for the state.
func (s State) Label() string {
	switch s {
	case StateFocused:
		return "Focused"
	case StateConfused:
		return "Confused"
	case StateFrustrated:
		return "Frustrated"
	default:
		return string(s)
	}
}

// Signals bundles the classifier inputs. Empty label strings mean no signal
// yet; absent data contributes nothing to the score and fires no override.
type Signals struct {
	FacialExpression string
	VocalState       string
	RephraseCount    int
	BackspaceCount   int
}
