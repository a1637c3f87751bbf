package cognitive

import "testing"

func TestClassify_VocalFrustrationOverride(t *testing.T) {
	// Override wins regardless of every other input being nominal.
	state, score := Classify(Signals{VocalState: "frustrated"})
	if state != StateFrustrated {
		t.Errorf("got %q, want %q", state, StateFrustrated)
	}
	if score != 0 {
		t.Errorf("override score = %d, want 0", score)
	}
}

func TestClassify_FacialSadnessOverride(t *testing.T) {
	// Fires even when friction counters alone would score FOCUSED.
	state, _ := Classify(Signals{FacialExpression: "sad"})
	if state != StateConfused {
		t.Errorf("got %q, want %q", state, StateConfused)
	}
}

func TestClassify_VocalOverrideBeatsFacialOverride(t *testing.T) {
	state, _ := Classify(Signals{VocalState: "frustrated", FacialExpression: "sad"})
	if state != StateFrustrated {
		t.Errorf("got %q, want %q (vocal override is checked first)", state, StateFrustrated)
	}
}

func TestClassify_ScoreTable(t *testing.T) {
	tests := []struct {
		name      string
		signals   Signals
		wantState State
		wantScore int
	}{
		{
			name:      "no signals",
			signals:   Signals{},
			wantState: StateFocused,
			wantScore: 0,
		},
		{
			name:      "hesitant alone is 3, focused",
			signals:   Signals{VocalState: "hesitant"},
			wantState: StateFocused,
			wantScore: 3,
		},
		{
			name:      "stressed alone is exactly 4, confused",
			signals:   Signals{VocalState: "stressed"},
			wantState: StateConfused,
			wantScore: 4,
		},
		{
			name:      "stressed plus fearful face is exactly 7, confused",
			signals:   Signals{VocalState: "stressed", FacialExpression: "fear"},
			wantState: StateConfused,
			wantScore: 7,
		},
		{
			name: "rephrases, backspaces, hesitant is exactly 8, frustrated",
			signals: Signals{
				VocalState:     "hesitant",
				RephraseCount:  2,
				BackspaceCount: 15,
			},
			wantState: StateFrustrated,
			wantScore: 8,
		},
		{
			name:      "hesitant plus rephrases is 6, confused",
			signals:   Signals{VocalState: "hesitant", RephraseCount: 2},
			wantState: StateConfused,
			wantScore: 6,
		},
		{
			name: "heavy backspacing stacks both bonuses",
			signals: Signals{
				VocalState:     "hesitant",
				RephraseCount:  2,
				BackspaceCount: 25, // +2 and +3
			},
			wantState: StateFrustrated,
			wantScore: 11,
		},
		{
			name:      "single rephrase does not score",
			signals:   Signals{RephraseCount: 1},
			wantState: StateFocused,
			wantScore: 0,
		},
		{
			name:      "backspace boundary at 10 does not score",
			signals:   Signals{BackspaceCount: 10},
			wantState: StateFocused,
			wantScore: 0,
		},
		{
			name:      "backspace 11 scores the first bonus only",
			signals:   Signals{BackspaceCount: 11},
			wantState: StateFocused,
			wantScore: 2,
		},
		{
			name:      "surprise counts one",
			signals:   Signals{FacialExpression: "surprise", VocalState: "hesitant"},
			wantState: StateConfused,
			wantScore: 4,
		},
		{
			name:      "angry face counts three",
			signals:   Signals{FacialExpression: "angry"},
			wantState: StateFocused,
			wantScore: 3,
		},
		{
			name:      "unknown labels contribute nothing",
			signals:   Signals{FacialExpression: "neutral", VocalState: "neutral"},
			wantState: StateFocused,
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, score := Classify(tt.signals)
			if state != tt.wantState {
				t.Errorf("state = %q, want %q", state, tt.wantState)
			}
			if score != tt.wantScore {
				t.Errorf("score = %d, want %d", score, tt.wantScore)
			}
		})
	}
}
