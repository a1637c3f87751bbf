package knowledge

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestUpdateKnowledge_CorrectAnswer(t *testing.T) {
	// From the prior: 0.1*0.9 / (0.1*0.9 + 0.9*0.2) = 0.09/0.27 = 1/3.
	got := UpdateKnowledge(0.1, true)
	want := 1.0 / 3.0
	if math.Abs(got-want) > epsilon {
		t.Errorf("UpdateKnowledge(0.1, true) = %v, want %v", got, want)
	}
}

func TestUpdateKnowledge_IncorrectAnswer(t *testing.T) {
	// 0.1*0.1 / (0.1*0.1 + 0.9*0.8) = 0.01/0.73.
	got := UpdateKnowledge(0.1, false)
	want := 0.01 / 0.73
	if math.Abs(got-want) > epsilon {
		t.Errorf("UpdateKnowledge(0.1, false) = %v, want %v", got, want)
	}
}

func TestUpdateKnowledge_Bounds(t *testing.T) {
	for _, correct := range []bool{true, false} {
		for m := 0.0; m <= 1.0; m += 0.01 {
			got := UpdateKnowledge(m, correct)
			if got < 0 || got > 1 {
				t.Fatalf("UpdateKnowledge(%v, %v) = %v, outside [0, 1]", m, correct, got)
			}
		}
	}
}

func TestApplyLearning(t *testing.T) {
	// 1/3 + 2/3*0.3 = 0.5333...
	got := ApplyLearning(1.0 / 3.0)
	want := 1.0/3.0 + (2.0/3.0)*0.3
	if math.Abs(got-want) > epsilon {
		t.Errorf("ApplyLearning(1/3) = %v, want %v", got, want)
	}
}

func TestApplyLearning_Bounds(t *testing.T) {
	for m := 0.0; m <= 1.0; m += 0.01 {
		got := ApplyLearning(m)
		if got < m || got > 1 {
			t.Fatalf("ApplyLearning(%v) = %v, outside [%v, 1]", m, got, m)
		}
	}
}

func TestMasteryLevel_Empty(t *testing.T) {
	got := MasteryLevel(nil)
	if got != PriorMastery {
		t.Errorf("MasteryLevel(nil) = %v, want the prior %v", got, PriorMastery)
	}
}

func TestMasteryLevel_OneCorrect(t *testing.T) {
	got := MasteryLevel([]Interaction{{CompetencyID: "c1", Correct: true}})
	want := ApplyLearning(UpdateKnowledge(PriorMastery, true))
	if math.Abs(got-want) > epsilon {
		t.Errorf("MasteryLevel = %v, want %v", got, want)
	}
	// Hand-computed: 1/3 then 0.5333...
	if math.Abs(got-0.5333333333333333) > 1e-12 {
		t.Errorf("MasteryLevel = %v, want 0.5333...", got)
	}
}

func TestMasteryLevel_ClampedToOne(t *testing.T) {
	interactions := make([]Interaction, 50)
	for i := range interactions {
		interactions[i] = Interaction{CompetencyID: "c1", Correct: true}
	}
	got := MasteryLevel(interactions)
	if got > 1 {
		t.Errorf("MasteryLevel after 50 correct = %v, want <= 1", got)
	}
	if got < 0.99 {
		t.Errorf("MasteryLevel after 50 correct = %v, want approaching 1", got)
	}
}

func TestMasteryLevel_WrongAnswerLowersEstimate(t *testing.T) {
	base := MasteryLevel([]Interaction{{Correct: true}, {Correct: true}})
	afterWrong := UpdateKnowledge(base, false)
	if afterWrong >= base {
		t.Errorf("wrong answer should lower the estimate: %v -> %v", base, afterWrong)
	}
}
