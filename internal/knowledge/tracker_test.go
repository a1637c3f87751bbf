package knowledge

import (
	"context"
	"math"
	"testing"

	"github.com/abhisek/cognify/internal/store"
)

func TestTracker_SeedsPrior(t *testing.T) {
	tr := NewTracker("learner-1", nil, nil)
	if got := tr.Level("c1"); got != PriorMastery {
		t.Errorf("Level on first access = %v, want %v", got, PriorMastery)
	}
}

func TestTracker_RecordAnswerMatchesFold(t *testing.T) {
	tr := NewTracker("learner-1", nil, nil)
	ctx := context.Background()

	outcomes := []bool{true, false, true, true}
	var last float64
	for _, correct := range outcomes {
		last = tr.RecordAnswer(ctx, "c1", correct, 1200)
	}

	interactions := make([]Interaction, len(outcomes))
	for i, correct := range outcomes {
		interactions[i] = Interaction{CompetencyID: "c1", Correct: correct}
	}
	want := MasteryLevel(interactions)

	if math.Abs(last-want) > 1e-12 {
		t.Errorf("incremental RecordAnswer = %v, fold = %v; must agree", last, want)
	}
}

func TestTracker_RestoresFromSnapshot(t *testing.T) {
	snap := &store.SnapshotData{
		Version: store.SnapshotVersion,
		Mastery: map[string]map[string]float64{
			"learner-1": {"c1": 0.7},
			"learner-2": {"c1": 0.2},
		},
	}
	tr := NewTracker("learner-1", snap, nil)
	if got := tr.Level("c1"); got != 0.7 {
		t.Errorf("restored level = %v, want 0.7", got)
	}
}

func TestTracker_SnapshotDataPreservesOtherLearners(t *testing.T) {
	base := &store.SnapshotData{
		Version: store.SnapshotVersion,
		Mastery: map[string]map[string]float64{
			"learner-2": {"c9": 0.4},
		},
	}
	tr := NewTracker("learner-1", base, nil)
	tr.RecordAnswer(context.Background(), "c1", true, 0)

	out := tr.SnapshotData(base)
	if out.Mastery["learner-2"]["c9"] != 0.4 {
		t.Errorf("other learner's estimate lost: %v", out.Mastery["learner-2"])
	}
	if _, ok := out.Mastery["learner-1"]["c1"]; !ok {
		t.Error("own estimate missing from snapshot")
	}
}

func TestTracker_ReplayTouchesEachCompetency(t *testing.T) {
	tr := NewTracker("learner-1", nil, nil)
	touched := tr.Replay(context.Background(), []Interaction{
		{CompetencyID: "a", Correct: true},
		{CompetencyID: "b", Correct: false},
		{CompetencyID: "a", Correct: true},
	})
	if len(touched) != 2 {
		t.Fatalf("got %d touched competencies, want 2", len(touched))
	}
	if touched["a"] != tr.Level("a") {
		t.Errorf("replay result %v disagrees with tracker level %v", touched["a"], tr.Level("a"))
	}
}
