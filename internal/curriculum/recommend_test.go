package curriculum

import (
	"testing"
)

func chain() *Graph {
	// B requires A.
	g, err := New([]Competency{
		{ID: "A", Name: "A"},
		{ID: "B", Name: "B", Prerequisites: []string{"A"}},
	})
	if err != nil {
		panic(err)
	}
	return g
}

func TestRecommendNext_UnlockedDependent(t *testing.T) {
	// A at 0.85 clears the 0.8 prerequisite bar; B at 0.3 qualifies.
	got := RecommendNext(chain(), map[string]float64{"A": 0.85, "B": 0.3}, 0.1)
	if got == nil || got.ID != "B" {
		t.Errorf("got %v, want B", got)
	}
}

func TestRecommendNext_PrerequisiteUnmet(t *testing.T) {
	// A at 0.5 blocks B, so A itself is the recommendation.
	got := RecommendNext(chain(), map[string]float64{"A": 0.5, "B": 0}, 0.1)
	if got == nil || got.ID != "A" {
		t.Errorf("got %v, want A", got)
	}
}

func TestRecommendNext_MasteredExcluded(t *testing.T) {
	// Everything above 0.95: nothing to recommend.
	got := RecommendNext(chain(), map[string]float64{"A": 0.97, "B": 0.96}, 0.1)
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestRecommendNext_BoundaryThresholds(t *testing.T) {
	// Exactly 0.95 still qualifies as a candidate; exactly 0.8 does not
	// satisfy the prerequisite bar.
	got := RecommendNext(chain(), map[string]float64{"A": 0.95, "B": 0.1}, 0.1)
	if got == nil || got.ID != "B" {
		t.Errorf("A=0.95: got %v, want B (A unblocks B and B's mastery is lower)", got)
	}
}

func TestRecommendNext_PrereqExactlyAtBar(t *testing.T) {
	// Prerequisite must be strictly above 0.8.
	got := RecommendNext(chain(), map[string]float64{"A": 0.8, "B": 0.1}, 0.1)
	if got == nil || got.ID != "A" {
		t.Errorf("got %v, want A (B blocked at prereq == 0.8)", got)
	}
}

func TestRecommendNext_LowestMasteryWins(t *testing.T) {
	g, err := New([]Competency{
		{ID: "x", Name: "X"},
		{ID: "y", Name: "Y"},
		{ID: "z", Name: "Z"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := RecommendNext(g, map[string]float64{"x": 0.5, "y": 0.2, "z": 0.9}, 0.1)
	if got == nil || got.ID != "y" {
		t.Errorf("got %v, want y (lowest mastery)", got)
	}
}

func TestRecommendNext_TieKeepsFirstEncountered(t *testing.T) {
	g, err := New([]Competency{
		{ID: "x", Name: "X"},
		{ID: "y", Name: "Y"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := RecommendNext(g, map[string]float64{"x": 0.4, "y": 0.4}, 0.1)
	if got == nil || got.ID != "x" {
		t.Errorf("got %v, want x (first in insertion order)", got)
	}
}

func TestRecommendNext_MissingLevelUsesPrior(t *testing.T) {
	// No levels at all: roots qualify at the prior, dependents stay blocked.
	got := RecommendNext(chain(), map[string]float64{}, 0.1)
	if got == nil || got.ID != "A" {
		t.Errorf("got %v, want A", got)
	}
}
