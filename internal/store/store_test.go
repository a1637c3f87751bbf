package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest on empty store: %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot, got %+v", snap)
	}

	want := &Snapshot{
		Sequence:  7,
		Timestamp: time.Now(),
		Data: SnapshotData{
			Version: SnapshotVersion,
			Mastery: map[string]map[string]float64{
				"learner-1": {"note-basics": 0.42},
			},
		},
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	got, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot, got nil")
	}
	if got.Sequence != 7 {
		t.Errorf("sequence = %d, want 7", got.Sequence)
	}
	if got.Data.Mastery["learner-1"]["note-basics"] != 0.42 {
		t.Errorf("mastery round-trip failed: %+v", got.Data.Mastery)
	}
}

func TestAnswerStatsAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	answers := []AnswerEventData{
		{LearnerID: "l1", CompetencyID: "a", Correct: true, MasteryAfter: 0.33},
		{LearnerID: "l1", CompetencyID: "a", Correct: false, MasteryAfter: 0.25},
		{LearnerID: "l1", CompetencyID: "b", Correct: true, MasteryAfter: 0.50},
		{LearnerID: "l2", CompetencyID: "a", Correct: true, MasteryAfter: 0.90},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.AnswerStats(ctx, "l1")
	if err != nil {
		t.Fatalf("answer stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d competencies, want 2", len(stats))
	}

	// Sorted by competency ID.
	a := stats[0]
	if a.CompetencyID != "a" || a.Attempts != 2 || a.Correct != 1 {
		t.Errorf("stats for a = %+v", a)
	}
	if a.LastEstimate != 0.25 {
		t.Errorf("last estimate = %v, want 0.25 (latest event wins)", a.LastEstimate)
	}
	if a.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", a.Accuracy())
	}
}

func TestRecentStatesNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for _, st := range []string{"focused", "confused", "frustrated"} {
		if err := repo.AppendState(ctx, StateEventData{SessionID: "s1", State: st}); err != nil {
			t.Fatalf("append state: %v", err)
		}
	}

	states, err := repo.RecentStates(ctx, 2)
	if err != nil {
		t.Fatalf("recent states: %v", err)
	}
	if len(states) != 2 {
		t.Fatalf("got %d states, want 2", len(states))
	}
	if states[0].State != "frustrated" || states[1].State != "confused" {
		t.Errorf("got order %q, %q; want frustrated, confused", states[0].State, states[1].State)
	}
	if states[0].Sequence <= states[1].Sequence {
		t.Errorf("sequences not descending: %d, %d", states[0].Sequence, states[1].Sequence)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	if err := repo.AppendAnswer(ctx, AnswerEventData{LearnerID: "l1", CompetencyID: "a", Correct: true}); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendMastery(ctx, MasteryEventData{LearnerID: "l1", CompetencyID: "a", Estimate: 0.5, Trigger: "answer"}); err != nil {
		t.Fatalf("append mastery: %v", err)
	}
	if err := repo.AppendState(ctx, StateEventData{State: "focused"}); err != nil {
		t.Fatalf("append state: %v", err)
	}

	states, err := repo.RecentStates(ctx, 1)
	if err != nil {
		t.Fatalf("recent states: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("got %d states, want 1", len(states))
	}
	// Two prior events consumed sequences 1 and 2.
	if states[0].Sequence != 3 {
		t.Errorf("state sequence = %d, want 3", states[0].Sequence)
	}
}
