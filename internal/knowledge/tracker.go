package knowledge

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/abhisek/cognify/internal/store"
)

// Tracker owns the mastery estimates for one learner. It is the stateful
// wrapper around the pure BKT functions: callers feed it graded answers, it
// publishes updated estimates and records the audit trail through the event
// repo. The UI and recommender read from it; persistence is the store's job.
type Tracker struct {
	learnerID string
	levels    map[string]float64
	eventRepo store.EventRepo
}

// NewTracker creates a tracker for learnerID, restoring estimates from the
// snapshot if one is provided. eventRepo may be nil (no event logging).
func NewTracker(learnerID string, snap *store.SnapshotData, eventRepo store.EventRepo) *Tracker {
	t := &Tracker{
		learnerID: learnerID,
		levels:    make(map[string]float64),
		eventRepo: eventRepo,
	}
	if snap != nil && snap.Mastery != nil {
		for id, m := range snap.Mastery[learnerID] {
			t.levels[id] = m
		}
	}
	return t
}

// LearnerID returns the learner this tracker belongs to.
func (t *Tracker) LearnerID() string {
	return t.learnerID
}

// Level returns the current estimate for a competency, seeding the prior on
// first access.
func (t *Tracker) Level(competencyID string) float64 {
	if m, ok := t.levels[competencyID]; ok {
		return m
	}
	t.levels[competencyID] = PriorMastery
	return PriorMastery
}

// Levels returns a copy of all current estimates, keyed by competency ID.
func (t *Tracker) Levels() map[string]float64 {
	out := make(map[string]float64, len(t.levels))
	for id, m := range t.levels {
		out[id] = m
	}
	return out
}

// RecordAnswer folds one graded answer into the estimate for competencyID and
// returns the new value. The observation update is followed by a learning
// step, mirroring MasteryLevel one interaction at a time. Event logging is
// best-effort: a failed append warns on stderr and never fails the update.
func (t *Tracker) RecordAnswer(ctx context.Context, competencyID string, correct bool, timeMs int) float64 {
	before := t.Level(competencyID)
	after := ApplyLearning(UpdateKnowledge(before, correct))
	after = math.Min(after, 1)
	t.levels[competencyID] = after

	if t.eventRepo != nil {
		err := t.eventRepo.AppendAnswer(ctx, store.AnswerEventData{
			LearnerID:     t.learnerID,
			CompetencyID:  competencyID,
			Correct:       correct,
			TimeMs:        timeMs,
			MasteryBefore: before,
			MasteryAfter:  after,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log answer event: %v\n", err)
		}

		err = t.eventRepo.AppendMastery(ctx, store.MasteryEventData{
			LearnerID:    t.learnerID,
			CompetencyID: competencyID,
			Estimate:     after,
			Trigger:      "answer",
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to log mastery event: %v\n", err)
		}
	}

	return after
}

// Replay folds an ordered interaction sequence through RecordAnswer,
// returning the final estimates for the competencies touched.
func (t *Tracker) Replay(ctx context.Context, interactions []Interaction) map[string]float64 {
	touched := make(map[string]float64)
	for _, it := range interactions {
		touched[it.CompetencyID] = t.RecordAnswer(ctx, it.CompetencyID, it.Correct, it.TimeSpentMs)
	}
	return touched
}

// SnapshotData merges this tracker's estimates into a snapshot for
// persistence. Other learners' entries in base are preserved.
func (t *Tracker) SnapshotData(base *store.SnapshotData) *store.SnapshotData {
	snap := base
	if snap == nil {
		snap = &store.SnapshotData{Version: store.SnapshotVersion}
	}
	if snap.Mastery == nil {
		snap.Mastery = make(map[string]map[string]float64)
	}
	levels := make(map[string]float64, len(t.levels))
	for id, m := range t.levels {
		levels[id] = m
	}
	snap.Mastery[t.learnerID] = levels
	return snap
}
