package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot format version.
const SnapshotVersion = 1

// SnapshotData captures persisted learner state at a point in time.
// Mastery estimates are keyed by learner ID, then competency ID.
type SnapshotData struct {
	Version int                           `json:"version"`
	Mastery map[string]map[string]float64 `json:"mastery,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AnswerEventData captures one graded answer and the mastery movement it
// caused.
type AnswerEventData struct {
	LearnerID     string
	CompetencyID  string
	Correct       bool
	TimeMs        int
	MasteryBefore float64
	MasteryAfter  float64
}

// MasteryEventData records a published mastery estimate for audit/analytics.
type MasteryEventData struct {
	LearnerID    string
	CompetencyID string
	Estimate     float64
	Trigger      string
}

// StateEventData records a cognitive state change with the signals behind it.
type StateEventData struct {
	SessionID      string
	State          string
	Score          int
	Facial         string
	Vocal          string
	RephraseCount  int
	BackspaceCount int
}

// StateRecord is a persisted state change as read back for display.
type StateRecord struct {
	Sequence  int64
	Timestamp time.Time
	State     string
	Score     int
}

// CompetencyStats aggregates answer history for one competency.
type CompetencyStats struct {
	CompetencyID string
	Attempts     int
	Correct      int
	LastEstimate float64
}

// Accuracy returns the correct/attempts ratio, or 0 with no attempts.
func (s CompetencyStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswer records a graded answer event.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// AppendMastery records a mastery estimate event.
	AppendMastery(ctx context.Context, data MasteryEventData) error

	// AppendState records a cognitive state change event.
	AppendState(ctx context.Context, data StateEventData) error

	// RecentStates returns the most recent state changes, newest first.
	RecentStates(ctx context.Context, limit int) ([]StateRecord, error)

	// AnswerStats aggregates answer history per competency for a learner.
	AnswerStats(ctx context.Context, learnerID string) ([]CompetencyStats, error)
}
