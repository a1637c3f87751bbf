package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/cognify/ent"
	"github.com/abhisek/cognify/ent/answerevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetLearnerID(data.LearnerID).
		SetCompetencyID(data.CompetencyID).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetMasteryBefore(data.MasteryBefore).
		SetMasteryAfter(data.MasteryAfter).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context, learnerID string) ([]CompetencyStats, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.LearnerID(learnerID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	byCompetency := make(map[string]*CompetencyStats)
	for _, e := range events {
		cs, ok := byCompetency[e.CompetencyID]
		if !ok {
			cs = &CompetencyStats{CompetencyID: e.CompetencyID}
			byCompetency[e.CompetencyID] = cs
		}
		cs.Attempts++
		if e.Correct {
			cs.Correct++
		}
		// Events arrive in sequence order, so the last write wins.
		cs.LastEstimate = e.MasteryAfter
	}

	result := make([]CompetencyStats, 0, len(byCompetency))
	for _, cs := range byCompetency {
		result = append(result, *cs)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CompetencyID < result[j].CompetencyID
	})
	return result, nil
}
