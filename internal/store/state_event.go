package store

import (
	"context"
	"fmt"

	"github.com/abhisek/cognify/ent"
	"github.com/abhisek/cognify/ent/stateevent"
)

func (r *eventRepo) AppendState(ctx context.Context, data StateEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.StateEvent.Create().
		SetSequence(seqNum).
		SetState(data.State).
		SetScore(data.Score).
		SetRephraseCount(data.RephraseCount).
		SetBackspaceCount(data.BackspaceCount)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}
	if data.Facial != "" {
		builder = builder.SetFacial(data.Facial)
	}
	if data.Vocal != "" {
		builder = builder.SetVocal(data.Vocal)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save state event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentStates(ctx context.Context, limit int) ([]StateRecord, error) {
	events, err := r.client.StateEvent.Query().
		Order(ent.Desc(stateevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query state events: %w", err)
	}

	result := make([]StateRecord, 0, len(events))
	for _, e := range events {
		result = append(result, StateRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			State:     e.State,
			Score:     e.Score,
		})
	}
	return result, nil
}
