package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/testattemptevent"
)

func (r *eventRepo) AppendTestAttempt(ctx context.Context, data TestAttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TestAttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectCount(data.CorrectCount).
		SetAccuracy(data.Accuracy).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save test attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) TestAttemptsSince(ctx context.Context, since time.Time) ([]TestAttemptRecord, error) {
	events, err := r.client.TestAttemptEvent.Query().
		Where(testattemptevent.TimestampGTE(since)).
		Order(ent.Asc(testattemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test attempts: %w", err)
	}

	records := make([]TestAttemptRecord, len(events))
	for i, e := range events {
		records[i] = TestAttemptRecord{
			SessionID:      e.SessionID,
			TotalQuestions: e.TotalQuestions,
			CorrectCount:   e.CorrectCount,
			Accuracy:       e.Accuracy,
			DurationSecs:   e.DurationSecs,
			AttemptedAt:    e.Timestamp,
		}
	}
	return records, nil
}
