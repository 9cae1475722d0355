package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetCategoryID(data.CategoryID).
		SetMode(data.Mode).
		SetCorrect(data.Correct).
		SetTimeSpentSecs(data.TimeSpentSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) CategoryAnswers(ctx context.Context, categoryID string) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.CategoryID(categoryID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query category answers: %w", err)
	}
	return answerRecords(events), nil
}

func (r *eventRepo) AnswersSince(ctx context.Context, since time.Time) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(answerevent.TimestampGTE(since)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers since: %w", err)
	}
	return answerRecords(events), nil
}

func (r *eventRepo) AnswersByMode(ctx context.Context, mode string, since time.Time) ([]AnswerRecord, error) {
	events, err := r.client.AnswerEvent.Query().
		Where(
			answerevent.Mode(mode),
			answerevent.TimestampGTE(since),
		).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers by mode: %w", err)
	}
	return answerRecords(events), nil
}

func (r *eventRepo) LatestAnswerTime(ctx context.Context, categoryID string) (time.Time, error) {
	ae, err := r.client.AnswerEvent.Query().
		Where(answerevent.CategoryID(categoryID)).
		Order(ent.Desc(answerevent.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("query latest answer time: %w", err)
	}
	return ae.Timestamp, nil
}

func answerRecords(events []*ent.AnswerEvent) []AnswerRecord {
	records := make([]AnswerRecord, len(events))
	for i, e := range events {
		records[i] = AnswerRecord{
			QuestionID:    e.QuestionID,
			CategoryID:    e.CategoryID,
			Mode:          e.Mode,
			Correct:       e.Correct,
			TimeSpentSecs: e.TimeSpentSecs,
			AnsweredAt:    e.Timestamp,
			Sequence:      e.Sequence,
		}
	}
	return records
}
