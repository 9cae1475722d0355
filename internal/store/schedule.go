package store

import (
	"context"
	"fmt"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/reviewschedule"
)

// scheduleRepo implements ScheduleRepo using the ent client.
type scheduleRepo struct {
	client *ent.Client
}

func (r *scheduleRepo) SaveSchedule(ctx context.Context, data ScheduleData) error {
	builder := r.client.ReviewSchedule.Create().
		SetQuestionID(data.QuestionID).
		SetCategoryID(data.CategoryID).
		SetEaseFactor(data.EaseFactor).
		SetIntervalDays(data.IntervalDays).
		SetRepetitions(data.Repetitions).
		SetNextReview(data.NextReview)

	if data.LastReviewed != nil {
		builder = builder.SetLastReviewed(*data.LastReviewed)
	}

	err := builder.
		OnConflictColumns(reviewschedule.FieldQuestionID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert review schedule: %w", err)
	}
	return nil
}

func (r *scheduleRepo) GetSchedule(ctx context.Context, questionID string) (*ScheduleData, error) {
	rs, err := r.client.ReviewSchedule.Query().
		Where(reviewschedule.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query review schedule: %w", err)
	}
	data := scheduleData(rs)
	return &data, nil
}

func (r *scheduleRepo) AllSchedules(ctx context.Context) ([]ScheduleData, error) {
	rows, err := r.client.ReviewSchedule.Query().
		Order(ent.Asc(reviewschedule.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all review schedules: %w", err)
	}

	records := make([]ScheduleData, len(rows))
	for i, rs := range rows {
		records[i] = scheduleData(rs)
	}
	return records, nil
}

func scheduleData(rs *ent.ReviewSchedule) ScheduleData {
	return ScheduleData{
		QuestionID:   rs.QuestionID,
		CategoryID:   rs.CategoryID,
		EaseFactor:   rs.EaseFactor,
		IntervalDays: rs.IntervalDays,
		Repetitions:  rs.Repetitions,
		NextReview:   rs.NextReview,
		LastReviewed: rs.LastReviewed,
	}
}
