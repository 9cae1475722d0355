package store

import (
	"context"
	"fmt"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/achievementevent"
)

func (r *eventRepo) AppendAchievementEvent(ctx context.Context, data AchievementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AchievementEvent.Create().
		SetSequence(seqNum).
		SetAchievementType(data.AchievementType).
		SetTier(data.Tier).
		SetSessionID(data.SessionID).
		SetReason(data.Reason)

	if data.CategoryID != nil {
		builder = builder.SetCategoryID(*data.CategoryID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save achievement event: %w", err)
	}
	return nil
}

func (r *eventRepo) AchievementCounts(ctx context.Context) (map[string]int, int, error) {
	events, err := r.client.AchievementEvent.Query().All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("query achievement counts: %w", err)
	}

	byType := make(map[string]int)
	for _, e := range events {
		byType[e.AchievementType]++
	}
	return byType, len(events), nil
}

func (r *eventRepo) RecentAchievements(ctx context.Context, limit int) ([]AchievementRecord, error) {
	q := r.client.AchievementEvent.Query().
		Order(ent.Desc(achievementevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent achievements: %w", err)
	}

	records := make([]AchievementRecord, 0, len(events))
	for _, e := range events {
		rec := AchievementRecord{
			AchievementType: e.AchievementType,
			Tier:            e.Tier,
			SessionID:       e.SessionID,
			Reason:          e.Reason,
			EarnedAt:        e.Timestamp,
		}
		if e.CategoryID != nil {
			rec.CategoryID = *e.CategoryID
		}
		records = append(records, rec)
	}
	return records, nil
}
