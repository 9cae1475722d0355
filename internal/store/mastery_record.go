package store

import (
	"context"
	"fmt"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/categorymastery"
)

// masteryRepo implements MasteryRepo using the ent client.
type masteryRepo struct {
	client *ent.Client
}

func (r *masteryRepo) SaveCategoryMastery(ctx context.Context, data CategoryMasteryData) error {
	builder := r.client.CategoryMastery.Create().
		SetCategoryID(data.CategoryID).
		SetTotalCorrect(data.TotalCorrect).
		SetTotalAnswered(data.TotalAnswered).
		SetWeightedCorrectScore(data.WeightedCorrectScore).
		SetMasteryLevel(data.MasteryLevel)

	if data.LastAnswered != nil {
		builder = builder.SetLastAnswered(*data.LastAnswered)
	}

	err := builder.
		OnConflictColumns(categorymastery.FieldCategoryID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert category mastery: %w", err)
	}
	return nil
}

func (r *masteryRepo) GetCategoryMastery(ctx context.Context, categoryID string) (*CategoryMasteryData, error) {
	cm, err := r.client.CategoryMastery.Query().
		Where(categorymastery.CategoryID(categoryID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query category mastery: %w", err)
	}
	data := masteryData(cm)
	return &data, nil
}

func (r *masteryRepo) AllCategoryMastery(ctx context.Context) ([]CategoryMasteryData, error) {
	rows, err := r.client.CategoryMastery.Query().
		Order(ent.Asc(categorymastery.FieldCategoryID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query all category mastery: %w", err)
	}

	records := make([]CategoryMasteryData, len(rows))
	for i, cm := range rows {
		records[i] = masteryData(cm)
	}
	return records, nil
}

func masteryData(cm *ent.CategoryMastery) CategoryMasteryData {
	return CategoryMasteryData{
		CategoryID:           cm.CategoryID,
		TotalCorrect:         cm.TotalCorrect,
		TotalAnswered:        cm.TotalAnswered,
		WeightedCorrectScore: cm.WeightedCorrectScore,
		MasteryLevel:         cm.MasteryLevel,
		LastAnswered:         cm.LastAnswered,
	}
}
