package store

import (
	"context"
	"fmt"

	"github.com/jmsone/JeopardyTrainer-sub000/ent"
	"github.com/jmsone/JeopardyTrainer-sub000/ent/question"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) SaveQuestion(ctx context.Context, data QuestionData) error {
	err := r.client.Question.Create().
		SetQuestionID(data.QuestionID).
		SetCategoryID(data.CategoryID).
		SetPrompt(data.Prompt).
		SetAnswer(data.Answer).
		SetChoices(data.Choices).
		SetDifficulty(data.Difficulty).
		SetExplanation(data.Explanation).
		SetSource(data.Source).
		OnConflictColumns(question.FieldQuestionID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert question: %w", err)
	}
	return nil
}

func (r *questionRepo) GetQuestion(ctx context.Context, questionID string) (*QuestionData, error) {
	q, err := r.client.Question.Query().
		Where(question.QuestionID(questionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query question: %w", err)
	}
	data := questionData(q)
	return &data, nil
}

func (r *questionRepo) QuestionsByCategory(ctx context.Context, categoryID string) ([]QuestionData, error) {
	rows, err := r.client.Question.Query().
		Where(question.CategoryID(categoryID)).
		Order(ent.Asc(question.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions by category: %w", err)
	}

	records := make([]QuestionData, len(rows))
	for i, q := range rows {
		records[i] = questionData(q)
	}
	return records, nil
}

func (r *questionRepo) CountByCategory(ctx context.Context) (map[string]int, error) {
	rows, err := r.client.Question.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query question counts: %w", err)
	}

	counts := make(map[string]int)
	for _, q := range rows {
		counts[q.CategoryID]++
	}
	return counts, nil
}

func questionData(q *ent.Question) QuestionData {
	return QuestionData{
		QuestionID:  q.QuestionID,
		CategoryID:  q.CategoryID,
		Prompt:      q.Prompt,
		Answer:      q.Answer,
		Choices:     q.Choices,
		Difficulty:  q.Difficulty,
		Explanation: q.Explanation,
		Source:      q.Source,
	}
}
