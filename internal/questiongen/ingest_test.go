package questiongen

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// scriptedGenerator returns questions (or errors) in order.
type scriptedGenerator struct {
	outputs []*Question
	errs    []error
	calls   int
}

func (g *scriptedGenerator) Generate(_ context.Context, _ GenerateInput) (*Question, error) {
	i := g.calls
	g.calls++
	if i < len(g.errs) && g.errs[i] != nil {
		return nil, g.errs[i]
	}
	if i < len(g.outputs) {
		return g.outputs[i], nil
	}
	return nil, errors.New("script exhausted")
}

type memQuestionRepo struct {
	saved []store.QuestionData
}

func (m *memQuestionRepo) SaveQuestion(_ context.Context, data store.QuestionData) error {
	m.saved = append(m.saved, data)
	return nil
}

func (m *memQuestionRepo) GetQuestion(_ context.Context, _ string) (*store.QuestionData, error) {
	return nil, nil
}

func (m *memQuestionRepo) QuestionsByCategory(_ context.Context, categoryID string) ([]store.QuestionData, error) {
	var out []store.QuestionData
	for _, q := range m.saved {
		if q.CategoryID == categoryID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (m *memQuestionRepo) CountByCategory(_ context.Context) (map[string]int, error) {
	return nil, nil
}

func scriptedQuestion(n int) *Question {
	q := validQuestion()
	q.ID = fmt.Sprintf("q-%d", n)
	q.Prompt = fmt.Sprintf("Question number %d?", n)
	return q
}

func TestStock_GeneratesRequestedCount(t *testing.T) {
	gen := &scriptedGenerator{outputs: []*Question{scriptedQuestion(1), scriptedQuestion(2), scriptedQuestion(3)}}
	repo := &memQuestionRepo{}
	ing := NewIngestor(gen, repo)

	res, err := ing.Stock(context.Background(), testCategory(), DifficultyMedium, 3)
	if err != nil {
		t.Fatalf("Stock: %v", err)
	}
	if res.Generated != 3 {
		t.Errorf("Generated = %d, want 3", res.Generated)
	}
	if len(repo.saved) != 3 {
		t.Errorf("saved %d questions, want 3", len(repo.saved))
	}
	if repo.saved[0].Explanation == "" {
		t.Error("explanation should be persisted")
	}
}

func TestStock_SkipsDuplicatePrompts(t *testing.T) {
	dup := scriptedQuestion(1)
	gen := &scriptedGenerator{outputs: []*Question{scriptedQuestion(1), dup, scriptedQuestion(2)}}
	repo := &memQuestionRepo{}
	ing := NewIngestor(gen, repo)

	res, err := ing.Stock(context.Background(), testCategory(), DifficultyMedium, 2)
	if err != nil {
		t.Fatalf("Stock: %v", err)
	}
	if res.Generated != 2 {
		t.Errorf("Generated = %d, want 2", res.Generated)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1 duplicate", res.Skipped)
	}
	if len(repo.saved) != 2 {
		t.Errorf("saved %d questions, want 2", len(repo.saved))
	}
}

func TestStock_ToleratesGenerationFailures(t *testing.T) {
	gen := &scriptedGenerator{
		outputs: []*Question{nil, scriptedQuestion(1)},
		errs:    []error{errors.New("validator rejected"), nil},
	}
	repo := &memQuestionRepo{}
	ing := NewIngestor(gen, repo)

	res, err := ing.Stock(context.Background(), testCategory(), DifficultyEasy, 1)
	if err != nil {
		t.Fatalf("Stock: %v", err)
	}
	if res.Generated != 1 || res.Skipped != 1 {
		t.Errorf("Generated/Skipped = %d/%d, want 1/1", res.Generated, res.Skipped)
	}
}

func TestStock_AbortsOnPersistentFailure(t *testing.T) {
	gen := &scriptedGenerator{
		errs: []error{
			errors.New("bad"), errors.New("bad"), errors.New("bad"),
			errors.New("bad"), errors.New("bad"), errors.New("bad"),
		},
	}
	ing := NewIngestor(gen, &memQuestionRepo{})

	_, err := ing.Stock(context.Background(), testCategory(), DifficultyEasy, 2)
	if err == nil {
		t.Fatal("expected error after repeated rejections")
	}
}
