package questiongen

import (
	"context"
	"fmt"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

// Ingestor generates questions for a category and persists them.
type Ingestor struct {
	generator Generator
	questions store.QuestionRepo
}

// NewIngestor creates an Ingestor over a generator and question store.
func NewIngestor(generator Generator, questions store.QuestionRepo) *Ingestor {
	return &Ingestor{generator: generator, questions: questions}
}

// IngestResult summarizes one ingest run.
type IngestResult struct {
	Generated int
	Skipped   int // duplicates and validation rejections
}

// Stock generates up to count questions for a category at the given
// difficulty and saves the ones that pass validation. Prompts already in
// the store seed the dedup list. Individual generation failures are
// counted, not fatal; the run only aborts on store errors or context
// cancellation.
func (in *Ingestor) Stock(ctx context.Context, cat catalog.Category, difficulty Difficulty, count int) (IngestResult, error) {
	existing, err := in.questions.QuestionsByCategory(ctx, cat.ID)
	if err != nil {
		return IngestResult{}, fmt.Errorf("loading existing questions: %w", err)
	}

	prior := make([]string, 0, len(existing)+count)
	known := make(map[string]bool, len(existing))
	for _, q := range existing {
		prior = append(prior, q.Prompt)
		known[normalizeAnswer(q.Prompt)] = true
	}

	var res IngestResult
	for res.Generated < count {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		q, err := in.generator.Generate(ctx, GenerateInput{
			Category:       cat,
			Difficulty:     difficulty,
			PriorQuestions: prior,
		})
		if err != nil {
			res.Skipped++
			if res.Skipped > count*2 {
				return res, fmt.Errorf("too many rejected generations for %s: last error: %w", cat.ID, err)
			}
			continue
		}

		if known[normalizeAnswer(q.Prompt)] {
			res.Skipped++
			prior = append(prior, q.Prompt)
			continue
		}

		if err := in.questions.SaveQuestion(ctx, store.QuestionData{
			QuestionID:  q.ID,
			CategoryID:  q.CategoryID,
			Prompt:      q.Prompt,
			Answer:      q.Answer,
			Choices:     q.Choices,
			Difficulty:  string(q.Difficulty),
			Explanation: q.Explanation,
			Source:      q.Source,
		}); err != nil {
			return res, fmt.Errorf("saving question: %w", err)
		}

		known[normalizeAnswer(q.Prompt)] = true
		prior = append(prior, q.Prompt)
		res.Generated++
	}
	return res, nil
}
