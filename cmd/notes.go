package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
)

const noteMissLimit = 5

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Generate a study note for a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		categoryID, _ := cmd.Flags().GetString("category")

		cat, err := catalog.GetCategory(categoryID)
		if err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		input := studynotes.NoteInput{Category: cat}

		answers, err := st.EventRepo().CategoryAnswers(ctx, cat.ID)
		if err != nil {
			return fmt.Errorf("load answer history: %w", err)
		}
		correct := 0
		for _, a := range answers {
			if a.Correct {
				correct++
			}
		}
		if len(answers) > 0 {
			input.Accuracy = float64(correct) / float64(len(answers))
		}
		// Most recent misses first, capped so the prompt stays small.
		for i := len(answers) - 1; i >= 0 && len(input.RecentMisses) < noteMissLimit; i-- {
			if answers[i].Correct {
				continue
			}
			if q, err := st.QuestionRepo().GetQuestion(ctx, answers[i].QuestionID); err == nil && q != nil {
				input.RecentMisses = append(input.RecentMisses, q.Prompt)
			}
		}
		if rec, err := st.MasteryRepo().GetCategoryMastery(ctx, cat.ID); err == nil && rec != nil {
			input.MasteryLevel = rec.MasteryLevel
		}

		fmt.Printf("Generating a study note for %s...\n\n", cat.Name)
		svc := studynotes.NewService(provider, studynotes.DefaultConfig())
		note, err := svc.Generate(ctx, input)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n\n%s\n\n", note.Title, note.Overview)
		for _, fact := range note.KeyFacts {
			fmt.Printf("  • %s\n", fact)
		}
		fmt.Printf("\nTry this one:\n  %s\n\n", note.PracticeQuestion.Prompt)
		fmt.Printf("Answer: %s\n", note.PracticeQuestion.Answer)
		if note.PracticeQuestion.Explanation != "" {
			fmt.Println(note.PracticeQuestion.Explanation)
		}
		return nil
	},
}

func init() {
	notesCmd.Flags().StringP("category", "c", "", "Category ID (see 'jeptrainer categories')")
	_ = notesCmd.MarkFlagRequired("category")
}
