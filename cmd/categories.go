package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List catalog categories with bank and mastery status",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		counts, err := st.QuestionRepo().CountByCategory(ctx)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		records, err := st.MasteryRepo().AllCategoryMastery(ctx)
		if err != nil {
			return fmt.Errorf("load mastery: %w", err)
		}
		mastery := make(map[string]store.CategoryMasteryData, len(records))
		for _, r := range records {
			mastery[r.CategoryID] = r
		}

		fmt.Printf("%-14s  %-24s  %9s  %8s  %s\n",
			"ID", "Name", "Questions", "Answered", "Mastery")
		fmt.Println(strings.Repeat("─", 70))

		var totalQuestions int
		for _, c := range catalog.AllCategories() {
			level := "-"
			answered := 0
			if m, ok := mastery[c.ID]; ok {
				level = m.MasteryLevel
				answered = m.TotalAnswered
			}
			fmt.Printf("%-14s  %-24s  %9d  %8d  %s\n",
				c.ID, c.Name, counts[c.ID], answered, level)
			totalQuestions += counts[c.ID]
		}

		fmt.Printf("\n%d categories, %d questions in the bank\n", catalog.Count(), totalQuestions)
		return nil
	},
}
