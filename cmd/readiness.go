package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Show the current quiz-show readiness score",
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

		svc := readiness.NewService(st.EventRepo(), st.ScheduleRepo(), st.QuestionRepo())
		score, err := svc.Compute(context.Background(), time.Now())
		if err != nil {
			return fmt.Errorf("compute readiness: %w", err)
		}

		fmt.Printf("Readiness: %.0f / 100   Grade %s\n", score.OverallScore, score.LetterGrade)
		if score.TestReady {
			fmt.Println("Test ready: a recent strong test attempt backs this score.")
		} else {
			fmt.Println("Not test ready yet: take an anytime test with a strong result.")
		}

		fmt.Println()
		fmt.Println("Components")
		fmt.Println(strings.Repeat("─", 60))
		for _, c := range score.Components {
			fmt.Printf("%-18s  %5.1f  (weight %.0f%%)  %s\n",
				c.Name, c.Score, c.Weight*100, c.Description)
		}

		b := score.Breadth
		fmt.Println()
		fmt.Printf("Breadth: %d/%d categories covered (need %d), factor %.2f\n",
			b.CoveredCategories, b.TotalCategories, b.RequiredCategories, b.BreadthFactor)

		if len(score.Weak) > 0 {
			fmt.Println()
			fmt.Println("Needs work")
			fmt.Println(strings.Repeat("─", 60))
			for _, w := range score.Weak {
				if w.Answered == 0 {
					fmt.Printf("%-24s  not yet practiced\n", w.Name)
					continue
				}
				fmt.Printf("%-24s  %d/%d correct (%.0f%%)\n",
					w.Name, w.Correct, w.Answered, w.Accuracy*100)
			}
		}
		return nil
	},
}
