package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
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
		repo := st.EventRepo()

		answers, err := repo.AnswersSince(ctx, time.Time{})
		if err != nil {
			return fmt.Errorf("load answers: %w", err)
		}
		sessions, err := repo.RecentSessions(ctx, 0)
		if err != nil {
			return fmt.Errorf("load sessions: %w", err)
		}
		attempts, err := repo.TestAttemptsSince(ctx, time.Time{})
		if err != nil {
			return fmt.Errorf("load test attempts: %w", err)
		}
		_, trophies, err := repo.AchievementCounts(ctx)
		if err != nil {
			return fmt.Errorf("load achievements: %w", err)
		}

		var correct int
		byMode := make(map[string]int)
		for _, a := range answers {
			if a.Correct {
				correct++
			}
			byMode[a.Mode]++
		}

		fmt.Printf("Questions answered: %d", len(answers))
		if len(answers) > 0 {
			fmt.Printf("  (%.0f%% correct)", float64(correct)/float64(len(answers))*100)
		}
		fmt.Println()
		fmt.Printf("Sessions finished:  %d\n", len(sessions))
		fmt.Printf("Anytime tests:      %d\n", len(attempts))
		fmt.Printf("Trophies earned:    %d\n", trophies)

		if len(byMode) > 0 {
			fmt.Println()
			fmt.Println("Answers by mode")
			fmt.Println(strings.Repeat("─", 30))
			for _, mode := range []string{"game", "rapid_fire", "anytime_test"} {
				if n, ok := byMode[mode]; ok {
					fmt.Printf("%-14s  %d\n", mode, n)
				}
			}
		}

		if len(attempts) > 0 {
			last := attempts[len(attempts)-1]
			fmt.Println()
			fmt.Printf("Last test: %d/%d (%.0f%%) on %s\n",
				last.CorrectCount, last.TotalQuestions, last.Accuracy*100,
				last.AttemptedAt.Local().Format("Jan 02, 2006"))
		}
		return nil
	},
}
