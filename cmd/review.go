package cmd

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/catalog"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Show questions due for spaced-repetition review",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		showAll, _ := cmd.Flags().GetBool("all")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		schedules, err := st.ScheduleRepo().AllSchedules(ctx)
		if err != nil {
			return fmt.Errorf("load schedules: %w", err)
		}
		if len(schedules) == 0 {
			fmt.Println("No reviews scheduled yet. Answer some questions first.")
			return nil
		}

		sort.Slice(schedules, func(i, j int) bool {
			return schedules[i].NextReview.Before(schedules[j].NextReview)
		})

		now := time.Now()
		due := 0
		for _, s := range schedules {
			if !now.Before(s.NextReview) {
				due++
			}
		}

		if due == 0 {
			fmt.Println("Nothing due for review right now.")
		} else {
			fmt.Printf("%d question(s) due for review:\n\n", due)
		}

		fmt.Printf("%-14s  %-48s  %5s  %s\n", "Category", "Question", "Reps", "Due")
		for _, s := range schedules {
			dueNow := !now.Before(s.NextReview)
			if !dueNow && !showAll {
				continue
			}
			prompt := "(question removed)"
			if q, err := st.QuestionRepo().GetQuestion(ctx, s.QuestionID); err == nil && q != nil {
				prompt = q.Prompt
			}
			name := s.CategoryID
			if cat, err := catalog.GetCategory(s.CategoryID); err == nil {
				name = cat.Name
			}
			fmt.Printf("%-14s  %-48s  %5d  %s\n",
				truncate(name, 14), truncate(prompt, 48), s.Repetitions, dueLabel(now, s.NextReview))
		}

		if !showAll && due < len(schedules) {
			fmt.Printf("\n%d more scheduled. Use --all to see them.\n", len(schedules)-due)
		}
		return nil
	},
}

// dueLabel renders when a review falls due, relative to now.
func dueLabel(now, next time.Time) string {
	if !now.Before(next) {
		return "now"
	}
	days := int(math.Ceil(next.Sub(now).Hours() / 24))
	if days == 1 {
		return "in 1 day"
	}
	return fmt.Sprintf("in %d days", days)
}

func init() {
	reviewCmd.Flags().Bool("all", false, "Include reviews that are not due yet")
}
