package cmd

import (
	"fmt"
	"os"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/achievements"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/app"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/llm"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/mastery"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/progress"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/readiness"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/jmsone/JeopardyTrainer-sub000/internal/studynotes"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// A non-empty startMode skips the welcome screen and opens that session
// directly.
func runApp(cmd *cobra.Command, startMode session.Mode) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	masterySvc := mastery.NewService(eventRepo, st.MasteryRepo())
	awards := achievements.NewService(eventRepo)

	opts := app.Options{
		EventRepo:    eventRepo,
		ScheduleRepo: st.ScheduleRepo(),
		QuestionRepo: st.QuestionRepo(),
		Progress:     progress.NewService(eventRepo, masterySvc, st.ScheduleRepo(), awards),
		Awards:       awards,
		Readiness:    readiness.NewService(eventRepo, st.ScheduleRepo(), st.QuestionRepo()),
		StartMode:    startMode,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Study notes will be unavailable.")
	} else {
		opts.Notes = studynotes.NewService(provider, studynotes.DefaultConfig())
	}

	return app.Run(opts)
}
