package cmd

import (
	"github.com/jmsone/JeopardyTrainer-sub000/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jeptrainer",
	Short: "Terminal trivia trainer",
	Long:  "JepTrainer is a terminal trivia trainer that builds broad recall across categories with spaced repetition and LLM-generated questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JEPTRAINER_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(readinessCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JEPTRAINER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
