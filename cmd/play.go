package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a practice game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, session.ModeGame)
	},
}
