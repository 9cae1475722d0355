package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jmsone/JeopardyTrainer-sub000/internal/session"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Jump straight into an anytime test",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, session.ModeAnytimeTest)
	},
}
