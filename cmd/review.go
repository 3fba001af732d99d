package cmd

import (
	"github.com/spf13/cobra"
)

var reviewCmd = &cobra.Command{
	Use:   "review [lecture files...]",
	Short: "Quiz items that are due for spaced repetition review",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args, startModeReview)
	},
}
