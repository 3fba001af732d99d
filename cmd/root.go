package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/lectio/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lectio [lecture files...]",
	Short: "Adaptive lecture player",
	Long: "Lectio — terminal lecture player with confidence-wagered questions,\n" +
		"spaced repetition, and AI-driven misconception remediation.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args, startModeHome)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LECTIO_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner ID (overrides LECTIO_LEARNER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LECTIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveLearnerID returns the learner ID from --learner, then the
// LECTIO_LEARNER env var, then "default".
func resolveLearnerID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("learner"); id != "" {
		return id
	}
	if id := os.Getenv("LECTIO_LEARNER"); id != "" {
		return id
	}
	return "default"
}
