package cmd

import (
	"github.com/abhisek/cognify/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cognify",
	Short: "Mastery estimation and cognitive-state engine",
	Long: "Cognify — the adaptive-learning core of the study platform: Bayesian\n" +
		"Knowledge Tracing over a competency graph, plus a cognitive-state engine\n" +
		"fusing facial, vocal, and typing-friction signals.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COGNIFY_DB env var)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COGNIFY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore resolves the database path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
