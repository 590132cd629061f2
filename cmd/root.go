package cmd

import (
	"github.com/priyali/arithma/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "arithma",
	Short: "Knowledge-tracing engine for adaptive arithmetic practice",
	Long: "Arithma estimates, per skill, the probability a learner has mastered it,\n" +
		"from a recorded stream of practice attempts. Record attempts as they\n" +
		"happen, then run `arithma insights` to see which skills are weak,\n" +
		"developing, or strong.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ARITHMA_DB env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(priorsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ARITHMA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openRepo opens the store at the resolved path and returns its event repo
// with a cleanup func.
func openRepo(cmd *cobra.Command) (store.EventRepo, func(), error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, nil, err
	}
	repo, err := s.EventRepo()
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return repo, func() { s.Close() }, nil
}
