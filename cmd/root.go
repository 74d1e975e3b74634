package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unimind/unimind/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "unimind",
	Short: "Mental wellness self-assessment for students",
	Long:  "UniMind is a terminal app that helps university students check in on their mental wellness through a short guided assessment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides UNIMIND_DB env var)")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then UNIMIND_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
