package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/shailiguru/ssat-practice/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ssat",
	Short: "SSAT practice tests for kids",
	Long:  "Adaptive SSAT practice in the terminal: full-length tests, section practice, drills, and writing, for elementary and middle level students.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Optional .env file; missing is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SSAT_DB env var)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SSAT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
