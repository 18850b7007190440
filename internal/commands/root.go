package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/db"
	"github.com/fittrackdev/fittrack/internal/fitness"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "A CLI fitness tracker",
	Long: `fittrack is a command-line fitness tracker. Log workout sessions,
record daily check-ins, and follow your progress with streaks, weekly
volume and weight trend charts. All data stays on this machine.`,
}

// openStore opens the local database and loads the fitness store. The
// returned cleanup closes the database connection.
func openStore() (*fitness.Store, func(), error) {
	path, err := db.DefaultPath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve data path: %w", err)
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, nil, err
	}

	store := fitness.New(database)
	if err := store.Initialize(context.Background()); err != nil {
		database.Close()
		return nil, nil, err
	}

	return store, func() { database.Close() }, nil
}

// withStore wraps a command function, loading the store first
func withStore(fn func(*cobra.Command, []string, *fitness.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		store, cleanup, err := openStore()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer cleanup()
		fn(cmd, args, store)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fittrack %s (commit %s, built %s)\n", version, commit, date)
	},
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}
