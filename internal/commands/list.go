package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/stats"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List logged workouts",
	Long:    "List workout sessions, newest first, with volume and duration",
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		var workouts []models.WorkoutSession
		if today, _ := cmd.Flags().GetBool("today"); today {
			workouts = store.TodayWorkouts()
		} else {
			workouts = store.Workouts()
		}

		if len(workouts) == 0 {
			fmt.Println("No workouts found. Use 'fittrack log' to record your first session.")
			return
		}

		// Print table header
		fmt.Printf("%-10s %-12s %-28s %-10s %-10s %s\n", "ID", "DATE", "TITLE", "EXERCISES", "VOLUME", "DURATION")
		fmt.Println(strings.Repeat("-", 80))

		for _, w := range workouts {
			fmt.Printf("%-10s %-12s %-28s %-10d %-10s %dm\n",
				shortID(w.ID),
				w.Date,
				truncate(w.Title, 26),
				len(w.Exercises),
				fmt.Sprintf("%.0f kg", stats.SessionVolume(w)),
				w.DurationMinutes)
		}
	}),
}

// shortID shows the first 8 characters of an id for display; any unique
// prefix is accepted back by 'fittrack rm'
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// truncate shortens a title to max display characters. Cuts on runes, not
// bytes, so multi-byte titles never end mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func init() {
	listCmd.Flags().BoolP("today", "t", false, "Show only today's workouts")
}
