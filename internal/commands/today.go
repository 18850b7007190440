package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/stats"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's workouts, check-in and streak",
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		streak := store.Streak()
		if streak.CurrentStreak > 0 {
			fmt.Printf("🔥 Current streak: %d day(s) (longest: %d)\n", streak.CurrentStreak, streak.LongestStreak)
		} else if streak.LongestStreak > 0 {
			fmt.Printf("🔥 No active streak (longest: %d)\n", streak.LongestStreak)
		}

		workouts := store.TodayWorkouts()
		if len(workouts) == 0 {
			fmt.Println("No workouts logged today.")
		} else {
			fmt.Printf("Workouts today (%d):\n", len(workouts))
			for _, w := range workouts {
				fmt.Printf("  💪 %s: %d exercises, %.0f kg, %dm\n",
					w.Title, len(w.Exercises), stats.SessionVolume(w), w.DurationMinutes)
			}
		}

		checkIn := store.TodayCheckIn()
		if checkIn == nil {
			fmt.Println("No check-in yet. Use 'fittrack checkin' to record one.")
			return
		}
		fmt.Printf("Check-in: mood %s %d/5, energy %d/10", moodFaces[checkIn.Mood], checkIn.Mood, checkIn.Energy)
		if checkIn.Weight != nil {
			fmt.Printf(", weight %g %s", *checkIn.Weight, checkIn.WeightUnit)
		}
		fmt.Println()
	}),
}
