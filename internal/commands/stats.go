package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/stats"
	"github.com/fittrackdev/fittrack/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress statistics",
	Long:  "Show streaks, weekly session and volume charts, and the body-weight trend",
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		workouts := store.Workouts()
		checkIns := store.CheckIns()

		if len(workouts) == 0 && len(checkIns) == 0 {
			fmt.Println("Nothing to show yet. Log a workout or a check-in first.")
			return
		}

		streak := store.Streak()
		fmt.Println(tui.RenderStreak(streak))

		if len(workouts) > 0 {
			weeks := stats.WeeklyBuckets(workouts, time.Now())
			fmt.Println(tui.RenderWeeklyChart(weeks))
			fmt.Printf("All time: %d sessions, %.0f kg total volume\n\n",
				len(workouts), stats.TotalVolume(workouts))
		}

		trend := stats.WeightTrend(checkIns)
		if len(trend) > 0 {
			fmt.Println(tui.RenderWeightTrend(trend))
		}

		if len(checkIns) > 0 {
			fmt.Printf("Check-ins: %d total, average mood %.1f/5\n", len(checkIns), stats.AverageMood(checkIns))
			fmt.Println("Recent:")
			for i, c := range checkIns {
				if i == 5 {
					break
				}
				fmt.Printf("  %s  %s %d/5, energy %d/10", models.FormatDateShort(c.Date), moodFaces[c.Mood], c.Mood, c.Energy)
				if c.Weight != nil {
					fmt.Printf(", %g %s", *c.Weight, c.WeightUnit)
				}
				fmt.Println()
			}
		}
	}),
}
