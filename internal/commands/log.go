package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/parser"
	"github.com/fittrackdev/fittrack/internal/stats"
	"github.com/fittrackdev/fittrack/internal/tui"
)

var logCmd = &cobra.Command{
	Use:   "log [workout title]",
	Short: "Log a workout session",
	Long: `Log a workout session with its exercises.

Modes:
  Interactive: fittrack log (no exercise flags opens the form)
  Quick: fittrack log "Push Day" -e "Bench Press 3x10@60kg" -e "Dips 3x12"

Exercise shorthand:
  NAME SETSxREPS[@WEIGHT[kg|lbs]]
  "Bench Press 3x10@60kg", "Squat 5x5@225lbs", "Pull-ups 4x8"`,
	Args: cobra.ArbitraryArgs,
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		title := strings.Join(args, " ")
		exerciseLines, _ := cmd.Flags().GetStringArray("exercise")

		// No exercises on the command line means interactive entry
		if len(exerciseLines) == 0 {
			if err := tui.RunLogWorkoutTUI(store, title); err != nil {
				fmt.Printf("Error: %v\n", err)
			}
			return
		}

		if title == "" {
			fmt.Println("Error: workout title is required, e.g. fittrack log \"Push Day\" -e \"Bench Press 3x10@60kg\"")
			return
		}

		exercises, err := parser.ParseExercises(exerciseLines)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		dayFlag, _ := cmd.Flags().GetString("date")
		workoutDate, err := parser.ParseDay(dayFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		duration, _ := cmd.Flags().GetInt("duration")
		note, _ := cmd.Flags().GetString("note")

		session := models.WorkoutSession{
			ID:              models.NewID(),
			Date:            workoutDate,
			Title:           title,
			Exercises:       exercises,
			DurationMinutes: duration,
			Notes:           note,
			CreatedAt:       time.Now(),
		}
		if err := session.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := store.AddWorkout(session); err != nil {
			fmt.Printf("Error: failed to save workout: %v\n", err)
			return
		}

		fmt.Printf("💪 Logged \"%s\" for %s\n", session.Title, models.FormatDateShort(session.Date))
		fmt.Printf("  Exercises: %d\n", len(session.Exercises))
		fmt.Printf("  Volume: %.0f kg\n", stats.SessionVolume(session))
		fmt.Printf("  Duration: %dm\n", session.DurationMinutes)
	}),
}

func init() {
	logCmd.Flags().StringArrayP("exercise", "e", nil, "Exercise shorthand, repeatable: \"Bench Press 3x10@60kg\"")
	logCmd.Flags().IntP("duration", "d", 45, "Workout duration in minutes")
	logCmd.Flags().StringP("date", "", "", "Workout day: today, yesterday or YYYY-MM-DD")
	logCmd.Flags().StringP("note", "n", "", "Additional notes")
}
