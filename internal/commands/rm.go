package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
)

var rmCmd = &cobra.Command{
	Use:   "rm [workout-id]",
	Short: "Delete a workout session",
	Long:  "Delete a workout by its ID. Any unique ID prefix from 'fittrack ls' works.",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		workout, err := resolveWorkout(store.Workouts(), args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		if err := store.RemoveWorkout(workout.ID); err != nil {
			fmt.Printf("Error: failed to delete workout: %v\n", err)
			return
		}

		fmt.Printf("🗑️  Deleted \"%s\" (%s)\n", workout.Title, workout.Date)
	}),
}

// resolveWorkout finds the session whose id matches the given full id or
// unique prefix
func resolveWorkout(workouts []models.WorkoutSession, ref string) (*models.WorkoutSession, error) {
	var matches []models.WorkoutSession
	for _, w := range workouts {
		if w.ID == ref {
			return &w, nil
		}
		if strings.HasPrefix(w.ID, ref) {
			matches = append(matches, w)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no workout found with id %q", ref)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("id %q is ambiguous, matches %d workouts", ref, len(matches))
	}
}
