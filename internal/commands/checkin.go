package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fittrackdev/fittrack/internal/fitness"
	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/parser"
)

var moodFaces = []string{"", "😞", "😕", "😐", "🙂", "😄"}

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record a daily check-in",
	Long: `Record today's check-in: mood, energy, and optionally body weight.
Checking in twice on the same day replaces the earlier entry.

Examples:
  fittrack checkin -m 4 -e 7
  fittrack checkin -m 3 -e 5 -w 82.5
  fittrack checkin -m 5 -e 9 -w 180 --unit lbs --note "slept great"`,
	Run: withStore(func(cmd *cobra.Command, args []string, store *fitness.Store) {
		mood, _ := cmd.Flags().GetInt("mood")
		energy, _ := cmd.Flags().GetInt("energy")
		note, _ := cmd.Flags().GetString("note")
		unit, _ := cmd.Flags().GetString("unit")

		dayFlag, _ := cmd.Flags().GetString("date")
		day, err := parser.ParseDay(dayFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		checkIn := models.CheckIn{
			ID:         models.NewID(),
			Date:       day,
			WeightUnit: unit,
			Mood:       mood,
			Energy:     energy,
			Notes:      note,
			CreatedAt:  time.Now(),
		}
		if cmd.Flags().Changed("weight") {
			weight, _ := cmd.Flags().GetFloat64("weight")
			checkIn.Weight = &weight
		}

		if err := checkIn.Validate(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		replaced := false
		for _, c := range store.CheckIns() {
			if c.Date == checkIn.Date {
				replaced = true
				break
			}
		}

		if err := store.AddCheckIn(checkIn); err != nil {
			fmt.Printf("Error: failed to save check-in: %v\n", err)
			return
		}

		if replaced {
			fmt.Printf("📝 Updated check-in for %s\n", models.FormatDateShort(checkIn.Date))
		} else {
			fmt.Printf("📝 Checked in for %s\n", models.FormatDateShort(checkIn.Date))
		}
		fmt.Printf("  Mood: %s %d/5   Energy: %d/10\n", moodFaces[checkIn.Mood], checkIn.Mood, checkIn.Energy)
		if checkIn.Weight != nil {
			fmt.Printf("  Weight: %g %s\n", *checkIn.Weight, checkIn.WeightUnit)
		}
	}),
}

func init() {
	checkinCmd.Flags().IntP("mood", "m", 3, "Mood from 1 (low) to 5 (great)")
	checkinCmd.Flags().IntP("energy", "e", 5, "Energy from 1 (drained) to 10 (full)")
	checkinCmd.Flags().Float64P("weight", "w", 0, "Body weight (optional)")
	checkinCmd.Flags().String("unit", models.UnitKg, "Weight unit: kg or lbs")
	checkinCmd.Flags().StringP("note", "n", "", "Additional notes")
	checkinCmd.Flags().String("date", "", "Check-in day: today, yesterday or YYYY-MM-DD")
}
