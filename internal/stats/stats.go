// Package stats holds the pure derivation logic: volume totals, weekly
// aggregation buckets, the body-weight trend series, and streak computation.
// Every function takes a snapshot and a clock value and has no side effects.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/fittrackdev/fittrack/internal/models"
)

// LbsPerKg converts pound-denominated weights to kilograms
const LbsPerKg = 2.205

const (
	candidateWeeks = 8 // trailing windows computed
	displayWeeks   = 6 // most recent windows kept
	trendPoints    = 12
)

// WeeklyStats aggregates the sessions falling inside one trailing week window
type WeeklyStats struct {
	WeekLabel     string  `json:"weekLabel"`
	SessionCount  int     `json:"sessionCount"`
	TotalVolume   float64 `json:"totalVolume"`   // kg, rounded
	TotalDuration int     `json:"totalDuration"` // minutes
}

// TrendPoint is one entry of the body-weight trend series, always in kg
type TrendPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
	Label    string  `json:"label"`
}

// WeightKg normalizes a weight to kilograms
func WeightKg(weight float64, unit string) float64 {
	if unit == models.UnitLbs {
		return weight / LbsPerKg
	}
	return weight
}

// ExerciseVolume returns sets x reps x weight for one exercise, in kg
func ExerciseVolume(ex models.Exercise) float64 {
	return float64(ex.Sets*ex.Reps) * WeightKg(ex.Weight, ex.WeightUnit)
}

// SessionVolume returns the summed volume of all exercises in a session
func SessionVolume(w models.WorkoutSession) float64 {
	var total float64
	for _, ex := range w.Exercises {
		total += ExerciseVolume(ex)
	}
	return total
}

// TotalVolume returns the summed volume across all sessions
func TotalVolume(workouts []models.WorkoutSession) float64 {
	var total float64
	for _, w := range workouts {
		total += SessionVolume(w)
	}
	return total
}

// WeeklyBuckets aggregates sessions into trailing week windows anchored on
// now's calendar day: window i spans (now - i*7 days) at local midnight
// through six days later, 23:59:59.999. Eight windows are computed and the
// most recent six returned, oldest first.
func WeeklyBuckets(workouts []models.WorkoutSession, now time.Time) []WeeklyStats {
	weeks := make([]WeeklyStats, 0, candidateWeeks)

	for i := candidateWeeks - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i*7)
		weekStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		// Build the end from calendar components: midnight plus 24h would
		// spill into the next day when DST makes the last day 23 hours long.
		last := weekStart.AddDate(0, 0, 6)
		weekEnd := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 999e6, last.Location())

		var bucket WeeklyStats
		bucket.WeekLabel = weekStart.Format("Jan 2")
		for _, w := range workouts {
			d, err := models.ParseDate(w.Date)
			if err != nil {
				continue
			}
			if d.Before(weekStart) || d.After(weekEnd) {
				continue
			}
			bucket.SessionCount++
			bucket.TotalVolume += SessionVolume(w)
			bucket.TotalDuration += w.DurationMinutes
		}
		bucket.TotalVolume = math.Round(bucket.TotalVolume)
		weeks = append(weeks, bucket)
	}

	return weeks[len(weeks)-displayWeeks:]
}

// WeightTrend builds the body-weight series: check-ins with a recorded
// weight, sorted ascending by date, trimmed to the most recent twelve,
// normalized to kg.
func WeightTrend(checkIns []models.CheckIn) []TrendPoint {
	var withWeight []models.CheckIn
	for _, c := range checkIns {
		if c.Weight != nil {
			withWeight = append(withWeight, c)
		}
	}
	sort.Slice(withWeight, func(i, j int) bool {
		return withWeight[i].Date < withWeight[j].Date
	})
	if len(withWeight) > trendPoints {
		withWeight = withWeight[len(withWeight)-trendPoints:]
	}

	points := make([]TrendPoint, 0, len(withWeight))
	for _, c := range withWeight {
		points = append(points, TrendPoint{
			Date:     c.Date,
			WeightKg: WeightKg(*c.Weight, c.WeightUnit),
			Label:    models.FormatDateShort(c.Date),
		})
	}
	return points
}

// AverageMood returns the mean mood across all check-ins, 0 when there are none
func AverageMood(checkIns []models.CheckIn) float64 {
	if len(checkIns) == 0 {
		return 0
	}
	var sum int
	for _, c := range checkIns {
		sum += c.Mood
	}
	return float64(sum) / float64(len(checkIns))
}
