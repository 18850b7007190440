package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fittrackdev/fittrack/internal/models"
)

var streakNow = time.Date(2025, 6, 15, 18, 30, 0, 0, time.Local)

// daysAgo returns the date n days before the pinned test clock
func daysAgo(n int) string {
	return models.DateOf(streakNow.AddDate(0, 0, -n))
}

func workoutsOn(dates ...string) []models.WorkoutSession {
	var out []models.WorkoutSession
	for _, d := range dates {
		out = append(out, makeWorkout(d, makeExercise(3, 10, 60, models.UnitKg)))
	}
	return out
}

func TestComputeStreak_NoWorkouts(t *testing.T) {
	info := ComputeStreak(nil, streakNow)
	assert.Zero(t, info.CurrentStreak)
	assert.Zero(t, info.LongestStreak)
	assert.Empty(t, info.LastWorkoutDate)
}

func TestComputeStreak_ThreeConsecutiveDays(t *testing.T) {
	info := ComputeStreak(workoutsOn(daysAgo(0), daysAgo(1), daysAgo(2)), streakNow)
	assert.Equal(t, 3, info.CurrentStreak)
	assert.GreaterOrEqual(t, info.LongestStreak, 3)
	assert.Equal(t, daysAgo(0), info.LastWorkoutDate)
}

func TestComputeStreak_StartsYesterday(t *testing.T) {
	info := ComputeStreak(workoutsOn(daysAgo(1), daysAgo(2)), streakNow)
	assert.Equal(t, 2, info.CurrentStreak)
}

func TestComputeStreak_GapBreaksRun(t *testing.T) {
	info := ComputeStreak(workoutsOn(daysAgo(0), daysAgo(1), daysAgo(5)), streakNow)
	assert.Equal(t, 2, info.CurrentStreak)
	assert.Equal(t, 2, info.LongestStreak)
}

func TestComputeStreak_StaleActivity(t *testing.T) {
	// Last workout three days ago: no current streak, but the historical
	// four-day run still counts as longest.
	info := ComputeStreak(workoutsOn(daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(6)), streakNow)
	assert.Zero(t, info.CurrentStreak)
	assert.Equal(t, 4, info.LongestStreak)
	assert.Equal(t, daysAgo(3), info.LastWorkoutDate)
}

func TestComputeStreak_DuplicateDatesCountOnce(t *testing.T) {
	info := ComputeStreak(workoutsOn(daysAgo(0), daysAgo(0), daysAgo(1)), streakNow)
	assert.Equal(t, 2, info.CurrentStreak)
	assert.Equal(t, 2, info.LongestStreak)
}

func TestComputeStreak_OldRunLongerThanCurrent(t *testing.T) {
	dates := []string{daysAgo(0), daysAgo(1)}
	for n := 10; n <= 14; n++ {
		dates = append(dates, daysAgo(n))
	}
	info := ComputeStreak(workoutsOn(dates...), streakNow)
	assert.Equal(t, 2, info.CurrentStreak)
	assert.Equal(t, 5, info.LongestStreak)
}

func TestComputeStreak_SingleWorkoutToday(t *testing.T) {
	info := ComputeStreak(workoutsOn(daysAgo(0)), streakNow)
	assert.Equal(t, 1, info.CurrentStreak)
	assert.Equal(t, 1, info.LongestStreak)
}
