package stats

import (
	"sort"
	"time"

	"github.com/fittrackdev/fittrack/internal/models"
)

// ComputeStreak derives the consecutive-active-day streaks from the workout
// collection. Multiple sessions on one date count as a single active day,
// and dates compare as calendar days, so time of day never matters.
//
// The current streak only runs while the most recent active date is today or
// yesterday relative to now; older activity leaves it at zero no matter how
// long the last run was. The longest streak is the best consecutive run
// anywhere in history.
func ComputeStreak(workouts []models.WorkoutSession, now time.Time) models.StreakInfo {
	dates := distinctDatesDesc(workouts)
	if len(dates) == 0 {
		return models.StreakInfo{}
	}

	today := models.DateOf(now)
	yesterday := models.DateOf(now.AddDate(0, 0, -1))

	currentStreak := 0
	if dates[0] == today || dates[0] == yesterday {
		currentStreak = 1
		for i := 1; i < len(dates); i++ {
			if !consecutive(dates[i-1], dates[i]) {
				break
			}
			currentStreak++
		}
	}

	longestStreak := 0
	runLength := 1
	for i := 1; i < len(dates); i++ {
		if consecutive(dates[i-1], dates[i]) {
			runLength++
			if runLength > longestStreak {
				longestStreak = runLength
			}
		} else {
			runLength = 1
		}
	}
	longestStreak = max(longestStreak, runLength, currentStreak)

	return models.StreakInfo{
		CurrentStreak:   currentStreak,
		LongestStreak:   longestStreak,
		LastWorkoutDate: dates[0],
	}
}

// distinctDatesDesc returns the unique valid workout dates, newest first.
// YYYY-MM-DD strings order lexicographically, so no parsing is needed to sort.
func distinctDatesDesc(workouts []models.WorkoutSession) []string {
	seen := make(map[string]struct{}, len(workouts))
	var dates []string
	for _, w := range workouts {
		if _, ok := seen[w.Date]; ok {
			continue
		}
		if _, err := models.ParseDate(w.Date); err != nil {
			continue
		}
		seen[w.Date] = struct{}{}
		dates = append(dates, w.Date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// consecutive reports whether older is exactly one calendar day before newer
func consecutive(newer, older string) bool {
	t, err := models.ParseDate(newer)
	if err != nil {
		return false
	}
	return models.DateOf(t.AddDate(0, 0, -1)) == older
}
