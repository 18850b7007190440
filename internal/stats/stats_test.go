package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fittrackdev/fittrack/internal/models"
)

func makeExercise(sets, reps int, weight float64, unit string) models.Exercise {
	return models.Exercise{
		ID:         models.NewID(),
		Name:       "Bench Press",
		Sets:       sets,
		Reps:       reps,
		Weight:     weight,
		WeightUnit: unit,
	}
}

func makeWorkout(date string, exercises ...models.Exercise) models.WorkoutSession {
	return models.WorkoutSession{
		ID:              models.NewID(),
		Date:            date,
		Title:           "Test Workout",
		Exercises:       exercises,
		DurationMinutes: 45,
		CreatedAt:       time.Now(),
	}
}

func TestExerciseVolume(t *testing.T) {
	ex := makeExercise(3, 10, 60, models.UnitKg)
	assert.Equal(t, 1800.0, ExerciseVolume(ex))
}

func TestExerciseVolume_NormalizesLbs(t *testing.T) {
	ex := makeExercise(1, 1, 220, models.UnitLbs)
	assert.InDelta(t, 99.77, ExerciseVolume(ex), 0.01)
}

func TestSessionVolume_SumsExercises(t *testing.T) {
	w := makeWorkout("2025-01-15",
		makeExercise(3, 10, 60, models.UnitKg),
		makeExercise(4, 8, 100, models.UnitKg),
	)
	assert.Equal(t, 1800.0+3200.0, SessionVolume(w))
}

func TestTotalVolume(t *testing.T) {
	workouts := []models.WorkoutSession{
		makeWorkout("2025-01-15", makeExercise(3, 10, 60, models.UnitKg)),
		makeWorkout("2025-01-16", makeExercise(2, 5, 100, models.UnitKg)),
	}
	assert.Equal(t, 2800.0, TotalVolume(workouts))
}

func TestWeeklyBuckets_ReturnsSixWeeks(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	weeks := WeeklyBuckets(nil, now)
	require.Len(t, weeks, 6)
	for _, w := range weeks {
		assert.Zero(t, w.SessionCount)
		assert.Zero(t, w.TotalVolume)
	}
}

func TestWeeklyBuckets_AggregatesSessionsInWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)

	workouts := []models.WorkoutSession{
		// Current window starts today
		makeWorkout("2025-06-15", makeExercise(3, 10, 60, models.UnitKg)),
		// Previous window: 2025-06-08 .. 2025-06-14
		makeWorkout("2025-06-10", makeExercise(2, 10, 50, models.UnitKg)),
		makeWorkout("2025-06-08", makeExercise(1, 10, 40, models.UnitKg)),
		// Way before any computed window
		makeWorkout("2024-01-01", makeExercise(5, 5, 200, models.UnitKg)),
	}

	weeks := WeeklyBuckets(workouts, now)
	require.Len(t, weeks, 6)

	current := weeks[5]
	assert.Equal(t, 1, current.SessionCount)
	assert.Equal(t, 1800.0, current.TotalVolume)
	assert.Equal(t, 45, current.TotalDuration)

	previous := weeks[4]
	assert.Equal(t, 2, previous.SessionCount)
	assert.Equal(t, 1400.0, previous.TotalVolume)

	// The old session falls outside all eight candidate windows
	var total int
	for _, w := range weeks {
		total += w.SessionCount
	}
	assert.Equal(t, 3, total)
}

func TestWeeklyBuckets_DSTBoundaryCountsSessionOnce(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	origLocal := time.Local
	time.Local = loc
	defer func() { time.Local = origLocal }()

	// US spring-forward was 2025-03-09, so the window ending that day is a
	// 23-hour last day. A session on 2025-03-10 belongs to the next window
	// only; it must not be double counted across the boundary.
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, loc)
	workouts := []models.WorkoutSession{
		makeWorkout("2025-03-10", makeExercise(3, 10, 60, models.UnitKg)),
	}

	weeks := WeeklyBuckets(workouts, now)
	var total int
	for _, w := range weeks {
		total += w.SessionCount
	}
	assert.Equal(t, 1, total)
}

func TestWeeklyBuckets_LabelsAreWindowStarts(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)
	weeks := WeeklyBuckets(nil, now)
	assert.Equal(t, "Jun 15", weeks[5].WeekLabel)
	assert.Equal(t, "Jun 8", weeks[4].WeekLabel)
}

func floatPtr(v float64) *float64 { return &v }

func makeCheckIn(date string, weight *float64, unit string) models.CheckIn {
	return models.CheckIn{
		ID:         models.NewID(),
		Date:       date,
		Weight:     weight,
		WeightUnit: unit,
		Mood:       4,
		Energy:     7,
		CreatedAt:  time.Now(),
	}
}

func TestWeightTrend_FiltersAndSorts(t *testing.T) {
	checkIns := []models.CheckIn{
		makeCheckIn("2025-01-20", floatPtr(75), models.UnitKg),
		makeCheckIn("2025-01-10", floatPtr(76), models.UnitKg),
		makeCheckIn("2025-01-15", nil, models.UnitKg), // no weight recorded
	}

	trend := WeightTrend(checkIns)
	require.Len(t, trend, 2)
	assert.Equal(t, "2025-01-10", trend[0].Date)
	assert.Equal(t, "2025-01-20", trend[1].Date)
	assert.Equal(t, "Jan 10", trend[0].Label)
}

func TestWeightTrend_ConvertsLbsToKg(t *testing.T) {
	trend := WeightTrend([]models.CheckIn{
		makeCheckIn("2025-01-10", floatPtr(220), models.UnitLbs),
	})
	require.Len(t, trend, 1)
	assert.InDelta(t, 99.77, trend[0].WeightKg, 0.01)
}

func TestAverageMood(t *testing.T) {
	assert.Zero(t, AverageMood(nil))

	checkIns := []models.CheckIn{
		makeCheckIn("2025-01-10", nil, models.UnitKg),
		makeCheckIn("2025-01-11", nil, models.UnitKg),
	}
	checkIns[0].Mood = 3
	checkIns[1].Mood = 4
	assert.InDelta(t, 3.5, AverageMood(checkIns), 0.001)
}

func TestWeightTrend_KeepsMostRecentTwelve(t *testing.T) {
	var checkIns []models.CheckIn
	for day := 1; day <= 20; day++ {
		date := time.Date(2025, 3, day, 0, 0, 0, 0, time.Local)
		checkIns = append(checkIns, makeCheckIn(models.DateOf(date), floatPtr(80), models.UnitKg))
	}

	trend := WeightTrend(checkIns)
	require.Len(t, trend, 12)
	assert.Equal(t, "2025-03-09", trend[0].Date)
	assert.Equal(t, "2025-03-20", trend[11].Date)
}
