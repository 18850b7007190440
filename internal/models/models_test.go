package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExercise() Exercise {
	return Exercise{
		ID:         NewID(),
		Name:       "Bench Press",
		Sets:       3,
		Reps:       10,
		Weight:     60,
		WeightUnit: UnitKg,
	}
}

func validWorkout() WorkoutSession {
	return WorkoutSession{
		ID:              NewID(),
		Date:            "2025-01-15",
		Title:           "Push Day",
		Exercises:       []Exercise{validExercise()},
		DurationMinutes: 45,
		CreatedAt:       time.Now(),
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}

func TestToday_Format(t *testing.T) {
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, Today())
}

func TestFormatDateShort(t *testing.T) {
	assert.Equal(t, "Jan 15", FormatDateShort("2025-01-15"))
	assert.Equal(t, "garbage", FormatDateShort("garbage"))
}

func TestExerciseValidate(t *testing.T) {
	assert.NoError(t, validExercise().Validate())

	ex := validExercise()
	ex.Sets = 0
	assert.Error(t, ex.Validate())

	ex = validExercise()
	ex.Reps = 0
	assert.Error(t, ex.Validate())

	ex = validExercise()
	ex.Weight = -1
	assert.Error(t, ex.Validate())

	ex = validExercise()
	ex.WeightUnit = "stone"
	assert.Error(t, ex.Validate())

	// Bodyweight movements carry zero weight
	ex = validExercise()
	ex.Weight = 0
	assert.NoError(t, ex.Validate())
}

func TestWorkoutValidate(t *testing.T) {
	assert.NoError(t, validWorkout().Validate())

	w := validWorkout()
	w.Title = ""
	assert.Error(t, w.Validate())

	w = validWorkout()
	w.Exercises = nil
	assert.Error(t, w.Validate())

	w = validWorkout()
	w.Date = "15/01/2025"
	assert.Error(t, w.Validate())

	w = validWorkout()
	w.DurationMinutes = 0
	assert.Error(t, w.Validate())
}

func TestCheckInValidate(t *testing.T) {
	weight := 75.0
	valid := CheckIn{
		ID:         NewID(),
		Date:       "2025-01-15",
		Weight:     &weight,
		WeightUnit: UnitKg,
		Mood:       4,
		Energy:     7,
		CreatedAt:  time.Now(),
	}
	assert.NoError(t, valid.Validate())

	c := valid
	c.Mood = 6
	assert.Error(t, c.Validate())

	c = valid
	c.Energy = 0
	assert.Error(t, c.Validate())

	c = valid
	bad := -5.0
	c.Weight = &bad
	assert.Error(t, c.Validate())

	c = valid
	c.Weight = nil
	assert.NoError(t, c.Validate())
}
