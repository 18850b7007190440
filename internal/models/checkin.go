package models

import (
	"fmt"
	"time"
)

// CheckIn represents one daily self-report. At most one check-in exists per
// calendar date; saving another for the same date replaces it.
type CheckIn struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Weight     *float64  `json:"weight,omitempty"`
	WeightUnit string    `json:"weightUnit"`
	Mood       int       `json:"mood"`   // 1-5
	Energy     int       `json:"energy"` // 1-10
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate checks the check-in invariants
func (c CheckIn) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("check-in id is required")
	}
	if _, err := ParseDate(c.Date); err != nil {
		return fmt.Errorf("check-in date: %w", err)
	}
	if c.Mood < 1 || c.Mood > 5 {
		return fmt.Errorf("mood must be between 1 and 5")
	}
	if c.Energy < 1 || c.Energy > 10 {
		return fmt.Errorf("energy must be between 1 and 10")
	}
	if c.Weight != nil && *c.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	if c.WeightUnit != UnitKg && c.WeightUnit != UnitLbs {
		return fmt.Errorf("weight unit must be kg or lbs")
	}
	return nil
}

// StreakInfo is derived from the workout collection on every read and is
// never persisted.
type StreakInfo struct {
	CurrentStreak   int    `json:"currentStreak"`
	LongestStreak   int    `json:"longestStreak"`
	LastWorkoutDate string `json:"lastWorkoutDate"` // empty when no workouts
}
