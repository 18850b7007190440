package models

import (
	"fmt"
	"time"
)

// Weight units accepted on exercises and check-ins
const (
	UnitKg  = "kg"
	UnitLbs = "lbs"
)

// Exercise represents one movement performed within a workout session
type Exercise struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Weight     float64 `json:"weight"`
	WeightUnit string  `json:"weightUnit"` // kg or lbs
	Notes      string  `json:"notes,omitempty"`
}

// Validate checks the exercise invariants
func (e Exercise) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("exercise name is required")
	}
	if e.Sets < 1 {
		return fmt.Errorf("exercise %q: sets must be at least 1", e.Name)
	}
	if e.Reps < 1 {
		return fmt.Errorf("exercise %q: reps must be at least 1", e.Name)
	}
	if e.Weight < 0 {
		return fmt.Errorf("exercise %q: weight cannot be negative", e.Name)
	}
	if e.WeightUnit != UnitKg && e.WeightUnit != UnitLbs {
		return fmt.Errorf("exercise %q: weight unit must be kg or lbs", e.Name)
	}
	return nil
}

// WorkoutSession represents one logged workout event. Exercises are owned by
// the session and keep their insertion order.
type WorkoutSession struct {
	ID              string     `json:"id"`
	Date            string     `json:"date"` // YYYY-MM-DD
	Title           string     `json:"title"`
	Exercises       []Exercise `json:"exercises"`
	DurationMinutes int        `json:"durationMinutes"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// Validate checks the session invariants. Enforced by producers (the CLI and
// the interactive form) before handing the session to the store.
func (w WorkoutSession) Validate() error {
	if w.ID == "" {
		return fmt.Errorf("workout id is required")
	}
	if _, err := ParseDate(w.Date); err != nil {
		return fmt.Errorf("workout date: %w", err)
	}
	if w.Title == "" {
		return fmt.Errorf("workout title is required")
	}
	if w.DurationMinutes < 1 {
		return fmt.Errorf("workout duration must be at least 1 minute")
	}
	if len(w.Exercises) == 0 {
		return fmt.Errorf("workout needs at least one exercise")
	}
	for _, ex := range w.Exercises {
		if err := ex.Validate(); err != nil {
			return err
		}
	}
	return nil
}
