package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fittrackdev/fittrack/internal/models"
)

// Collection keys. Each one maps to a single blob holding the whole
// newest-first collection.
const (
	workoutsKey = "workouts"
	checkinsKey = "checkins"
)

// LoadWorkouts reads the workout collection. A missing or unreadable blob is
// an empty collection, not an error.
func (s *Store) LoadWorkouts() ([]models.WorkoutSession, error) {
	return loadCollection[models.WorkoutSession](s, workoutsKey)
}

// SaveWorkouts overwrites the workout collection blob
func (s *Store) SaveWorkouts(workouts []models.WorkoutSession) error {
	return s.saveBlob(workoutsKey, workouts)
}

// LoadCheckIns reads the check-in collection. A missing or unreadable blob is
// an empty collection, not an error.
func (s *Store) LoadCheckIns() ([]models.CheckIn, error) {
	return loadCollection[models.CheckIn](s, checkinsKey)
}

// SaveCheckIns overwrites the check-in collection blob
func (s *Store) SaveCheckIns(checkIns []models.CheckIn) error {
	return s.saveBlob(checkinsKey, checkIns)
}

// loadCollection unmarshals the record for key. Absence and corrupt JSON
// both read as an empty collection; the decoded slice is discarded on any
// unmarshal error, so a type-mismatched blob can never yield a partial
// collection. Only storage engine failures surface as errors.
func loadCollection[T any](s *Store, key string) ([]T, error) {
	var rec Record
	err := s.db.First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(rec.Value), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// saveBlob serializes v and rewrites the record for key in full
func (s *Store) saveBlob(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Record{Key: key, Value: string(raw)}).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
