// Package fitness holds the stateful store that owns the in-memory snapshot
// of workouts and check-ins. Every mutation writes through the persistence
// adapter first and touches memory only after the durable write succeeds.
package fitness

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/stats"
)

// Storage is the persistence adapter the store writes through. Loads that
// find nothing (or unreadable data) return an empty collection.
type Storage interface {
	LoadWorkouts() ([]models.WorkoutSession, error)
	SaveWorkouts([]models.WorkoutSession) error
	LoadCheckIns() ([]models.CheckIn, error)
	SaveCheckIns([]models.CheckIn) error
}

// Store mediates all access to the workout and check-in collections. It is
// safe for concurrent use: a single mutex serializes every load-then-write
// sequence, so two overlapping saves cannot lose an update.
type Store struct {
	storage Storage

	mu       sync.Mutex
	workouts []models.WorkoutSession
	checkIns []models.CheckIn
	loading  bool

	// now is swapped in tests to pin the clock
	now func() time.Time
}

// New constructs a store over the given adapter. Call Initialize before
// relying on its data; until then every read sees empty collections.
func New(storage Storage) *Store {
	return &Store{
		storage: storage,
		loading: true,
		now:     time.Now,
	}
}

// Initialize loads both collections concurrently and transitions the store
// to ready. Load failures read as empty collections rather than aborting
// startup; unreadable data is never fatal.
func (s *Store) Initialize(ctx context.Context) error {
	var workouts []models.WorkoutSession
	var checkIns []models.CheckIn

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		w, err := s.storage.LoadWorkouts()
		if err == nil {
			workouts = w
		}
		return nil
	})
	g.Go(func() error {
		c, err := s.storage.LoadCheckIns()
		if err == nil {
			checkIns = c
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	s.workouts = workouts
	s.checkIns = checkIns
	s.loading = false
	s.mu.Unlock()
	return nil
}

// Loading reports whether the initial load is still pending
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// AddWorkout prepends the session to the collection. The durable write
// happens first; a failed write leaves both durable and in-memory state
// exactly as they were.
func (s *Store) AddWorkout(session models.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.WorkoutSession, 0, len(s.workouts)+1)
	updated = append(updated, session)
	updated = append(updated, s.workouts...)

	if err := s.storage.SaveWorkouts(updated); err != nil {
		return err
	}
	s.workouts = updated
	return nil
}

// RemoveWorkout deletes the session with the given id. An absent id is a
// no-op, not an error.
func (s *Store) RemoveWorkout(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.WorkoutSession, 0, len(s.workouts))
	for _, w := range s.workouts {
		if w.ID != id {
			updated = append(updated, w)
		}
	}

	if err := s.storage.SaveWorkouts(updated); err != nil {
		return err
	}
	s.workouts = updated
	return nil
}

// AddCheckIn saves a check-in, replacing any existing entry for the same
// date. The new entry ends up at the head of the collection.
func (s *Store) AddCheckIn(checkIn models.CheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make([]models.CheckIn, 0, len(s.checkIns)+1)
	updated = append(updated, checkIn)
	for _, c := range s.checkIns {
		if c.Date != checkIn.Date {
			updated = append(updated, c)
		}
	}

	if err := s.storage.SaveCheckIns(updated); err != nil {
		return err
	}
	s.checkIns = updated
	return nil
}

// Workouts returns a copy of the workout collection, newest first
func (s *Store) Workouts() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutSession, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// CheckIns returns a copy of the check-in collection, newest first
func (s *Store) CheckIns() []models.CheckIn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CheckIn, len(s.checkIns))
	copy(out, s.checkIns)
	return out
}

// TodayCheckIn returns today's check-in, or nil if none was recorded
func (s *Store) TodayCheckIn() *models.CheckIn {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := models.DateOf(s.now())
	for _, c := range s.checkIns {
		if c.Date == today {
			out := c
			return &out
		}
	}
	return nil
}

// TodayWorkouts returns all sessions logged for today's date
func (s *Store) TodayWorkouts() []models.WorkoutSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := models.DateOf(s.now())
	var out []models.WorkoutSession
	for _, w := range s.workouts {
		if w.Date == today {
			out = append(out, w)
		}
	}
	return out
}

// Streak recomputes the streak info from the current workout collection
func (s *Store) Streak() models.StreakInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.ComputeStreak(s.workouts, s.now())
}
