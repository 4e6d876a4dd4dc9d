package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
)

// MemoryActivityStore keeps records in memory. Used when STORE_DRIVER=memory
// (development) and by tests; replaces the implicit global fallback list the
// original design relied on.
type MemoryActivityStore struct {
	mu     sync.RWMutex
	nextID uint
	rows   []models.Activity
}

func NewMemoryActivityStore() *MemoryActivityStore {
	return &MemoryActivityStore{nextID: 1}
}

func (s *MemoryActivityStore) Save(_ context.Context, activity *models.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	activity.ID = s.nextID
	s.nextID++
	s.rows = append(s.rows, *activity)
	return nil
}

func (s *MemoryActivityStore) FindByUser(_ context.Context, userID uint) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(userID, time.Time{}), nil
}

func (s *MemoryActivityStore) FindByUserSince(_ context.Context, userID uint, since time.Time) ([]models.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter(userID, since), nil
}

func (s *MemoryActivityStore) CountByUser(_ context.Context, userID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, r := range s.rows {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

// MemoryGoalStore is the in-memory GoalStore counterpart.
type MemoryGoalStore struct {
	mu     sync.RWMutex
	nextID uint
	goals  map[uint]models.UserGoal
}

func NewMemoryGoalStore() *MemoryGoalStore {
	return &MemoryGoalStore{nextID: 1, goals: make(map[uint]models.UserGoal)}
}

func (s *MemoryGoalStore) Find(_ context.Context, userID uint) (*models.UserGoal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[userID]
	if !ok {
		return nil, ErrGoalNotFound
	}
	out := goal
	return &out, nil
}

func (s *MemoryGoalStore) Save(_ context.Context, goal *models.UserGoal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if goal.ID == 0 {
		goal.ID = s.nextID
		s.nextID++
	}
	s.goals[goal.UserID] = *goal
	return nil
}

// filter returns matching records newest first; callers hold the lock.
func (s *MemoryActivityStore) filter(userID uint, since time.Time) []models.Activity {
	out := []models.Activity{}
	for _, r := range s.rows {
		if r.UserID != userID {
			continue
		}
		if !since.IsZero() && r.Date.Before(since) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
