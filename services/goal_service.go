package services

import (
	"context"
	"errors"

	"github.com/SiddeshHulagur/CarbonTracker/models"

	"gorm.io/gorm"
)

// Default targets applied when a user has not configured goals yet (kg CO2).
const (
	DefaultDailyTarget   = 50.0
	DefaultMonthlyTarget = 1500.0
)

// ErrGoalNotFound is returned by GoalStore implementations when the user has
// no stored goal row.
var ErrGoalNotFound = errors.New("goal not found")

// GoalStore persists per-user targets.
type GoalStore interface {
	Find(ctx context.Context, userID uint) (*models.UserGoal, error)
	Save(ctx context.Context, goal *models.UserGoal) error
}

type gormGoalStore struct {
	db *gorm.DB
}

func NewGormGoalStore(db *gorm.DB) GoalStore {
	return &gormGoalStore{db: db}
}

func (s *gormGoalStore) Find(ctx context.Context, userID uint) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *gormGoalStore) Save(ctx context.Context, goal *models.UserGoal) error {
	return s.db.WithContext(ctx).Save(goal).Error
}

type GoalService struct {
	store GoalStore
}

func NewGoalService(store GoalStore) *GoalService {
	return &GoalService{store: store}
}

// Get returns the user's goals, falling back to the defaults when none are
// stored.
func (s *GoalService) Get(ctx context.Context, userID uint) (*models.UserGoal, error) {
	goal, err := s.store.Find(ctx, userID)
	if errors.Is(err, ErrGoalNotFound) {
		return &models.UserGoal{
			UserID:        userID,
			DailyTarget:   DefaultDailyTarget,
			MonthlyTarget: DefaultMonthlyTarget,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return goal, nil
}

// Upsert updates the provided targets; nil means keep the current value.
// A first update starts from the defaults, so a partial body never zeroes
// the other target.
func (s *GoalService) Upsert(ctx context.Context, userID uint, dailyTarget, monthlyTarget *float64) (*models.UserGoal, error) {
	goal, err := s.store.Find(ctx, userID)
	if errors.Is(err, ErrGoalNotFound) {
		goal = &models.UserGoal{
			UserID:        userID,
			DailyTarget:   DefaultDailyTarget,
			MonthlyTarget: DefaultMonthlyTarget,
		}
	} else if err != nil {
		return nil, err
	}

	if dailyTarget != nil {
		goal.DailyTarget = *dailyTarget
	}
	if monthlyTarget != nil {
		goal.MonthlyTarget = *monthlyTarget
	}

	if err := s.store.Save(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}
