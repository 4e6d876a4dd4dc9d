package services

import (
	"context"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"

	"gorm.io/gorm"
)

// ActivityStore is the persistence capability consumed by the aggregation
// services. Records are write-once: Save is the only mutation.
type ActivityStore interface {
	Save(ctx context.Context, activity *models.Activity) error
	// FindByUser returns all of a user's records, newest first.
	FindByUser(ctx context.Context, userID uint) ([]models.Activity, error)
	// FindByUserSince returns records with date >= since, newest first.
	FindByUserSince(ctx context.Context, userID uint, since time.Time) ([]models.Activity, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type gormActivityStore struct{ db *gorm.DB }

func NewGormActivityStore(db *gorm.DB) ActivityStore {
	return &gormActivityStore{db: db}
}

func (s *gormActivityStore) Save(ctx context.Context, activity *models.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *gormActivityStore) FindByUser(ctx context.Context, userID uint) ([]models.Activity, error) {
	var rows []models.Activity
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *gormActivityStore) FindByUserSince(ctx context.Context, userID uint, since time.Time) ([]models.Activity, error) {
	var rows []models.Activity
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC").
		Find(&rows).Error
	return rows, err
}

func (s *gormActivityStore) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.Activity{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	return n, err
}
