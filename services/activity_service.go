package services

import (
	"context"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/utils"
)

type ActivityService struct {
	store ActivityStore
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// Log computes the CO2 total for the given inputs, persists the record and
// returns it alongside the matching eco tips. The total is written once here
// and never recomputed.
func (s *ActivityService) Log(ctx context.Context, userID uint, in utils.ActivityInput) (*models.Activity, []string, error) {
	totalCO2 := utils.CalculateCO2(in)

	activity := &models.Activity{
		UserID:   userID,
		Date:     time.Now(),
		TotalCO2: totalCO2,
	}
	if in.Transport != nil {
		activity.Transport = *in.Transport
	}
	if in.Electricity != nil {
		activity.Electricity = *in.Electricity
	}
	if in.Food != nil {
		activity.Food = *in.Food
	}

	if err := s.store.Save(ctx, activity); err != nil {
		return nil, nil, err
	}

	tips := utils.GenerateEcoTips(in, totalCO2)
	return activity, tips, nil
}

// History returns the user's records newest first, optionally limited to the
// trailing day/week or the calendar month.
func (s *ActivityService) History(ctx context.Context, userID uint, period string) ([]models.Activity, error) {
	now := time.Now()
	switch period {
	case "day":
		return s.store.FindByUserSince(ctx, userID, dayStart(now))
	case "week":
		return s.store.FindByUserSince(ctx, userID, now.AddDate(0, 0, -7))
	case "month":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return s.store.FindByUserSince(ctx, userID, first)
	default:
		return s.store.FindByUser(ctx, userID)
	}
}
