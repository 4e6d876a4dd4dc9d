package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/utils"

	"gorm.io/gorm"
)

type DashboardService struct {
	db    *gorm.DB
	store ActivityStore
	goals *GoalService
	bus   *AchievementBus
}

func NewDashboardService(db *gorm.DB, store ActivityStore, goals *GoalService, bus *AchievementBus) *DashboardService {
	return &DashboardService{db: db, store: store, goals: goals, bus: bus}
}

// Dashboard is the read model served to the frontend as-is.
type Dashboard struct {
	Totals           Totals               `json:"totals"`
	Achievements     []models.Achievement `json:"achievements"`
	RecentActivities []models.Activity    `json:"recentActivities"`
	Tips             []string             `json:"tips"`
	ChartData        []ChartPoint         `json:"chartData"`
	Breakdown        utils.Breakdown      `json:"breakdown"`
	Streak           int                  `json:"streak"`
	EmissionFactors  utils.FactorsMeta    `json:"emissionFactors"`
}

// Build assembles the dashboard for a user at the given instant. Newly
// qualifying achievements are persisted and announced before being returned
// merged with the existing set.
func (s *DashboardService) Build(ctx context.Context, userID uint, now time.Time) (*Dashboard, error) {
	history, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	totalActivities, err := s.store.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	goal, err := s.goals.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	totals := AggregateTotals(history, now)
	recent := RecentWindow(history, RecentWindowSize)

	achievements := []models.Achievement{}
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&achievements).Error; err != nil {
		return nil, err
	}

	earned := EvaluateAchievements(achievements, AchievementContext{
		TotalActivities: totalActivities,
		DailyTotal:      totals.Daily,
		DailyTarget:     goal.DailyTarget,
	}, now)
	for i := range earned {
		earned[i].UserID = userID
		if err := s.db.WithContext(ctx).Create(&earned[i]).Error; err != nil {
			return nil, err
		}
		if s.bus != nil {
			s.bus.Announce(userID, earned[i])
		}
	}
	achievements = append(achievements, earned...)

	tips := []string{"Start logging your activities to get personalized eco tips!"}
	breakdown := utils.Breakdown{}
	if len(recent) > 0 {
		latest := recent[0]
		in := utils.ActivityInput{
			Transport:   &latest.Transport,
			Electricity: &latest.Electricity,
			Food:        &latest.Food,
		}
		tips = utils.GenerateEcoTips(in, latest.TotalCO2)
		breakdown = utils.CategoryBreakdown(in)
	}

	recentOut := recent
	if len(recentOut) > 10 {
		recentOut = recentOut[:10]
	}

	return &Dashboard{
		Totals:           totals,
		Achievements:     achievements,
		RecentActivities: recentOut,
		Tips:             tips,
		ChartData:        ChartSeries(recent),
		Breakdown:        breakdown,
		Streak:           Streak(recent, goal.DailyTarget, now),
		EmissionFactors:  utils.EmissionFactorsMeta,
	}, nil
}

var exportHeader = []string{
	"date", "totalCO2",
	"carKm", "busKm", "bikeKm", "walkKm",
	"kwhUsed",
	"meat", "dairy", "vegetables", "processed",
}

// ExportCSV streams the user's full history in ascending date order, one row
// per record.
func (s *DashboardService) ExportCSV(ctx context.Context, userID uint, w io.Writer) error {
	history, err := s.store.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	// store order is newest first; the export wants oldest first
	for i := len(history) - 1; i >= 0; i-- {
		a := history[i]
		row := []string{
			a.Date.UTC().Format(time.RFC3339),
			fmtFloat(a.TotalCO2),
			fmtFloat(a.Transport.CarKm),
			fmtFloat(a.Transport.BusKm),
			fmtFloat(a.Transport.BikeKm),
			fmtFloat(a.Transport.WalkKm),
			fmtFloat(a.Electricity.KwhUsed),
			fmtFloat(a.Food.Meat),
			fmtFloat(a.Food.Dairy),
			fmtFloat(a.Food.Vegetables),
			fmtFloat(a.Food.Processed),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
