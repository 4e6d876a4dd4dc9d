package services

import (
	"context"
	"sort"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/utils"

	"gorm.io/gorm"
)

type LeaderboardEntry struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	Rank            int     `json:"rank"`
	TotalEmissions  float64 `json:"totalEmissions"`
	ActivitiesCount int     `json:"activitiesCount"`
}

type Leaderboard struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	CurrentUser *LeaderboardEntry  `json:"currentUser"`
}

// RankUsers sorts entries ascending by emissions (lower is better) and
// assigns 1-based positional ranks. The sort is stable, so equal totals keep
// their input order and receive distinct consecutive ranks.
func RankUsers(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalEmissions < ranked[j].TotalEmissions
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

type LeaderboardService struct {
	db    *gorm.DB
	store ActivityStore
}

func NewLeaderboardService(db *gorm.DB, store ActivityStore) *LeaderboardService {
	return &LeaderboardService{db: db, store: store}
}

// Build ranks every user by cumulative emissions over the requested window
// ("week" = trailing 7 days, "month" = calendar month, anything else =
// all time). Output is truncated to the top 10; the requesting user's entry
// is looked up from the full ranking.
func (s *LeaderboardService) Build(ctx context.Context, currentUserID uint, period string, now time.Time) (*Leaderboard, error) {
	var start time.Time
	switch period {
	case "week":
		start = now.AddDate(0, 0, -7)
	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}

	var users []models.User
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		var rows []models.Activity
		var err error
		if start.IsZero() {
			rows, err = s.store.FindByUser(ctx, u.ID)
		} else {
			rows, err = s.store.FindByUserSince(ctx, u.ID, start)
		}
		if err != nil {
			return nil, err
		}

		var total float64
		for _, a := range rows {
			total += a.TotalCO2
		}
		entries = append(entries, LeaderboardEntry{
			ID:              u.ID,
			Name:            u.Name,
			TotalEmissions:  utils.Round2(total),
			ActivitiesCount: len(rows),
		})
	}

	ranked := RankUsers(entries)

	out := &Leaderboard{}
	for _, e := range ranked {
		if e.ID == currentUserID {
			entry := e
			out.CurrentUser = &entry
			break
		}
	}
	if len(ranked) > 10 {
		ranked = ranked[:10]
	}
	out.Leaderboard = ranked
	return out, nil
}
