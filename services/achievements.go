package services

import (
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
)

const (
	achievementFirstActivity = "First Activity Logged"
	achievementDailyGoal     = "Daily Goal Achieved!"
)

// AchievementContext carries the aggregates the rules are evaluated against.
type AchievementContext struct {
	TotalActivities int64
	DailyTotal      float64
	DailyTarget     float64
}

// EvaluateAchievements returns the achievements newly earned under ctx.
// Names already present in existing are never re-emitted; the caller owns
// persistence of the merged set.
func EvaluateAchievements(existing []models.Achievement, ctx AchievementContext, now time.Time) []models.Achievement {
	has := func(name string) bool {
		for _, a := range existing {
			if a.Name == name {
				return true
			}
		}
		return false
	}

	var earned []models.Achievement
	if ctx.TotalActivities == 1 && !has(achievementFirstActivity) {
		earned = append(earned, models.Achievement{Name: achievementFirstActivity, DateEarned: now})
	}
	if ctx.DailyTarget > 0 && ctx.DailyTotal > 0 && ctx.DailyTotal <= ctx.DailyTarget && !has(achievementDailyGoal) {
		earned = append(earned, models.Achievement{Name: achievementDailyGoal, DateEarned: now})
	}
	return earned
}
