package services

import (
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
)

// Streak counts consecutive qualifying trailing days, walking backward from
// today over at most RecentWindowSize days. A day breaks the streak when it
// has no data, exceeds the daily target (when one is configured, i.e. > 0),
// or emitted strictly more than the day after it. Equal days keep the streak
// going.
func Streak(recent []models.Activity, dailyTarget float64, now time.Time) int {
	sums := dailySums(recent)

	streak := 0
	havePrev := false
	var prevDay float64

	for i := 0; i < RecentWindowSize; i++ {
		key := now.AddDate(0, 0, -i).Format(dayKeyLayout)
		val, ok := sums[key]
		if !ok {
			break
		}
		if dailyTarget > 0 && val > dailyTarget {
			break
		}
		if havePrev && val > prevDay {
			break
		}
		streak++
		prevDay = val
		havePrev = true
	}

	return streak
}
