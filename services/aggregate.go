package services

import (
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/utils"
)

// RecentWindowSize bounds the trailing slice used for the chart and the
// streak evaluation.
const RecentWindowSize = 14

// Totals are the dashboard period sums, each rounded to two decimals.
type Totals struct {
	Daily         float64 `json:"daily"`
	Weekly        float64 `json:"weekly"`
	WeeklyAverage float64 `json:"weeklyAverage"`
	Monthly       float64 `json:"monthly"`
	AllTime       float64 `json:"allTime"`
}

// AggregateTotals slices a user's full history against a reference instant.
// Day is [midnight(now), now], week the trailing 7 full days, month
// [first of calendar month, now]. The weekly average always divides by 7 so
// partial weeks amortize.
func AggregateTotals(history []models.Activity, now time.Time) Totals {
	startOfDay := dayStart(now)
	startOfWeek := now.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var daily, weekly, monthly, allTime float64
	for _, a := range history {
		allTime += a.TotalCO2
		if a.Date.After(now) {
			continue
		}
		if !a.Date.Before(startOfDay) {
			daily += a.TotalCO2
		}
		if !a.Date.Before(startOfWeek) {
			weekly += a.TotalCO2
		}
		if !a.Date.Before(startOfMonth) {
			monthly += a.TotalCO2
		}
	}

	return Totals{
		Daily:         utils.Round2(daily),
		Weekly:        utils.Round2(weekly),
		WeeklyAverage: utils.Round2(weekly / 7),
		Monthly:       utils.Round2(monthly),
		AllTime:       utils.Round2(allTime),
	}
}

// RecentWindow returns the most recent n records, newest first. The input is
// expected newest first already (the store's order); a shorter history is
// returned as-is.
func RecentWindow(history []models.Activity, n int) []models.Activity {
	if len(history) <= n {
		return history
	}
	return history[:n]
}

type ChartPoint struct {
	Date time.Time `json:"date"`
	CO2  float64   `json:"co2"`
}

// ChartSeries maps the recent window to oldest-first plot points, ready for
// rendering without further transformation.
func ChartSeries(recent []models.Activity) []ChartPoint {
	series := make([]ChartPoint, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		series = append(series, ChartPoint{Date: recent[i].Date, CO2: recent[i].TotalCO2})
	}
	return series
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

const dayKeyLayout = "2006-01-02"

// dailySums collapses records into per-calendar-day totals.
func dailySums(records []models.Activity) map[string]float64 {
	sums := map[string]float64{}
	for _, a := range records {
		sums[a.Date.Format(dayKeyLayout)] += a.TotalCO2
	}
	return sums
}
