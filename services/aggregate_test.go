package services

import (
	"testing"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activityAt(date time.Time, co2 float64) models.Activity {
	return models.Activity{UserID: 1, Date: date, TotalCO2: co2}
}

func TestAggregateTotalsWindows(t *testing.T) {
	now := time.Date(2025, time.August, 20, 15, 0, 0, 0, time.UTC)

	history := []models.Activity{
		activityAt(now.Add(-1*time.Hour), 5),              // today
		activityAt(now.AddDate(0, 0, -3), 10),             // this week and month
		activityAt(now.AddDate(0, 0, -10), 20),            // this month only
		activityAt(time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC), 40), // July
	}

	totals := AggregateTotals(history, now)
	assert.Equal(t, 5.0, totals.Daily)
	assert.Equal(t, 15.0, totals.Weekly)
	assert.Equal(t, 35.0, totals.Monthly)
	assert.Equal(t, 75.0, totals.AllTime)
}

func TestAggregateTotalsWeeklyAverageAlwaysDividesBySeven(t *testing.T) {
	now := time.Date(2025, time.August, 20, 15, 0, 0, 0, time.UTC)
	history := []models.Activity{
		activityAt(now.AddDate(0, 0, -1), 14),
	}
	totals := AggregateTotals(history, now)
	assert.Equal(t, 2.0, totals.WeeklyAverage)
}

func TestAggregateTotalsEmptyHistory(t *testing.T) {
	totals := AggregateTotals(nil, time.Now())
	assert.Equal(t, Totals{}, totals)
}

func TestRecentWindowBounded(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)
	var history []models.Activity
	for i := 0; i < 20; i++ {
		history = append(history, activityAt(now.AddDate(0, 0, -i), float64(i)))
	}

	recent := RecentWindow(history, RecentWindowSize)
	require.Len(t, recent, RecentWindowSize)
	// newest first preserved
	assert.Equal(t, 0.0, recent[0].TotalCO2)
	assert.Equal(t, 13.0, recent[len(recent)-1].TotalCO2)

	short := RecentWindow(history[:3], RecentWindowSize)
	assert.Len(t, short, 3)
}

func TestChartSeriesOldestFirst(t *testing.T) {
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)
	recent := []models.Activity{
		activityAt(now, 3),
		activityAt(now.AddDate(0, 0, -1), 2),
		activityAt(now.AddDate(0, 0, -2), 1),
	}

	series := ChartSeries(recent)
	require.Len(t, series, 3)
	assert.Equal(t, 1.0, series[0].CO2)
	assert.Equal(t, 3.0, series[2].CO2)
	assert.True(t, series[0].Date.Before(series[1].Date))
}
