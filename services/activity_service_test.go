package services

import (
	"context"
	"testing"

	"github.com/SiddeshHulagur/CarbonTracker/models"
	"github.com/SiddeshHulagur/CarbonTracker/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPersistsDerivedTotal(t *testing.T) {
	store := NewMemoryActivityStore()
	svc := NewActivityService(store)

	in := utils.ActivityInput{
		Transport:   &models.Transport{CarKm: 10},
		Electricity: &models.Electricity{KwhUsed: 5},
		Food:        &models.Food{Meat: 1, Vegetables: 2},
	}
	activity, tips, err := svc.Log(context.Background(), 1, in)
	require.NoError(t, err)
	assert.Equal(t, 12.07, activity.TotalCO2)
	assert.NotEmpty(t, tips)

	rows, err := store.FindByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 12.07, rows[0].TotalCO2)
	assert.Equal(t, 10.0, rows[0].Transport.CarKm)
}

func TestLogMissingCategoriesDefaultToZero(t *testing.T) {
	store := NewMemoryActivityStore()
	svc := NewActivityService(store)

	activity, tips, err := svc.Log(context.Background(), 1, utils.ActivityInput{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, activity.TotalCO2)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "Great job")
}
