package services

import (
	"context"
	"testing"
	"time"

	"github.com/SiddeshHulagur/CarbonTracker/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveAssignsIDs(t *testing.T) {
	store := NewMemoryActivityStore()
	ctx := context.Background()

	a := &models.Activity{UserID: 1, Date: time.Now(), TotalCO2: 5}
	b := &models.Activity{UserID: 1, Date: time.Now(), TotalCO2: 7}
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))
	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
}

func TestMemoryStoreFindByUserNewestFirst(t *testing.T) {
	store := NewMemoryActivityStore()
	ctx := context.Background()
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(ctx, &models.Activity{
			UserID: 1, Date: now.AddDate(0, 0, -i), TotalCO2: float64(i),
		}))
	}
	require.NoError(t, store.Save(ctx, &models.Activity{UserID: 2, Date: now, TotalCO2: 99}))

	rows, err := store.FindByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 0.0, rows[0].TotalCO2)
	assert.Equal(t, 2.0, rows[2].TotalCO2)
}

func TestMemoryStoreFindByUserSince(t *testing.T) {
	store := NewMemoryActivityStore()
	ctx := context.Background()
	now := time.Date(2025, time.August, 20, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, &models.Activity{UserID: 1, Date: now, TotalCO2: 1}))
	require.NoError(t, store.Save(ctx, &models.Activity{UserID: 1, Date: now.AddDate(0, 0, -10), TotalCO2: 2}))

	rows, err := store.FindByUserSince(ctx, 1, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1.0, rows[0].TotalCO2)
}

func TestMemoryStoreCountByUser(t *testing.T) {
	store := NewMemoryActivityStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Activity{UserID: 1, Date: time.Now()}))
	require.NoError(t, store.Save(ctx, &models.Activity{UserID: 2, Date: time.Now()}))

	n, err := store.CountByUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
