package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGoalsDefaultsWhenUnset(t *testing.T) {
	svc := NewGoalService(NewMemoryGoalStore())

	goal, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 50.0, goal.DailyTarget)
	assert.Equal(t, 1500.0, goal.MonthlyTarget)
}

func TestUpsertGoalsPartialKeepsDefault(t *testing.T) {
	svc := NewGoalService(NewMemoryGoalStore())

	daily := 30.0
	goal, err := svc.Upsert(context.Background(), 1, &daily, nil)
	require.NoError(t, err)

	assert.Equal(t, 30.0, goal.DailyTarget)
	assert.Equal(t, 1500.0, goal.MonthlyTarget)

	// stored, not just returned
	got, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.DailyTarget)
	assert.Equal(t, 1500.0, got.MonthlyTarget)
}

func TestUpsertGoalsUpdatesExisting(t *testing.T) {
	svc := NewGoalService(NewMemoryGoalStore())
	ctx := context.Background()

	daily := 30.0
	_, err := svc.Upsert(ctx, 1, &daily, nil)
	require.NoError(t, err)

	monthly := 900.0
	goal, err := svc.Upsert(ctx, 1, nil, &monthly)
	require.NoError(t, err)

	assert.Equal(t, 30.0, goal.DailyTarget)
	assert.Equal(t, 900.0, goal.MonthlyTarget)
}

func TestGoalsAreScopedPerUser(t *testing.T) {
	svc := NewGoalService(NewMemoryGoalStore())
	ctx := context.Background()

	daily := 10.0
	_, err := svc.Upsert(ctx, 1, &daily, nil)
	require.NoError(t, err)

	other, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 50.0, other.DailyTarget)
}
