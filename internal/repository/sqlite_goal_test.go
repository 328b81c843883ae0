package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepo_ReplaceAllAndListAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	goals := []domain.MonthlyGoal{
		{Month: domain.Month{Year: 2026, Month: time.February}, GoalMinutes: 720},
		{Month: domain.Month{Year: 2026, Month: time.January}, GoalMinutes: 600},
	}
	require.NoError(t, repo.ReplaceAll(ctx, goals, time.Now()))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Insertion order is preserved so first-match lookup sees the same
	// record the source returned first.
	assert.Equal(t, goals, got)
}

func TestGoalRepo_PreservesDuplicateMonths(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteGoalRepo(database)
	ctx := context.Background()

	jan := domain.Month{Year: 2026, Month: time.January}
	goals := []domain.MonthlyGoal{
		{Month: jan, GoalMinutes: 600},
		{Month: jan, GoalMinutes: 1200},
	}
	require.NoError(t, repo.ReplaceAll(ctx, goals, time.Now()))

	got, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 600.0, got[0].GoalMinutes)
}
