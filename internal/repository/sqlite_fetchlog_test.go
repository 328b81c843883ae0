package repository

import (
	"context"
	"testing"
	"time"

	"github.com/ksaito/studypace/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchLogRepo_RecordAndLatest(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFetchLogRepo(database)
	ctx := context.Background()

	first := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	second := time.Date(2026, 1, 11, 8, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Record(ctx, &FetchRecord{
		DatabaseID: "db-log", Pages: 2, Records: 150, FetchedAt: first,
	}))
	require.NoError(t, repo.Record(ctx, &FetchRecord{
		DatabaseID: "db-log", Pages: 2, Records: 160, FetchedAt: second,
	}))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, 160, latest.Records)
	assert.True(t, latest.FetchedAt.Equal(second))
	assert.NotEmpty(t, latest.ID, "missing id is generated on insert")
}

func TestFetchLogRepo_LatestEmpty(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteFetchLogRepo(database)

	_, err := repo.Latest(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
