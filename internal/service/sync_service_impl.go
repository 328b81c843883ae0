package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ksaito/studypace/internal/db"
	"github.com/ksaito/studypace/internal/notion"
	"github.com/ksaito/studypace/internal/repository"
	"github.com/ksaito/studypace/internal/series"
)

// SyncServiceImpl refreshes the local snapshot from the two Notion
// databases. Individual malformed records are dropped or defaulted by
// the normalizer and never fail a refresh; only transport failures do.
type SyncServiceImpl struct {
	client         notion.Client
	logDatabaseID  string
	goalDatabaseID string
	props          series.PropertyNames
	uow            db.UnitOfWork
	now            func() time.Time
}

// NewSyncService creates a SyncService.
func NewSyncService(client notion.Client, logDatabaseID, goalDatabaseID string, props series.PropertyNames, uow db.UnitOfWork) *SyncServiceImpl {
	return &SyncServiceImpl{
		client:         client,
		logDatabaseID:  logDatabaseID,
		goalDatabaseID: goalDatabaseID,
		props:          props,
		uow:            uow,
		now:            time.Now,
	}
}

func (s *SyncServiceImpl) Refresh(ctx context.Context) (*SyncResult, error) {
	logPages, err := s.client.QueryDatabase(ctx, s.logDatabaseID)
	if err != nil {
		return nil, fmt.Errorf("querying study log: %w", err)
	}
	goalPages, err := s.client.QueryDatabase(ctx, s.goalDatabaseID)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}

	obs := series.NormalizeObservations(logPages, s.props)
	goals := series.NormalizeGoals(goalPages, s.props)
	fetchedAt := s.now()

	// Both snapshots and the fetch log move together or not at all.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteObservationRepo(tx).ReplaceAll(ctx, obs, fetchedAt); err != nil {
			return err
		}
		if err := repository.NewSQLiteGoalRepo(tx).ReplaceAll(ctx, goals, fetchedAt); err != nil {
			return err
		}
		fetchLog := repository.NewSQLiteFetchLogRepo(tx)
		if err := fetchLog.Record(ctx, &repository.FetchRecord{
			DatabaseID: s.logDatabaseID,
			Pages:      len(logPages),
			Records:    len(obs),
			FetchedAt:  fetchedAt,
		}); err != nil {
			return err
		}
		return fetchLog.Record(ctx, &repository.FetchRecord{
			DatabaseID: s.goalDatabaseID,
			Pages:      len(goalPages),
			Records:    len(goals),
			FetchedAt:  fetchedAt,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("replacing snapshot: %w", err)
	}

	return &SyncResult{
		Observations: len(obs),
		Goals:        len(goals),
		LogPages:     len(logPages),
		GoalPages:    len(goalPages),
		FetchedAt:    fetchedAt,
	}, nil
}
