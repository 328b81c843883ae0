package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ksaito/studypace/internal/domain"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// FetchRecord describes one completed snapshot refresh of a database.
// Pages counts the raw Notion pages fetched; Records the normalized
// rows kept (the difference is what the normalizer dropped).
type FetchRecord struct {
	ID         string
	DatabaseID string
	Pages      int
	Records    int
	FetchedAt  time.Time
}

type ObservationRepo interface {
	// ReplaceAll swaps the stored snapshot for the given observations.
	// The series is rebuilt from scratch on every refresh, so there is
	// no incremental update path.
	ReplaceAll(ctx context.Context, obs []domain.Observation, fetchedAt time.Time) error
	ListAll(ctx context.Context) ([]domain.Observation, error)
}

type GoalRepo interface {
	ReplaceAll(ctx context.Context, goals []domain.MonthlyGoal, fetchedAt time.Time) error
	ListAll(ctx context.Context) ([]domain.MonthlyGoal, error)
}

type FetchLogRepo interface {
	Record(ctx context.Context, rec *FetchRecord) error
	// Latest returns the most recent fetch record, or ErrNotFound when
	// no refresh has happened yet.
	Latest(ctx context.Context) (*FetchRecord, error)
}
