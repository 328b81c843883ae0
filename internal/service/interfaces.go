package service

import (
	"context"
	"time"

	"github.com/ksaito/studypace/internal/domain"
)

// SyncResult summarizes one snapshot refresh.
type SyncResult struct {
	Observations int
	Goals        int
	LogPages     int
	GoalPages    int
	FetchedAt    time.Time
}

// MonthTotal pairs a month's logged minutes with its goal, for the
// month-by-month achievement table.
type MonthTotal struct {
	Month         domain.Month
	ActualMinutes float64
	GoalMinutes   float64
}

// AchievementRate returns actual/goal as a percentage, or 0 when the
// month has no goal.
func (m MonthTotal) AchievementRate() float64 {
	if m.GoalMinutes <= 0 {
		return 0
	}
	return m.ActualMinutes / m.GoalMinutes * 100
}

// Summary is the full-history overview: total time, the observed span,
// the current 60-day pace, and per-month totals against goals.
type Summary struct {
	TotalMinutes float64
	FirstDate    time.Time
	LastDate     time.Time
	CurrentPace  float64 // latest 60-day moving average, minutes/day
	Months       []MonthTotal
	LastSyncedAt *time.Time // nil when the snapshot has never been refreshed
}

type SyncService interface {
	// Refresh queries both Notion databases, normalizes the records and
	// replaces the local snapshot atomically.
	Refresh(ctx context.Context) (*SyncResult, error)
}

type ProgressService interface {
	// MonthView composes the chart input for the selected month from
	// the local snapshot. An empty snapshot yields an empty view.
	MonthView(ctx context.Context, month domain.Month) (*domain.MonthView, error)

	// Summary computes the full-history overview from the local snapshot.
	Summary(ctx context.Context) (*Summary, error)
}
