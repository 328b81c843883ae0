package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/repository"
	"github.com/ksaito/studypace/internal/series"
)

// ProgressServiceImpl derives views from the local snapshot. The daily
// series is rebuilt from scratch on every call; outputs are fresh
// values with no shared state between invocations.
type ProgressServiceImpl struct {
	observations repository.ObservationRepo
	goals        repository.GoalRepo
	fetchLog     repository.FetchLogRepo
}

// NewProgressService creates a ProgressService.
func NewProgressService(observations repository.ObservationRepo, goals repository.GoalRepo, fetchLog repository.FetchLogRepo) *ProgressServiceImpl {
	return &ProgressServiceImpl{
		observations: observations,
		goals:        goals,
		fetchLog:     fetchLog,
	}
}

func (s *ProgressServiceImpl) MonthView(ctx context.Context, month domain.Month) (*domain.MonthView, error) {
	obs, err := s.observations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading observations: %w", err)
	}
	goals, err := s.goals.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	daily := series.BuildDaily(obs)
	return series.ComposeMonthView(daily, goals, month), nil
}

func (s *ProgressServiceImpl) Summary(ctx context.Context) (*Summary, error) {
	obs, err := s.observations.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading observations: %w", err)
	}
	goals, err := s.goals.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading goals: %w", err)
	}

	summary := &Summary{}

	if latest, err := s.fetchLog.Latest(ctx); err == nil {
		t := latest.FetchedAt
		summary.LastSyncedAt = &t
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading fetch log: %w", err)
	}

	daily := series.BuildDaily(obs)
	if len(daily) == 0 {
		return summary, nil
	}

	summary.FirstDate = daily[0].Date
	summary.LastDate = daily[len(daily)-1].Date
	summary.TotalMinutes = daily[len(daily)-1].CumulativeTotal
	summary.CurrentPace = daily[len(daily)-1].MovingAvg60d
	summary.Months = monthTotals(daily, goals)
	return summary, nil
}

// monthTotals aggregates the daily series month by month and joins each
// month against its goal (first match, like the month view).
func monthTotals(daily []domain.DailyPoint, goals []domain.MonthlyGoal) []MonthTotal {
	var totals []MonthTotal
	for _, p := range daily {
		m := domain.MonthOf(p.Date)
		if len(totals) == 0 || totals[len(totals)-1].Month != m {
			totals = append(totals, MonthTotal{Month: m, GoalMinutes: goalFor(goals, m)})
		}
		totals[len(totals)-1].ActualMinutes += p.Minutes
	}
	return totals
}

func goalFor(goals []domain.MonthlyGoal, month domain.Month) float64 {
	for _, g := range goals {
		if g.Month == month {
			return g.GoalMinutes
		}
	}
	return 0
}
