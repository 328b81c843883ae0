package formatter

import (
	"testing"
	"time"

	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	synced := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	s := &service.Summary{
		TotalMinutes: 750,
		FirstDate:    time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		LastDate:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		CurrentPace:  20.8,
		LastSyncedAt: &synced,
		Months: []service.MonthTotal{
			{Month: domain.Month{Year: 2025, Month: time.December}, ActualMinutes: 600},
			{Month: domain.Month{Year: 2026, Month: time.January}, ActualMinutes: 150, GoalMinutes: 600},
		},
	}

	out := FormatSummary(s)

	assert.Contains(t, out, "12h30m")
	assert.Contains(t, out, "20.8 min/day")
	assert.Contains(t, out, "2025-12-01 → 2026-01-05")
	assert.Contains(t, out, "2026-01-05 09:30")
	assert.Contains(t, out, "2025-Dec")
	assert.Contains(t, out, "no goal")
	assert.Contains(t, out, "25%")
}

func TestFormatSummary_Empty(t *testing.T) {
	out := FormatSummary(&service.Summary{})

	assert.Contains(t, out, "no data yet")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "45m", formatMinutes(45))
	assert.Equal(t, "1h00m", formatMinutes(60))
	assert.Equal(t, "2h05m", formatMinutes(125))
}
