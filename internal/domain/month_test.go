package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2026-Jan")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2026, Month: time.January}, m)

	m, err = ParseMonth("2026-02")
	require.NoError(t, err)
	assert.Equal(t, Month{Year: 2026, Month: time.February}, m)

	_, err = ParseMonth("Jan-2026")
	assert.Error(t, err)

	_, err = ParseMonth("2026-Janvier")
	assert.Error(t, err)
}

func TestMonthNext_DecemberRollsOver(t *testing.T) {
	m := Month{Year: 2025, Month: time.December}
	assert.Equal(t, Month{Year: 2026, Month: time.January}, m.Next())
}

func TestMonthPrev_JanuaryRollsBack(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}
	assert.Equal(t, Month{Year: 2025, Month: time.December}, m.Prev())
}

func TestMonthDays(t *testing.T) {
	tests := []struct {
		month Month
		days  int
	}{
		{Month{2026, time.January}, 31},
		{Month{2026, time.February}, 28},
		{Month{2024, time.February}, 29}, // leap year
		{Month{2026, time.April}, 30},
		{Month{2026, time.December}, 31},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.days, tt.month.Days(), "days in %s", tt.month)
	}
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2026, Month: time.January}

	assert.True(t, m.Contains(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2026-Feb", Month{Year: 2026, Month: time.February}.String())
}
