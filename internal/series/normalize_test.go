package series

import (
	"testing"
	"time"

	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/notion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logPage(date string, minutes *float64) notion.Page {
	props := map[string]notion.Property{}
	if date != "" {
		props["日付"] = notion.Property{Type: "date", Date: &notion.DateValue{Start: date}}
	}
	if minutes != nil {
		props["勉強時間(分)"] = notion.Property{Type: "number", Number: minutes}
	}
	return notion.Page{ID: "p", Properties: props}
}

func goalPage(title string, hours *float64) notion.Page {
	props := map[string]notion.Property{}
	if title != "" {
		rt := notion.RichText{}
		rt.Text.Content = title
		props["月タイトル"] = notion.Property{Type: "title", Title: []notion.RichText{rt}}
	}
	if hours != nil {
		props["目標学習時間"] = notion.Property{Type: "number", Number: hours}
	}
	return notion.Page{ID: "g", Properties: props}
}

func fptr(v float64) *float64 { return &v }

func TestNormalizeObservations(t *testing.T) {
	props := DefaultPropertyNames()

	obs := NormalizeObservations([]notion.Page{
		logPage("2026-01-15", fptr(45)),
		logPage("", fptr(30)),          // no date: dropped
		logPage("2026-01-16", nil),     // no minutes: kept as 0
		logPage("not-a-date", fptr(5)), // unparseable date: dropped
	}, props)

	require.Len(t, obs, 2)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), obs[0].Date)
	assert.Equal(t, 45.0, obs[0].Minutes)
	assert.Equal(t, 0.0, obs[1].Minutes)
}

func TestNormalizeObservations_NullNumberIsZero(t *testing.T) {
	page := logPage("2026-01-15", nil)
	page.Properties["勉強時間(分)"] = notion.Property{Type: "number", Number: nil}

	obs := NormalizeObservations([]notion.Page{page}, DefaultPropertyNames())

	require.Len(t, obs, 1)
	assert.Equal(t, 0.0, obs[0].Minutes)
}

func TestNormalizeObservations_WrongTypeMinutesIsZero(t *testing.T) {
	page := logPage("2026-01-15", nil)
	page.Properties["勉強時間(分)"] = notion.Property{Type: "rich_text"}

	obs := NormalizeObservations([]notion.Page{page}, DefaultPropertyNames())

	require.Len(t, obs, 1)
	assert.Equal(t, 0.0, obs[0].Minutes)
}

func TestNormalizeObservations_DatetimeStartKeepsCalendarDay(t *testing.T) {
	obs := NormalizeObservations([]notion.Page{
		logPage("2026-01-15T21:30:00.000+09:00", fptr(25)),
	}, DefaultPropertyNames())

	require.Len(t, obs, 1)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), obs[0].Date)
}

func TestNormalizeObservations_Empty(t *testing.T) {
	assert.Empty(t, NormalizeObservations(nil, DefaultPropertyNames()))
}

func TestNormalizeGoals(t *testing.T) {
	props := DefaultPropertyNames()

	goals := NormalizeGoals([]notion.Page{
		goalPage("2026-Jan", fptr(10)),
		goalPage("", fptr(8)),          // no title: dropped
		goalPage("January 26", fptr(8)), // unparseable: dropped silently
		goalPage("2026-Feb", nil),      // no hours: kept as 0
	}, props)

	require.Len(t, goals, 2)
	assert.Equal(t, domain.Month{Year: 2026, Month: time.January}, goals[0].Month)
	assert.Equal(t, 600.0, goals[0].GoalMinutes, "10 hours converts to 600 minutes")
	assert.Equal(t, 0.0, goals[1].GoalMinutes)
}

func TestNormalizeGoals_MalformedRecordsNeverAbortBatch(t *testing.T) {
	goals := NormalizeGoals([]notion.Page{
		goalPage("garbage", fptr(1)),
		goalPage("2026-13x", fptr(2)),
		goalPage("2026-Mar", fptr(3)),
	}, DefaultPropertyNames())

	require.Len(t, goals, 1)
	assert.Equal(t, domain.Month{Year: 2026, Month: time.March}, goals[0].Month)
	assert.Equal(t, 180.0, goals[0].GoalMinutes)
}
