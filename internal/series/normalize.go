package series

import (
	"time"

	"github.com/ksaito/studypace/internal/domain"
	"github.com/ksaito/studypace/internal/notion"
)

// PropertyNames maps the configured Notion property identifiers onto
// the fields the normalizer extracts.
type PropertyNames struct {
	Date      string // date property on the study log
	Minutes   string // number property on the study log
	GoalTitle string // title property on the goal database ("YYYY-Mon")
	GoalHours string // number property on the goal database, in hours
}

// DefaultPropertyNames returns the property identifiers used by the
// stock study-log and goal databases.
func DefaultPropertyNames() PropertyNames {
	return PropertyNames{
		Date:      "日付",
		Minutes:   "勉強時間(分)",
		GoalTitle: "月タイトル",
		GoalHours: "目標学習時間",
	}
}

// goalMonthLayout is the fixed "4-digit year, hyphen, 3-letter month"
// pattern goal titles must follow, e.g. "2026-Jan".
const goalMonthLayout = "2006-Jan"

// NormalizeObservations converts raw study-log pages into typed
// observations. A record without a usable date cannot be placed on the
// timeline and is dropped; a missing, mistyped or null minutes value is
// a valid "logged a day, no time" case and defaults to zero. Malformed
// records never abort the batch.
func NormalizeObservations(pages []notion.Page, props PropertyNames) []domain.Observation {
	var obs []domain.Observation
	for _, page := range pages {
		dateProp, ok := page.Properties[props.Date]
		if !ok || dateProp.Type != "date" || dateProp.Date == nil || dateProp.Date.Start == "" {
			continue
		}
		date, err := parseDate(dateProp.Date.Start)
		if err != nil {
			continue
		}

		var minutes float64
		if timeProp, ok := page.Properties[props.Minutes]; ok && timeProp.Type == "number" && timeProp.Number != nil {
			minutes = *timeProp.Number
		}

		obs = append(obs, domain.Observation{Date: date, Minutes: minutes})
	}
	return obs
}

// NormalizeGoals converts raw goal pages into typed monthly goals. A
// record whose title is absent, empty, or does not parse as "YYYY-Mon"
// is dropped silently. The goal number holds hours; a missing, mistyped
// or null value defaults to zero hours and the record is kept.
func NormalizeGoals(pages []notion.Page, props PropertyNames) []domain.MonthlyGoal {
	var goals []domain.MonthlyGoal
	for _, page := range pages {
		titleProp, ok := page.Properties[props.GoalTitle]
		if !ok || len(titleProp.Title) == 0 {
			continue
		}
		title := titleProp.TitleText()
		if title == "" {
			continue
		}
		t, err := time.Parse(goalMonthLayout, title)
		if err != nil {
			continue
		}

		var hours float64
		if goalProp, ok := page.Properties[props.GoalHours]; ok && goalProp.Type == "number" && goalProp.Number != nil {
			hours = *goalProp.Number
		}

		goals = append(goals, domain.MonthlyGoal{
			Month:       domain.MonthOf(t),
			GoalMinutes: hours * 60,
		})
	}
	return goals
}

// parseDate accepts the calendar-date and datetime forms Notion emits
// for date properties. Only the calendar date is kept; dates are not
// instants and no timezone conversion applies.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
