package domain

import "time"

// Observation is one normalized study-log entry: minutes logged on a
// calendar date. Multiple observations may share a date; they are
// additive (independent sessions on the same day).
type Observation struct {
	Date    time.Time
	Minutes float64
}

// MonthlyGoal is a study target for one calendar month, in minutes.
// At most one goal is authoritative per month (first match wins).
type MonthlyGoal struct {
	Month       Month
	GoalMinutes float64
}
