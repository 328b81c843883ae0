package domain

import "time"

// DailyPoint is one day of the gap-filled daily series. The series
// covers every calendar day from the first to the last observed date;
// days with no logged sessions carry zero minutes.
type DailyPoint struct {
	Date            time.Time
	Minutes         float64
	CumulativeTotal float64
	// MovingAvg60d is the trailing mean of daily minutes over a window
	// that widens from 1 up to 60 days, so it is defined for every point.
	MovingAvg60d float64
}

// MonthPoint is one day of a month-scoped view. MonthlyCumulative
// restarts at zero at the month boundary; it is not a slice of the
// full-history cumulative total.
type MonthPoint struct {
	Date              time.Time
	Minutes           float64
	MonthlyCumulative float64
	MovingAvg60d      float64
}

// TargetPoint is one day of the linear pacing line toward a monthly goal.
type TargetPoint struct {
	Date             time.Time
	TargetCumulative float64
}

// MonthView is the fully composed month-scoped chart input: actuals with
// a month-local cumulative, the synthesized target curve, and the axis
// domain for the moving average. It is ephemeral and rebuilt on every
// month change; the renderer needs no further date arithmetic.
type MonthView struct {
	Month        Month
	Points       []MonthPoint
	TargetPoints []TargetPoint
	// AvgDomain is the [low, high] axis bound for the moving-average
	// values visible in this month.
	AvgDomain [2]float64
}
