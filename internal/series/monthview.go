package series

import (
	"github.com/ksaito/studypace/internal/domain"
)

// Fallback axis bounds used when a month has no visible moving-average
// values, so an empty month still renders a stable axis.
const (
	fallbackDomainLow  = 0
	fallbackDomainHigh = 300
)

// minDomainPadding keeps the moving-average axis from collapsing to a
// zero-height band when every visible value is identical.
const minDomainPadding = 20

// ComposeMonthView slices the full daily series to the selected month
// and derives everything the renderer needs: a month-local cumulative
// that resets at the month boundary, a linear pacing target toward the
// month's goal, and the display domain for the moving average. The
// moving average itself stays full-history; a value early in the month
// deliberately reflects averaging into prior months.
//
// Every step is total: an empty slice, an absent goal, or an empty
// series degrade to empty sequences and the fallback domain, never an
// error.
func ComposeMonthView(daily []domain.DailyPoint, goals []domain.MonthlyGoal, month domain.Month) *domain.MonthView {
	view := &domain.MonthView{Month: month}

	var cumulative float64
	for _, p := range daily {
		if !month.Contains(p.Date) {
			continue
		}
		cumulative += p.Minutes
		view.Points = append(view.Points, domain.MonthPoint{
			Date:              p.Date,
			Minutes:           p.Minutes,
			MonthlyCumulative: cumulative,
			MovingAvg60d:      p.MovingAvg60d,
		})
	}

	view.TargetPoints = targetCurve(goalFor(goals, month), month)
	view.AvgDomain = avgDisplayDomain(view.Points)
	return view
}

// goalFor returns the goal minutes for the month, taking the first
// record whose year and month match. Absent goals resolve to zero.
func goalFor(goals []domain.MonthlyGoal, month domain.Month) float64 {
	for _, g := range goals {
		if g.Month == month {
			return g.GoalMinutes
		}
	}
	return 0
}

// targetCurve synthesizes the straight-line pacing target: zero at day
// zero, the full goal at the last day of the month. A zero or absent
// goal yields no curve at all rather than a flat zero line.
func targetCurve(goalMinutes float64, month domain.Month) []domain.TargetPoint {
	if goalMinutes <= 0 {
		return nil
	}
	days := month.Days()
	start := month.Start()
	points := make([]domain.TargetPoint, 0, days)
	for day := 1; day <= days; day++ {
		points = append(points, domain.TargetPoint{
			Date:             start.AddDate(0, 0, day-1),
			TargetCumulative: goalMinutes * float64(day) / float64(days),
		})
	}
	return points
}

// avgDisplayDomain computes the [low, high] axis bounds for the
// moving-average values visible in the month, padded by 20% of their
// spread so the line never hugs the chart edge. Identical values force
// a minimum buffer; the low bound is floored at zero only while the
// data itself is non-negative.
func avgDisplayDomain(points []domain.MonthPoint) [2]float64 {
	if len(points) == 0 {
		return [2]float64{fallbackDomainLow, fallbackDomainHigh}
	}

	minV, maxV := points[0].MovingAvg60d, points[0].MovingAvg60d
	for _, p := range points[1:] {
		if p.MovingAvg60d < minV {
			minV = p.MovingAvg60d
		}
		if p.MovingAvg60d > maxV {
			maxV = p.MovingAvg60d
		}
	}

	padding := (maxV - minV) * 0.2
	if padding == 0 {
		padding = minDomainPadding
	}

	low := minV - padding
	if low < 0 && minV >= 0 {
		low = 0
	}
	return [2]float64{low, maxV + padding}
}
