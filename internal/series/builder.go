package series

import (
	"time"

	"github.com/ksaito/studypace/internal/domain"
)

// movingAvgWindow is the maximum width of the trailing pace average.
const movingAvgWindow = 60

// BuildDaily projects observations onto a gap-filled daily series
// spanning the full observed history. Observations may arrive unsorted
// and with duplicate dates; same-day entries are summed, absent days
// carry zero minutes. Each point gets the running full-history
// cumulative total and a trailing moving average whose window widens
// from 1 up to 60 days, so the average is defined from the first point
// on. Zero observations produce an empty series, which downstream
// stages treat as "no history yet".
func BuildDaily(obs []domain.Observation) []domain.DailyPoint {
	if len(obs) == 0 {
		return nil
	}

	byDay := make(map[time.Time]float64)
	var first, last time.Time
	for i, o := range obs {
		day := time.Date(o.Date.Year(), o.Date.Month(), o.Date.Day(), 0, 0, 0, 0, time.UTC)
		byDay[day] += o.Minutes
		if i == 0 || day.Before(first) {
			first = day
		}
		if i == 0 || day.After(last) {
			last = day
		}
	}

	n := int(last.Sub(first).Hours()/24) + 1
	points := make([]domain.DailyPoint, 0, n)

	var cumulative, windowSum float64
	for day, i := first, 0; !day.After(last); day, i = day.AddDate(0, 0, 1), i+1 {
		minutes := byDay[day]
		cumulative += minutes

		windowSum += minutes
		width := movingAvgWindow
		if i+1 < width {
			width = i + 1
		} else if i >= movingAvgWindow {
			windowSum -= points[i-movingAvgWindow].Minutes
		}

		points = append(points, domain.DailyPoint{
			Date:            day,
			Minutes:         minutes,
			CumulativeTotal: cumulative,
			MovingAvg60d:    windowSum / float64(width),
		})
	}
	return points
}
