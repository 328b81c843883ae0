package formatter

import (
	"fmt"
	"strings"

	"github.com/ksaito/studypace/internal/domain"
)

const (
	chartBarWidth = 40
	filledBlock   = "█"
	targetMarker  = "┊"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// FormatMonthView renders the burn-up chart for one month: a bar per
// day showing the month-local cumulative against a shared scale, the
// target pacing marker on each bar, and a pace sparkline underneath.
// All values arrive precomputed; this function does no date or series
// arithmetic beyond scaling to the bar width.
func FormatMonthView(view *domain.MonthView) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render(view.Month.String()) + "\n")

	if len(view.Points) == 0 {
		b.WriteString(Dim("no study sessions logged this month") + "\n")
		if len(view.TargetPoints) > 0 {
			last := view.TargetPoints[len(view.TargetPoints)-1]
			b.WriteString(Dim(fmt.Sprintf("goal: %.0f min", last.TargetCumulative)) + "\n")
		}
		return b.String()
	}

	scale := chartScale(view)
	targetByDay := make(map[int]float64, len(view.TargetPoints))
	for _, tp := range view.TargetPoints {
		targetByDay[tp.Date.Day()] = tp.TargetCumulative
	}

	for _, p := range view.Points {
		bar := cumulativeBar(p.MonthlyCumulative, targetByDay[p.Date.Day()], scale)
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			Dim(fmt.Sprintf("%02d", p.Date.Day())),
			bar,
			StyleFg.Render(fmt.Sprintf("%5.0f", p.MonthlyCumulative)),
		))
	}

	if goal, ok := monthGoal(view); ok {
		final := view.Points[len(view.Points)-1].MonthlyCumulative
		pct := final / goal
		b.WriteString(fmt.Sprintf("%s %s\n",
			Dim("goal"),
			StyleFg.Render(fmt.Sprintf("%.0f / %.0f min (%.0f%%)", final, goal, pct*100)),
		))
	}

	b.WriteString("\n" + StyleHeader.Render("60-day pace") + " " +
		Dim(fmt.Sprintf("(%.0f–%.0f min/day)", view.AvgDomain[0], view.AvgDomain[1])) + "\n")
	b.WriteString(paceSparkline(view) + "\n")

	return b.String()
}

// chartScale returns the value the full bar width represents: the
// larger of the month's final cumulative and its goal, so the target
// marker always fits on the bar.
func chartScale(view *domain.MonthView) float64 {
	scale := view.Points[len(view.Points)-1].MonthlyCumulative
	if goal, ok := monthGoal(view); ok && goal > scale {
		scale = goal
	}
	if scale <= 0 {
		scale = 1
	}
	return scale
}

func monthGoal(view *domain.MonthView) (float64, bool) {
	if len(view.TargetPoints) == 0 {
		return 0, false
	}
	return view.TargetPoints[len(view.TargetPoints)-1].TargetCumulative, true
}

// cumulativeBar renders one day's bar with the target pacing marker
// overlaid. Positions are clamped to the bar width.
func cumulativeBar(cumulative, target, scale float64) string {
	filled := clamp(int(cumulative/scale*chartBarWidth), 0, chartBarWidth)

	cells := make([]string, chartBarWidth)
	for i := range cells {
		if i < filled {
			cells[i] = StyleBlue.Render(filledBlock)
		} else {
			cells[i] = Dim("░")
		}
	}
	if target > 0 {
		pos := clamp(int(target/scale*float64(chartBarWidth)), 0, chartBarWidth-1)
		cells[pos] = StyleRed.Render(targetMarker)
	}
	return strings.Join(cells, "")
}

// paceSparkline renders the moving average across the month, scaled
// into the view's display domain so a flat pace still reads as a mid
// band rather than a degenerate line.
func paceSparkline(view *domain.MonthView) string {
	low, high := view.AvgDomain[0], view.AvgDomain[1]
	span := high - low
	if span <= 0 {
		span = 1
	}

	var b strings.Builder
	for _, p := range view.Points {
		frac := (p.MovingAvg60d - low) / span
		idx := clamp(int(frac*float64(len(sparkLevels))), 0, len(sparkLevels)-1)
		b.WriteString(StyleYellow.Render(string(sparkLevels[idx])))
	}
	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
