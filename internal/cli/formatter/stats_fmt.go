package formatter

import (
	"fmt"
	"strings"

	"github.com/ksaito/studypace/internal/service"
)

// FormatSummary renders the full-history overview: totals, current
// pace, and the month-by-month achievement table.
func FormatSummary(s *service.Summary) string {
	var b strings.Builder

	b.WriteString(StyleHeader.Render("Study progress") + "\n")

	if s.TotalMinutes == 0 && len(s.Months) == 0 {
		b.WriteString(Dim("no data yet — run 'studypace sync' first") + "\n")
		return b.String()
	}

	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("total:"),
		StyleBold.Render(formatMinutes(s.TotalMinutes)),
		Dim("pace:"),
		StyleBold.Render(fmt.Sprintf("%.1f min/day", s.CurrentPace)),
	))
	b.WriteString(fmt.Sprintf("%s %s → %s\n",
		Dim("span:"),
		s.FirstDate.Format("2006-01-02"),
		s.LastDate.Format("2006-01-02"),
	))
	if s.LastSyncedAt != nil {
		b.WriteString(Dim(fmt.Sprintf("synced: %s", s.LastSyncedAt.Format("2006-01-02 15:04"))) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%-9s %9s %9s %s", "month", "actual", "goal", "achievement")) + "\n")
	for _, m := range s.Months {
		line := fmt.Sprintf("%-9s %9.0f %9s %s",
			m.Month.String(),
			m.ActualMinutes,
			goalCell(m.GoalMinutes),
			achievementCell(m),
		)
		b.WriteString(line + "\n")
	}

	return b.String()
}

func formatMinutes(minutes float64) string {
	h := int(minutes) / 60
	m := int(minutes) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

func goalCell(goal float64) string {
	if goal <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f", goal)
}

func achievementCell(m service.MonthTotal) string {
	if m.GoalMinutes <= 0 {
		return Dim("no goal")
	}
	rate := m.AchievementRate()
	cell := fmt.Sprintf("%.0f%%", rate)
	switch {
	case rate >= 100:
		return StyleGreen.Render(cell)
	case rate >= 50:
		return StyleYellow.Render(cell)
	default:
		return StyleRed.Render(cell)
	}
}
