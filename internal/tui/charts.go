package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fittrackdev/fittrack/internal/models"
	"github.com/fittrackdev/fittrack/internal/stats"
)

const maxBarWidth = 30

var (
	chartTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentBright)).
			Bold(true)
	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain))
	emptyBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDisabledText))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText))
	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Bold(true)
)

// RenderStreak renders the streak summary line
func RenderStreak(info models.StreakInfo) string {
	if info.LongestStreak == 0 {
		return labelStyle.Render("No streak yet. Log a workout to start one.")
	}

	var b strings.Builder
	if info.CurrentStreak > 0 {
		b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", info.CurrentStreak)))
	} else {
		b.WriteString(labelStyle.Render("No active streak"))
	}
	b.WriteString(labelStyle.Render(fmt.Sprintf("  (longest: %d", info.LongestStreak)))
	if info.LastWorkoutDate != "" {
		b.WriteString(labelStyle.Render(", last workout: " + models.FormatDateShort(info.LastWorkoutDate)))
	}
	b.WriteString(labelStyle.Render(")"))
	return b.String()
}

// RenderWeeklyChart renders the trailing-weeks buckets as a horizontal bar
// chart: one row per week showing session count and volume.
func RenderWeeklyChart(weeks []stats.WeeklyStats) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Weekly volume"))
	b.WriteString("\n")

	maxVolume := 1.0
	for _, w := range weeks {
		if w.TotalVolume > maxVolume {
			maxVolume = w.TotalVolume
		}
	}

	for _, w := range weeks {
		barLen := int(w.TotalVolume / maxVolume * maxBarWidth)
		if w.TotalVolume > 0 && barLen == 0 {
			barLen = 1
		}

		bar := strings.Repeat("█", barLen)
		if barLen == 0 {
			bar = emptyBarStyle.Render("·")
		} else {
			bar = barStyle.Render(bar)
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-7s", w.WeekLabel)),
			bar,
			labelStyle.Render(fmt.Sprintf("%.0f kg, %d session(s)", w.TotalVolume, w.SessionCount))))
	}
	return b.String()
}

// sparkline glyphs, lightest to heaviest
var sparks = []rune("▁▂▃▄▅▆▇█")

// RenderWeightTrend renders the body-weight series as a sparkline with the
// first/last values and dates spelled out.
func RenderWeightTrend(points []stats.TrendPoint) string {
	var b strings.Builder
	b.WriteString(chartTitleStyle.Render("Weight trend (kg)"))
	b.WriteString("\n")

	minW, maxW := points[0].WeightKg, points[0].WeightKg
	for _, p := range points {
		if p.WeightKg < minW {
			minW = p.WeightKg
		}
		if p.WeightKg > maxW {
			maxW = p.WeightKg
		}
	}
	span := maxW - minW
	if span == 0 {
		span = 1
	}

	var line strings.Builder
	for _, p := range points {
		idx := int((p.WeightKg - minW) / span * float64(len(sparks)-1))
		line.WriteRune(sparks[idx])
	}
	b.WriteString(barStyle.Render(line.String()))
	b.WriteString("\n")

	first, last := points[0], points[len(points)-1]
	b.WriteString(labelStyle.Render(fmt.Sprintf("%s %.1f → %s %.1f (%+.1f kg)\n",
		first.Label, first.WeightKg, last.Label, last.WeightKg, last.WeightKg-first.WeightKg)))
	return b.String()
}
