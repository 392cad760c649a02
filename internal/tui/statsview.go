package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/checkin"
	"github.com/AirMile/dailysync/internal/stats"
)

// maxChartBars keeps the year view readable: only the most recent days fit.
const maxChartBars = 30

type statsModel struct {
	session *checkin.Session
	width   int
	height  int

	period stats.Period
	report checkin.StatsReport

	chart barchart.Model
}

func newStatsModel(session *checkin.Session) statsModel {
	return statsModel{
		session: session,
		period:  stats.PeriodWeek,
		chart:   barchart.New(60, 10),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statsDataMsg struct {
	report checkin.StatsReport
}

func (s statsModel) refresh() tea.Cmd {
	session, period := s.session, s.period
	return func() tea.Msg {
		return statsDataMsg{report: session.RequestStats(period)}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.report = msg.report
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Right):
			s.period = nextPeriod(s.period)
			return s, s.refresh()
		case key.Matches(msg, keys.Left):
			s.period = prevPeriod(s.period)
			return s, s.refresh()
		}
	}
	return s, nil
}

func nextPeriod(p stats.Period) stats.Period {
	switch p {
	case stats.PeriodWeek:
		return stats.PeriodMonth
	case stats.PeriodMonth:
		return stats.PeriodYear
	default:
		return stats.PeriodWeek
	}
}

func prevPeriod(p stats.Period) stats.Period {
	switch p {
	case stats.PeriodYear:
		return stats.PeriodMonth
	case stats.PeriodMonth:
		return stats.PeriodWeek
	default:
		return stats.PeriodYear
	}
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if s.height > 34 {
		chartHeight = 14
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	points := s.report.Trends.Trends
	if len(points) > maxChartBars {
		points = points[len(points)-maxChartBars:]
	}

	var bars []barchart.BarData
	for _, p := range points {
		level := int(math.Round(p.Mood))
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(moodColor(level)))
		bars = append(bars, barchart.BarData{
			Label: p.Date[5:], // MM-DD
			Values: []barchart.BarValue{{
				Name:  p.Date,
				Value: p.Mood,
				Style: style,
			}},
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ", s.periodTabs(),
	)

	if s.report.Summary.TotalEntries == 0 {
		return panelStyle.Width(w).Render(
			header + "\n\n" + mutedStyle.Render("No data yet. Complete a few check-ins to see your trends."),
		)
	}

	chartView := s.chart.View()
	headline := s.renderHeadline()
	distribution := s.renderDistribution(w)
	insights := s.renderTimeInsights()
	nav := mutedStyle.Render("  ←/→: period")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", headline, "", distribution, insights, "", nav,
		),
	)
}

var periodLabels = map[stats.Period]string{
	stats.PeriodWeek:  "Week",
	stats.PeriodMonth: "Month",
	stats.PeriodYear:  "Year",
}

func (s statsModel) periodTabs() string {
	tabs := make([]string, 0, 3)
	for _, p := range []stats.Period{stats.PeriodWeek, stats.PeriodMonth, stats.PeriodYear} {
		if p == s.period {
			tabs = append(tabs, activeTabStyle.Render(periodLabels[p]))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(periodLabels[p]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (s statsModel) renderHeadline() string {
	summary := s.report.Summary
	trends := s.report.Trends
	streaks := s.report.Streaks

	change := fmt.Sprintf("%+.1f", trends.Change)
	changeStyled := mutedStyle.Render(change)
	if trends.Change > 0 {
		changeStyled = successStyle.Render("↑ " + change)
	} else if trends.Change < 0 {
		changeStyled = warningStyle.Render("↓ " + change)
	}

	parts := []string{
		fmt.Sprintf("  Entries: %s", highlightStyle.Render(fmt.Sprintf("%d", summary.TotalEntries))),
		fmt.Sprintf("Average: %s", highlightStyle.Render(fmt.Sprintf("%.1f", trends.Average))),
		fmt.Sprintf("Trend: %s", changeStyled),
		fmt.Sprintf("Streak: %s", successStyle.Render(fmt.Sprintf("🔥 %d (best %d)", streaks.Current, streaks.Longest))),
	}
	return strings.Join(parts, "   ")
}

func (s statsModel) renderDistribution(w int) string {
	counts := s.report.Summary.MoodDistribution
	total := s.report.Summary.TotalEntries
	if total == 0 {
		return ""
	}

	barWidth := min(w-30, 40)
	if barWidth < 10 {
		barWidth = 10
	}

	rows := []string{mutedStyle.Render("  Mood distribution")}
	for _, m := range catalog.Moods() {
		count := counts[m.Value]
		pct := int(math.Round(float64(count) / float64(total) * 100))
		filled := barWidth * count / total
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color)).
			Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf("  %s %-8s %s %3d%% (%d)", m.Emoji, m.Label, bar, pct, count))
	}
	return strings.Join(rows, "\n")
}

func (s statsModel) renderTimeInsights() string {
	insights := s.report.Time.Insights
	if len(insights) == 0 {
		return ""
	}
	rows := []string{"", mutedStyle.Render("  Patterns")}
	for _, line := range insights {
		rows = append(rows, "  "+highlightStyle.Render("•")+" "+line)
	}
	return strings.Join(rows, "\n")
}
