package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/stats"
	"github.com/AirMile/dailysync/internal/store"
)

type insightsModel struct {
	store *store.Store
	gen   *diary.Generator

	width  int
	height int

	insights []string
	starters []string
	patterns stats.ActivityPatterns
	impacts  []activityImpactRow
}

type activityImpactRow struct {
	activityID string
	impact     stats.ActivityImpact
}

func newInsightsModel(st *store.Store, gen *diary.Generator) insightsModel {
	return insightsModel{store: st, gen: gen}
}

func (m *insightsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

type insightsDataMsg struct {
	insights []string
	starters []string
	patterns stats.ActivityPatterns
	impacts  []activityImpactRow
}

func (m insightsModel) refresh() tea.Cmd {
	st, gen := m.store, m.gen
	return func() tea.Msg {
		entries := st.GetAllEntries()
		summary := stats.SummaryStats(entries)
		patterns := stats.AnalyzeActivityPatterns(entries)

		// Impact detail for the strongest correlations, best and worst.
		var impacts []activityImpactRow
		for _, c := range patterns.TopPositive {
			impacts = append(impacts, activityImpactRow{
				activityID: c.ActivityID,
				impact:     stats.ActivityImpactOf(entries, c.ActivityID),
			})
			if len(impacts) == 3 {
				break
			}
		}
		for _, c := range patterns.TopNegative {
			impacts = append(impacts, activityImpactRow{
				activityID: c.ActivityID,
				impact:     stats.ActivityImpactOf(entries, c.ActivityID),
			})
			if len(impacts) == 5 {
				break
			}
		}

		return insightsDataMsg{
			insights: gen.PersonalizedInsights(summary, entries),
			starters: gen.ConversationStarters(entries, summary),
			patterns: patterns,
			impacts:  impacts,
		}
	}
}

func (m insightsModel) update(msg tea.Msg) (insightsModel, tea.Cmd) {
	if msg, ok := msg.(insightsDataMsg); ok {
		m.insights = msg.insights
		m.starters = msg.starters
		m.patterns = msg.patterns
		m.impacts = msg.impacts
	}
	return m, nil
}

func (m insightsModel) view() string {
	w := m.width - 4
	half := (w - 2) / 2

	insights := m.renderInsights(half)
	starters := m.renderStarters(half)
	top := lipgloss.JoinHorizontal(lipgloss.Top, insights, starters)

	impacts := m.renderImpacts(w)
	return lipgloss.JoinVertical(lipgloss.Left, top, impacts)
}

func (m insightsModel) renderInsights(w int) string {
	rows := []string{titleStyle.Render("Insights"), ""}
	for _, line := range m.insights {
		rows = append(rows, highlightStyle.Render("• ")+lipgloss.NewStyle().Width(w-8).Render(line))
	}
	if len(m.insights) == 0 {
		rows = append(rows, mutedStyle.Render("Check in for a few days to unlock insights."))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m insightsModel) renderStarters(w int) string {
	rows := []string{titleStyle.Render("Worth reflecting on"), ""}
	for _, line := range m.starters {
		rows = append(rows, warningStyle.Render("? ")+lipgloss.NewStyle().Width(w-8).Render(line))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m insightsModel) renderImpacts(w int) string {
	rows := []string{titleStyle.Render("Activity impact"), ""}

	if len(m.impacts) == 0 {
		rows = append(rows, mutedStyle.Render("Tag activities on at least two days to see what lifts your mood."))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	header := mutedStyle.Render(fmt.Sprintf("  %-16s %8s %8s %8s %10s", "Activity", "With", "Without", "Impact", "Confidence"))
	rows = append(rows, header, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 56))))

	for _, row := range m.impacts {
		imp := row.impact
		if imp.Comparison == stats.ComparisonNoData {
			continue
		}
		delta := fmt.Sprintf("%+.1f", imp.Impact)
		deltaStyled := mutedStyle.Render(delta)
		if imp.Comparison == stats.ComparisonPositive {
			deltaStyled = successStyle.Render(delta)
		} else if imp.Comparison == stats.ComparisonNegative {
			deltaStyled = errorStyle.Render(delta)
		}
		rows = append(rows, fmt.Sprintf("  %-16s %8.1f %8.1f %8s %10s",
			truncate(catalog.ActivityLabel(row.activityID), 16),
			imp.AvgWith, imp.AvgWithout, deltaStyled, imp.Confidence,
		))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
