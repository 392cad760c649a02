package diary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/stats"
	"github.com/AirMile/dailysync/internal/store"
)

// WeeklySummary narrates a window of entries: trend classification by mean
// mood (positive >= 4, steady >= 3, challenging below), plus the top
// activities of the window.
func (g *Generator) WeeklySummary(entries []store.MoodEntry) string {
	if len(entries) == 0 {
		return fallbackWeeklySummary
	}

	var total float64
	for i := range entries {
		total += float64(entries[i].Mood)
	}
	average := total / float64(len(entries))

	trend := "challenging"
	switch {
	case average >= 4:
		trend = "positive"
	case average >= 3:
		trend = "steady"
	}

	template := g.pick(weeklyTemplates[trend])
	text := fmt.Sprintf(template, trend, average)
	return strings.Replace(text, "{activities}", g.topActivityPhrase(entries), 1)
}

// topActivityPhrase renders the 1-2 most frequent activity labels of the
// window, or a generic phrase when the window has none.
func (g *Generator) topActivityPhrase(entries []store.MoodEntry) string {
	frequency := map[string]int{}
	for i := range entries {
		for _, id := range entries[i].Activities {
			frequency[id]++
		}
	}
	if len(frequency) == 0 {
		return "various activities"
	}

	type count struct {
		id string
		n  int
	}
	ranked := make([]count, 0, len(frequency))
	for id, n := range frequency {
		ranked = append(ranked, count{id: id, n: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return ranked[i].id < ranked[j].id
	})

	if len(ranked) > 2 {
		ranked = ranked[:2]
	}
	labels := make([]string, len(ranked))
	for i, c := range ranked {
		labels[i] = catalog.ActivityLabel(c.id)
	}
	return strings.Join(labels, " and ")
}

// PersonalizedInsights derives at most three insight lines in a fixed
// category order: overall mood, streak, best activity. A random general
// encouragement backfills when fewer than two rules fire.
func (g *Generator) PersonalizedInsights(summary stats.Summary, entries []store.MoodEntry) []string {
	if len(entries) == 0 {
		return []string{
			"Keep tracking your moods to unlock personalized insights!",
			"Every entry helps build a clearer picture of your patterns.",
		}
	}

	var insights []string

	if summary.AverageMood > 0 {
		switch {
		case summary.AverageMood >= 4:
			insights = append(insights, "You're maintaining consistently positive moods - whatever you're doing, keep it up!")
		case summary.AverageMood >= 3:
			insights = append(insights, "Your mood has been steady and balanced. This stability is a strength to build upon.")
		default:
			insights = append(insights, "You've been going through a challenging period. Remember that reaching out for support is a sign of strength.")
		}
	}

	if summary.Streak.Current >= 7 {
		insights = append(insights, fmt.Sprintf("Amazing! You've been consistently tracking for %d days. This self-awareness is a powerful habit.", summary.Streak.Current))
	} else if summary.Streak.Current >= 3 {
		insights = append(insights, fmt.Sprintf("You're building momentum with a %d-day tracking streak. Consistency is key!", summary.Streak.Current))
	}

	if summary.BestMoodActivity != "" {
		if a, ok := catalog.ActivityByID(summary.BestMoodActivity); ok {
			insights = append(insights, fmt.Sprintf("%s seems to have the most positive impact on your mood. Consider incorporating it more often!", a.Label))
		}
	}

	if len(insights) < 2 {
		insights = append(insights, g.pick(generalEncouragements))
	}

	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}

// ConversationStarters suggests exactly three prompts for the next check-in,
// seeded by the last week's mood and the best-mood activity, topped up from
// a general pool without duplicates.
func (g *Generator) ConversationStarters(entries []store.MoodEntry, summary stats.Summary) []string {
	if len(entries) == 0 {
		return []string{
			"What's one thing you're looking forward to this week?",
			"How has your mood been lately?",
			"What activities make you feel most like yourself?",
		}
	}

	recent := entries
	if len(recent) > 7 {
		recent = recent[:7]
	}
	var total float64
	for i := range recent {
		total += float64(recent[i].Mood)
	}
	average := total / float64(len(recent))

	var suggestions []string
	switch {
	case average >= 4:
		suggestions = append(suggestions,
			"What's been contributing to your positive mood lately?",
			"How can you maintain this positive energy going forward?")
	case average <= 2:
		suggestions = append(suggestions,
			"What kind of support would be most helpful right now?",
			"Are there any small changes that might help you feel better?")
	default:
		suggestions = append(suggestions,
			"What would help you feel more energized this week?",
			"What's one thing you're grateful for right now?")
	}

	if summary.BestMoodActivity != "" {
		if a, ok := catalog.ActivityByID(summary.BestMoodActivity); ok {
			suggestions = append(suggestions, fmt.Sprintf("How do you feel after engaging with %s?", strings.ToLower(a.Label)))
		}
	}

	for len(suggestions) < 3 {
		candidate := g.pick(generalStarterQuestions)
		duplicate := false
		for _, s := range suggestions {
			if s == candidate {
				duplicate = true
				break
			}
		}
		if !duplicate {
			suggestions = append(suggestions, candidate)
		}
	}

	return suggestions[:3]
}
