// Package stats computes aggregates over stored mood entries. Every function
// is a pure transformation of its input; exported entry points anchor "now"
// internally and delegate to deterministic variants used by tests.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/AirMile/dailysync/internal/store"
)

// Period selects the trend window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

func (p Period) window() time.Duration {
	switch p {
	case PeriodMonth:
		return 30 * 24 * time.Hour
	case PeriodYear:
		return 365 * 24 * time.Hour
	default:
		return 7 * 24 * time.Hour
	}
}

// TrendPoint is the mean mood of one calendar day.
type TrendPoint struct {
	Date string
	Mood float64
}

// MoodTrends is the windowed daily-mean series plus its overall shape.
type MoodTrends struct {
	Trends  []TrendPoint
	Average float64 // mean of daily means, 1 decimal
	Change  float64 // last-7 mean minus first-7 mean, 0 below 7 points
}

// CalculateMoodTrends filters entries to the period window ending now,
// groups them by calendar day, and averages per day.
func CalculateMoodTrends(entries []store.MoodEntry, period Period) MoodTrends {
	return calculateMoodTrendsAt(entries, period, time.Now())
}

func calculateMoodTrendsAt(entries []store.MoodEntry, period Period, now time.Time) MoodTrends {
	cutoff := now.Add(-period.window())

	daily := make(map[string][]int)
	for i := range entries {
		e := &entries[i]
		if e.Date.Before(cutoff) {
			continue
		}
		day := e.Day()
		daily[day] = append(daily[day], e.Mood)
	}
	if len(daily) == 0 {
		return MoodTrends{Trends: []TrendPoint{}}
	}

	trends := make([]TrendPoint, 0, len(daily))
	for day, moods := range daily {
		trends = append(trends, TrendPoint{Date: day, Mood: meanInt(moods)})
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })

	var total float64
	for _, p := range trends {
		total += p.Mood
	}
	average := total / float64(len(trends))

	var change float64
	if len(trends) >= 7 {
		first := trends[:7]
		last := trends[len(trends)-7:]
		change = meanPoints(last) - meanPoints(first)
	}

	return MoodTrends{
		Trends:  trends,
		Average: round1(average),
		Change:  round1(change),
	}
}

// MoodDistribution returns mood value -> rounded percentage of all entries.
// Percentages are rounded independently and may not sum to exactly 100.
func MoodDistribution(entries []store.MoodEntry) map[int]int {
	dist := map[int]int{}
	if len(entries) == 0 {
		return dist
	}
	counts := map[int]int{}
	for i := range entries {
		counts[entries[i].Mood]++
	}
	total := float64(len(entries))
	for mood, count := range counts {
		dist[mood] = int(math.Round(float64(count) / total * 100))
	}
	return dist
}

// ActivityCorrelation is the observed relationship between one activity and
// mood across the entries it appears in.
type ActivityCorrelation struct {
	ActivityID  string
	AverageMood float64 // 1 decimal
	Frequency   int
	Impact      string // positive, negative, neutral
}

// ActivityPatterns summarizes mood correlations per activity.
type ActivityPatterns struct {
	Correlations map[string]ActivityCorrelation
	TopPositive  []ActivityCorrelation // mean > 3, best first, max 5
	TopNegative  []ActivityCorrelation // mean < 3, worst first, max 5
}

// AnalyzeActivityPatterns computes the mean mood per activity. Activities
// appearing in fewer than 2 entries are excluded from the top lists.
func AnalyzeActivityPatterns(entries []store.MoodEntry) ActivityPatterns {
	result := ActivityPatterns{
		Correlations: map[string]ActivityCorrelation{},
		TopPositive:  []ActivityCorrelation{},
		TopNegative:  []ActivityCorrelation{},
	}
	if len(entries) == 0 {
		return result
	}

	activityMoods := map[string][]int{}
	for i := range entries {
		for _, id := range entries[i].Activities {
			activityMoods[id] = append(activityMoods[id], entries[i].Mood)
		}
	}

	type rawCorrelation struct {
		ActivityCorrelation
		raw float64
	}
	var frequent []rawCorrelation
	for id, moods := range activityMoods {
		avg := meanInt(moods)
		impact := "neutral"
		if avg > 3 {
			impact = "positive"
		} else if avg < 3 {
			impact = "negative"
		}
		c := ActivityCorrelation{
			ActivityID:  id,
			AverageMood: round1(avg),
			Frequency:   len(moods),
			Impact:      impact,
		}
		result.Correlations[id] = c
		if len(moods) >= 2 {
			frequent = append(frequent, rawCorrelation{ActivityCorrelation: c, raw: avg})
		}
	}

	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].raw != frequent[j].raw {
			return frequent[i].raw > frequent[j].raw
		}
		return frequent[i].ActivityID < frequent[j].ActivityID
	})

	for _, c := range frequent {
		if c.raw > 3 && len(result.TopPositive) < 5 {
			result.TopPositive = append(result.TopPositive, c.ActivityCorrelation)
		}
	}
	for i := len(frequent) - 1; i >= 0; i-- {
		c := frequent[i]
		if c.raw < 3 && len(result.TopNegative) < 5 {
			result.TopNegative = append(result.TopNegative, c.ActivityCorrelation)
		}
	}

	return result
}

// StreakInfo is the cached pair shown in summaries.
type StreakInfo struct {
	Current int
	Longest int
}

// Summary aggregates the headline numbers for the stats view.
type Summary struct {
	TotalEntries       int
	AverageMood        float64 // 1 decimal
	MoodDistribution   map[int]int // raw counts, not percentages
	MostCommonActivity string
	BestMoodActivity   string
	Streak             StreakInfo
}

// SummaryStats never fails: empty input yields the zero summary.
func SummaryStats(entries []store.MoodEntry) Summary {
	return summaryStatsAt(entries, time.Now())
}

func summaryStatsAt(entries []store.MoodEntry, now time.Time) Summary {
	s := Summary{MoodDistribution: map[int]int{}}
	if len(entries) == 0 {
		return s
	}

	s.TotalEntries = len(entries)
	var total float64
	for i := range entries {
		total += float64(entries[i].Mood)
		s.MoodDistribution[entries[i].Mood]++
	}
	s.AverageMood = round1(total / float64(len(entries)))

	frequency := map[string]int{}
	for i := range entries {
		for _, id := range entries[i].Activities {
			frequency[id]++
		}
	}
	best := 0
	for id, n := range frequency {
		if n > best || (n == best && id < s.MostCommonActivity) {
			best = n
			s.MostCommonActivity = id
		}
	}

	patterns := AnalyzeActivityPatterns(entries)
	if len(patterns.TopPositive) > 0 {
		s.BestMoodActivity = patterns.TopPositive[0].ActivityID
	}

	streaks := calculateStreaksAt(entries, now)
	s.Streak = StreakInfo{Current: streaks.Current, Longest: streaks.Longest}
	return s
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum int
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

func meanPoints(points []TrendPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Mood
	}
	return sum / float64(len(points))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
