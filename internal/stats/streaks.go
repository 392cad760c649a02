package stats

import (
	"sort"
	"time"

	"github.com/AirMile/dailysync/internal/store"
)

const dayLayout = "2006-01-02"

// StreakRun is one maximal run of consecutive calendar days with entries.
type StreakRun struct {
	Length    int
	StartDate string
	EndDate   string
}

// Streaks is the streak state derived from the entry date set.
type Streaks struct {
	Current int
	Longest int
	History []StreakRun // newest run first
}

// CalculateStreaks derives current and longest streaks from one canonical
// unique-date set. The current streak counts consecutive days backward from
// the most recent entry day, which must be today or yesterday to count.
func CalculateStreaks(entries []store.MoodEntry) Streaks {
	return calculateStreaksAt(entries, time.Now())
}

func calculateStreaksAt(entries []store.MoodEntry, now time.Time) Streaks {
	result := Streaks{History: []StreakRun{}}
	if len(entries) == 0 {
		return result
	}

	seen := map[string]bool{}
	var days []string
	for i := range entries {
		day := entries[i].Day()
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	today := now.Local().Format(dayLayout)
	yesterday := now.Local().AddDate(0, 0, -1).Format(dayLayout)

	// Current streak: anchored at the most recent day.
	if days[0] == today || days[0] == yesterday {
		result.Current = 1
		for i := 1; i < len(days); i++ {
			if days[i] == prevDay(days[i-1]) {
				result.Current++
			} else {
				break
			}
		}
	}

	// Longest streak and run history over the full date set.
	run := StreakRun{Length: 1, StartDate: days[len(days)-1], EndDate: days[len(days)-1]}
	for i := len(days) - 2; i >= 0; i-- {
		if days[i] == nextDay(days[i+1]) {
			run.Length++
			run.EndDate = days[i]
			continue
		}
		result.History = append(result.History, run)
		run = StreakRun{Length: 1, StartDate: days[i], EndDate: days[i]}
	}
	result.History = append(result.History, run)

	for _, r := range result.History {
		if r.Length > result.Longest {
			result.Longest = r.Length
		}
	}

	// Newest run first.
	for i, j := 0, len(result.History)-1; i < j; i, j = i+1, j-1 {
		result.History[i], result.History[j] = result.History[j], result.History[i]
	}
	return result
}

func prevDay(day string) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dayLayout)
}

func nextDay(day string) string {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(dayLayout)
}
