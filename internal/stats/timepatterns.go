package stats

import (
	"fmt"
	"sort"

	"github.com/AirMile/dailysync/internal/store"
)

// TimeBucket is the aggregate mood for one weekday or time-of-day block.
type TimeBucket struct {
	Average float64 // 1 decimal
	Count   int
}

// TimePatterns buckets entries by weekday and by 4-hour block.
type TimePatterns struct {
	ByWeekday   map[string]TimeBucket
	ByTimeOfDay map[string]TimeBucket
	Insights    []string
}

// TimePatternsOf computes per-bucket mean mood and emits insight lines for
// the best and worst weekday. Buckets with fewer than 2 samples carry no
// insight weight.
func TimePatternsOf(entries []store.MoodEntry) TimePatterns {
	result := TimePatterns{
		ByWeekday:   map[string]TimeBucket{},
		ByTimeOfDay: map[string]TimeBucket{},
		Insights:    []string{},
	}
	if len(entries) == 0 {
		return result
	}

	weekdayMoods := map[string][]int{}
	blockMoods := map[string][]int{}
	for i := range entries {
		local := entries[i].Date.Local()
		weekday := local.Weekday().String()
		weekdayMoods[weekday] = append(weekdayMoods[weekday], entries[i].Mood)

		block := local.Hour() / 4 * 4
		label := fmt.Sprintf("%d:00-%d:59", block, block+3)
		blockMoods[label] = append(blockMoods[label], entries[i].Mood)
	}

	for day, moods := range weekdayMoods {
		result.ByWeekday[day] = TimeBucket{Average: round1(meanInt(moods)), Count: len(moods)}
	}
	for label, moods := range blockMoods {
		result.ByTimeOfDay[label] = TimeBucket{Average: round1(meanInt(moods)), Count: len(moods)}
	}

	type dayAvg struct {
		day string
		avg float64
	}
	var ranked []dayAvg
	for day, bucket := range result.ByWeekday {
		if bucket.Count >= 2 {
			ranked = append(ranked, dayAvg{day: day, avg: bucket.Average})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].avg != ranked[j].avg {
			return ranked[i].avg > ranked[j].avg
		}
		return ranked[i].day < ranked[j].day
	})

	if len(ranked) > 0 {
		best := ranked[0]
		result.Insights = append(result.Insights,
			fmt.Sprintf("Your best day is typically %s (avg: %.1f)", best.day, best.avg))
		if len(ranked) > 1 {
			worst := ranked[len(ranked)-1]
			result.Insights = append(result.Insights,
				fmt.Sprintf("Your most challenging day is typically %s (avg: %.1f)", worst.day, worst.avg))
		}
	}
	return result
}
