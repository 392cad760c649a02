package stats

import (
	"slices"

	"github.com/AirMile/dailysync/internal/store"
)

// Comparison and confidence markers for ActivityImpact. ComparisonNoData is
// distinct from neutral: it means there is no evidence, not no effect.
const (
	ComparisonPositive = "positive"
	ComparisonNegative = "negative"
	ComparisonNeutral  = "neutral"
	ComparisonNoData   = "no data"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
	ConfidenceNone   = "none"
)

// ActivityImpact compares mean mood with and without one activity.
type ActivityImpact struct {
	Impact     float64 // signed difference, 1 decimal
	Comparison string
	Confidence string
	AvgWith    float64 // 1 decimal
	AvgWithout float64 // 1 decimal
	SampleSize int     // entries containing the activity
}

// ActivityImpactOf measures how entries containing activityID differ from the
// rest. The ±0.3 threshold separates positive/negative from neutral.
func ActivityImpactOf(entries []store.MoodEntry, activityID string) ActivityImpact {
	if len(entries) == 0 {
		return ActivityImpact{Comparison: ComparisonNeutral, Confidence: ConfidenceLow}
	}

	var with, without []int
	for i := range entries {
		if slices.Contains(entries[i].Activities, activityID) {
			with = append(with, entries[i].Mood)
		} else {
			without = append(without, entries[i].Mood)
		}
	}

	if len(with) == 0 {
		return ActivityImpact{Comparison: ComparisonNoData, Confidence: ConfidenceNone}
	}

	avgWith := meanInt(with)
	avgWithout := avgWith
	if len(without) > 0 {
		avgWithout = meanInt(without)
	}
	impact := round1(avgWith - avgWithout)

	comparison := ComparisonNeutral
	if impact > 0.3 {
		comparison = ComparisonPositive
	} else if impact < -0.3 {
		comparison = ComparisonNegative
	}

	confidence := ConfidenceLow
	if len(with) >= 5 && len(without) >= 5 {
		confidence = ConfidenceHigh
	} else if len(with) >= 3 {
		confidence = ConfidenceMedium
	}

	return ActivityImpact{
		Impact:     impact,
		Comparison: comparison,
		Confidence: confidence,
		AvgWith:    round1(avgWith),
		AvgWithout: round1(avgWithout),
		SampleSize: len(with),
	}
}
