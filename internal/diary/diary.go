// Package diary turns entries into prose. There is no model behind this:
// everything is rule-based template interpolation over fixed phrase pools.
// Wording varies between calls; which fields are interpolated and which
// branch is taken is deterministic for a given input.
package diary

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/store"
)

// Longest answer snippet quoted verbatim inside an insight frame.
const (
	snippetMaxLen    = 57
	snippetMinAnswer = 20
)

// Generator selects templates with an injected pseudo-random source so tests
// can seed it and assert structure.
type Generator struct {
	rng *rand.Rand
}

// New returns a Generator with an unpredictable source.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewSeeded returns a deterministic Generator for tests.
func NewSeeded(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

// moodCategory classifies a mood level for template selection.
func moodCategory(mood int) string {
	switch {
	case mood >= 4:
		return "positive"
	case mood == 3:
		return "neutral"
	default:
		return "negative"
	}
}

// DiaryEntry generates the diary text for one entry. A missing or off-scale
// mood short-circuits to a fixed fallback sentence.
func (g *Generator) DiaryEntry(e *store.MoodEntry) string {
	if e == nil || !e.HasMood() {
		return fallbackDiaryEntry
	}

	category := moodCategory(e.Mood)
	template := g.pick(diaryTemplates[category])

	moodWord := "okay"
	moodEmoji := "😐"
	if m, ok := catalog.MoodByValue(e.Mood); ok {
		moodWord = strings.ToLower(m.Label)
		moodEmoji = m.Emoji
	}

	replacer := strings.NewReplacer(
		"{moodWord}", moodWord,
		"{moodEmoji}", moodEmoji,
		"{activitySummary}", g.activitySummary(e.Activities),
		"{questionInsight}", g.questionInsight(e),
		"{context}", g.contextualElement(category),
	)
	return replacer.Replace(template)
}

// activitySummary branches on activity count: 0 falls back to a reflection
// phrase, 1 and 2 get dedicated phrasings, 3-4 a joined list, more than 4
// the first three plus a catch-all.
func (g *Generator) activitySummary(activityIDs []string) string {
	labels := make([]string, 0, len(activityIDs))
	for _, id := range activityIDs {
		labels = append(labels, catalog.ActivityLabel(id))
	}

	switch {
	case len(labels) == 0:
		return g.pick(noActivityPhrases)
	case len(labels) == 1:
		return fmt.Sprintf(g.pick(singleActivityPhrases), labels[0])
	case len(labels) == 2:
		return fmt.Sprintf(g.pick(doubleActivityPhrases), labels[0], labels[1])
	case len(labels) <= 4:
		return fmt.Sprintf(g.pick(listActivityPhrases), joinWithAnd(labels))
	default:
		return fmt.Sprintf(g.pick(manyActivityPhrases), strings.Join(labels[:3], ", "))
	}
}

// questionInsight quotes a snippet of the first substantial answer, walking
// the entry's question order. Short or missing answers fall back to a
// generic reflection sentence.
func (g *Generator) questionInsight(e *store.MoodEntry) string {
	var first string
	for _, q := range e.Questions {
		if answer, ok := e.Answers[q.ID]; ok && answer != "" {
			first = answer
			break
		}
	}
	if first == "" {
		// Answers may exist for questions no longer listed on the entry.
		for _, answer := range e.Answers {
			if answer != "" {
				first = answer
				break
			}
		}
	}

	if len([]rune(first)) <= snippetMinAnswer {
		return g.pick(genericInsights)
	}

	snippet := first
	if runes := []rune(first); len(runes) > 60 {
		snippet = string(runes[:snippetMaxLen]) + "..."
	}
	return fmt.Sprintf(g.pick(insightQuoteFrames), snippet)
}

func (g *Generator) contextualElement(category string) string {
	switch category {
	case "positive":
		if g.rng.IntN(2) == 0 {
			return g.pick(encouragementPhrases)
		}
		return g.pick(positiveReflections)
	case "neutral":
		if g.rng.IntN(2) == 0 {
			return g.pick(neutralReflections)
		}
		return g.pick(neutralEncouragements)
	default:
		if g.rng.IntN(2) == 0 {
			return g.pick(supportiveMessages)
		}
		return g.pick(selfCompassion)
	}
}

// joinWithAnd renders "a", "a and b", or "a, b and c".
func joinWithAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}
