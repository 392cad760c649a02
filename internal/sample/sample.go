// Package sample seeds the store with realistic demo entries so the stats
// and diary views have something to show on a fresh install.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/store"
)

// Answer templates per question category. Categories without templates fall
// back to the generic pool.
var answerTemplates = map[string][]string{
	"happiness": {
		"Spending quality time with my family and friends",
		"Achieving personal goals I've set for myself",
		"Being in nature and enjoying peaceful moments",
		"Creating something meaningful or helping others",
		"Making progress on projects I care about",
	},
	"gratitude": {
		"My health and the health of my loved ones",
		"Having a supportive network of friends and family",
		"The opportunities I have to learn and grow",
		"Access to basic necessities and small daily comforts",
		"Being able to pursue things that bring me joy",
	},
	"achievement": {
		"Completing my education and developing new skills",
		"Building meaningful relationships with people I care about",
		"Overcoming personal challenges that once seemed impossible",
		"Making positive contributions to my community",
		"Learning to maintain better work-life balance",
	},
	"stress": {
		"Work deadlines and overwhelming project loads",
		"Financial planning and managing monthly expenses",
		"Balancing multiple responsibilities at once",
		"Uncertainty about future career decisions",
		"Managing expectations from family and friends",
	},
	"worry": {
		"Whether I'm making the right life choices",
		"The health and wellbeing of family members",
		"Economic stability and job security",
		"Maintaining important relationships over time",
	},
	"energy": {
		"Regular exercise and staying physically active",
		"Getting enough quality sleep each night",
		"Eating nutritious meals and staying hydrated",
		"Engaging in creative activities and hobbies",
		"Spending time outdoors in fresh air",
	},
	"learning": {
		"I'm more resilient than I previously thought",
		"Setting boundaries is essential for my wellbeing",
		"Small daily habits compound into significant changes",
		"It's okay to ask for help when I need it",
		"Taking breaks actually makes me more productive",
	},
}

var genericAnswers = []string{
	"I've been reflecting on this a lot lately and see slow progress",
	"This is something I want to give more attention in the coming weeks",
	"Talking it through with someone close to me has helped a great deal",
	"I notice it changes day to day, but the overall direction feels right",
}

// Activity pools skewed by mood so the correlation views have signal.
var (
	goodDayActivities = []string{"exercise", "friends", "nature", "reading", "productive", "music", "family", "walk", "cooking"}
	badDayActivities  = []string{"stressed", "tired", "deadline", "headache", "anxious", "cleaning"}
	anyDayActivities  = []string{"meeting", "movies", "shopping", "alone_time", "learning", "phone_call"}
)

// Generate inserts roughly daysBack days of completed demo entries, starting
// yesterday and walking backward. About one day in ten is skipped so streak
// views look organic. Returns the number of entries created.
func Generate(st *store.Store, gen *diary.Generator, daysBack int) (int, error) {
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	yesterday := time.Now().AddDate(0, 0, -1)

	created := 0
	for i := 0; i < daysBack; i++ {
		if rng.IntN(10) == 0 {
			continue
		}

		day := yesterday.AddDate(0, 0, -i)
		at := time.Date(day.Year(), day.Month(), day.Day(), 8+rng.IntN(12), rng.IntN(60), 0, 0, time.Local)
		mood := sampleMood(rng, at.Weekday())

		questions := catalog.SampleQuestions(rng, catalog.QuestionsByMood(mood), 3)
		answers := make(map[int]string, len(questions))
		for _, q := range questions {
			answers[q.ID] = sampleAnswer(rng, q.Category)
		}

		entry := &store.MoodEntry{
			ID:          uuid.NewString(),
			Date:        at,
			Timestamp:   at.UnixMilli(),
			CompletedAt: &at,
			Mood:        mood,
			Activities:  sampleActivities(rng, mood),
			Questions:   questions,
			Answers:     answers,
			Completed:   true,
		}
		entry.DiaryText = gen.DiaryEntry(entry)

		if _, err := st.SaveEntry(entry); err != nil {
			return created, fmt.Errorf("seed entry %d: %w", i, err)
		}
		created++
	}
	return created, nil
}

// sampleMood biases weekends up and Mondays down around a base of okay.
func sampleMood(rng *rand.Rand, weekday time.Weekday) int {
	mood := 2 + rng.IntN(3) // 2-4
	switch weekday {
	case time.Saturday, time.Sunday:
		mood += rng.IntN(2)
	case time.Monday:
		mood -= rng.IntN(2)
	}
	if mood < 1 {
		mood = 1
	}
	if mood > 5 {
		mood = 5
	}
	return mood
}

func sampleActivities(rng *rand.Rand, mood int) []string {
	pool := anyDayActivities
	if mood >= 4 {
		pool = goodDayActivities
	} else if mood <= 2 {
		pool = badDayActivities
	}

	count := 1 + rng.IntN(3)
	picked := make([]string, 0, count+1)
	seen := map[string]bool{}
	for len(picked) < count {
		id := pool[rng.IntN(len(pool))]
		if !seen[id] {
			seen[id] = true
			picked = append(picked, id)
		}
	}
	// Mix in a neutral activity now and then.
	if rng.IntN(3) == 0 {
		id := anyDayActivities[rng.IntN(len(anyDayActivities))]
		if !seen[id] {
			picked = append(picked, id)
		}
	}
	return picked
}

func sampleAnswer(rng *rand.Rand, category string) string {
	if pool, ok := answerTemplates[category]; ok {
		return pool[rng.IntN(len(pool))]
	}
	return genericAnswers[rng.IntN(len(genericAnswers))]
}
