package catalog

import "math/rand/v2"

// Question is a reflective prompt shown during a check-in.
type Question struct {
	ID       int    `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Question pools, partitioned by the mood that triggers them.
var (
	positiveQuestions = []Question{
		{ID: 1, Text: "What makes you happiest in life?", Category: "happiness"},
		{ID: 2, Text: "What are you most grateful for?", Category: "gratitude"},
		{ID: 3, Text: "What do you consider your biggest achievements?", Category: "achievement"},
		{ID: 4, Text: "How do you practice self-care?", Category: "self-care"},
		{ID: 5, Text: "What energizes you?", Category: "energy"},
		{ID: 6, Text: "What do you love most about yourself?", Category: "self-love"},
		{ID: 7, Text: "What inspires you?", Category: "inspiration"},
		{ID: 8, Text: "What positive changes have you made in your life?", Category: "growth"},
		{ID: 9, Text: "Who or what brings joy to your life?", Category: "connection"},
		{ID: 10, Text: "What tends to exceed your expectations?", Category: "surprise"},
	}

	negativeQuestions = []Question{
		{ID: 11, Text: "What typically causes you stress?", Category: "stress"},
		{ID: 12, Text: "What are your main worries?", Category: "worry"},
		{ID: 13, Text: "What would you like to change about yourself?", Category: "regret"},
		{ID: 14, Text: "What drains your energy?", Category: "drain"},
		{ID: 15, Text: "What do you need help with?", Category: "support"},
		{ID: 16, Text: "What thoughts tend to occupy your mind?", Category: "rumination"},
		{ID: 17, Text: "What feels like an obstacle in your life?", Category: "challenge"},
		{ID: 18, Text: "What makes you feel insecure?", Category: "insecurity"},
		{ID: 19, Text: "What makes you sad or disappointed?", Category: "sadness"},
		{ID: 20, Text: "What do you tend to avoid?", Category: "avoidance"},
	}

	neutralQuestions = []Question{
		{ID: 21, Text: "How would you describe yourself in one word?", Category: "reflection"},
		{ID: 22, Text: "What have you learned about yourself recently?", Category: "learning"},
		{ID: 23, Text: "What memories are most important to you?", Category: "memory"},
		{ID: 24, Text: "What surprises you about life?", Category: "unexpected"},
		{ID: 25, Text: "What are you passionate about?", Category: "activity"},
		{ID: 26, Text: "What are your goals and aspirations?", Category: "future"},
		{ID: 27, Text: "How would you describe your physical well-being?", Category: "physical"},
		{ID: 28, Text: "What advice would you give your younger self?", Category: "wisdom"},
		{ID: 29, Text: "What important decisions have shaped who you are?", Category: "decision"},
		{ID: 30, Text: "What does success mean to you?", Category: "values"},
	}

	followUpQuestions = []Question{
		{ID: 31, Text: "Can you tell me more about that?", Category: "elaboration"},
		{ID: 32, Text: "How does that make you feel?", Category: "emotion"},
		{ID: 33, Text: "What would you do differently?", Category: "improvement"},
		{ID: 34, Text: "What have you learned from that?", Category: "insight"},
		{ID: 35, Text: "How do you cope with that?", Category: "coping"},
	}
)

// QuestionsByMood returns the pool matching a mood level: positive for 4-5,
// negative for 1-2, neutral otherwise.
func QuestionsByMood(mood int) []Question {
	var pool []Question
	switch {
	case mood >= 4:
		pool = positiveQuestions
	case mood <= 2 && mood >= 1:
		pool = negativeQuestions
	default:
		pool = neutralQuestions
	}
	out := make([]Question, len(pool))
	copy(out, pool)
	return out
}

// FollowUpQuestions returns the context-based follow-up pool.
func FollowUpQuestions() []Question {
	out := make([]Question, len(followUpQuestions))
	copy(out, followUpQuestions)
	return out
}

// SampleQuestions draws count distinct questions from pool using rng.
// It returns the whole pool (shuffled) when count exceeds the pool size.
func SampleQuestions(rng *rand.Rand, pool []Question, count int) []Question {
	shuffled := make([]Question, len(pool))
	copy(shuffled, pool)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
