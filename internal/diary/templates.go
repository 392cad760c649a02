package diary

// Diary templates by mood category. Placeholders are substituted by
// Generator.DiaryEntry: {moodWord}, {moodEmoji}, {activitySummary},
// {questionInsight}, {context}.
var diaryTemplates = map[string][]string{
	"positive": {
		"Today was wonderfully {moodWord}! {moodEmoji} {activitySummary} {questionInsight} {context}",
		"What an energizing {moodWord} day! {moodEmoji} {activitySummary} {questionInsight} These positive moments are exactly what I want to remember.",
		"I'm feeling genuinely {moodWord} today {moodEmoji}. {activitySummary} {questionInsight} {context}",
		"Today brought such a beautiful sense of being {moodWord} {moodEmoji}. {activitySummary} When I reflected on my day, {questionInsight} Days like this remind me why life feels so full of possibility.",
		"Such a {moodWord} day! {moodEmoji} {activitySummary} {questionInsight} I want to carry this energy into tomorrow.",
		"Feeling incredibly {moodWord} today {moodEmoji}. {activitySummary} {questionInsight} {context}",
	},
	"neutral": {
		"Today was a steady, {moodWord} kind of day {moodEmoji}. {activitySummary} {questionInsight} {context}",
		"I'm feeling {moodWord} and grounded today {moodEmoji}. {activitySummary} When I paused to think about it, {questionInsight} Sometimes these quiet, balanced days are exactly what my soul needs.",
		"Today felt peacefully {moodWord} {moodEmoji}. {activitySummary} {questionInsight} {context}",
		"A {moodWord}, contemplative day {moodEmoji}. {activitySummary} {questionInsight} There's something beautiful about these gentle, in-between moments.",
		"Today brought a sense of {moodWord} stability {moodEmoji}. {activitySummary} {questionInsight} {context}",
	},
	"negative": {
		"Today was challenging - I've been feeling {moodWord} {moodEmoji}. Even so, {activitySummary} When I reflected on my day, {questionInsight} {context}",
		"This was a tough day where I felt {moodWord} {moodEmoji}. Despite the difficulties, {activitySummary} {questionInsight} I'm reminding myself that tomorrow brings new possibilities.",
		"I struggled with feeling {moodWord} today {moodEmoji}. {activitySummary} In quiet moments, {questionInsight} {context}",
		"Today my heart felt {moodWord} {moodEmoji}. {activitySummary} {questionInsight} I'm learning that difficult days are part of my human experience, and that's completely okay.",
		"A {moodWord} day that asked a lot of me {moodEmoji}. {activitySummary} {questionInsight} {context}",
	},
}

// Contextual phrase pools, matched to the template category.
var (
	encouragementPhrases = []string{
		"Keep building on this positive energy!",
		"These good vibes are worth celebrating.",
		"This kind of day shows your strength.",
		"You're creating beautiful moments.",
		"This positivity is contagious!",
	}

	positiveReflections = []string{
		"Days like this remind me why life is beautiful.",
		"I want to remember this feeling.",
		"This is the energy I want to carry forward.",
		"These are the moments that matter most.",
		"I feel aligned with who I want to be.",
	}

	neutralReflections = []string{
		"Not every day needs to be extraordinary.",
		"Steady progress is still progress.",
		"Balance is its own kind of success.",
		"These calm days have their own value.",
		"Sometimes okay is perfectly enough.",
	}

	neutralEncouragements = []string{
		"Small steps still count as movement.",
		"Consistency beats intensity in the long run.",
		"You're building sustainable habits.",
		"Every day contributes to your growth.",
		"Showing up is half the battle.",
	}

	supportiveMessages = []string{
		"I'm learning to be gentle with myself.",
		"Every difficult day teaches me something.",
		"I'm stronger than I sometimes feel.",
		"This feeling will pass, and I'll get through it.",
		"I deserve compassion, especially from myself.",
	}

	selfCompassion = []string{
		"I'm treating myself with the kindness I'd show a good friend.",
		"Difficult emotions are part of being human.",
		"I'm doing the best I can with what I have today.",
		"This is temporary, and I am resilient.",
		"I acknowledge this pain without judgment.",
	}
)

// Activity summary phrasings per count branch. %s receives the label text.
var (
	noActivityPhrases = []string{
		"I took time for quiet reflection.",
		"I kept the day simple and let myself just be.",
		"I found meaning in the still moments of my day.",
	}

	singleActivityPhrases = []string{
		"I spent meaningful time with %s.",
		"%s filled an important part of my day.",
		"I found joy in %s today.",
		"%s brought me a sense of connection to myself.",
	}

	doubleActivityPhrases = []string{
		"I wove together %s and %s in beautiful ways.",
		"My day was enriched by both %s and %s.",
		"I found a lovely rhythm between %s and %s.",
		"%s and %s both nourished different parts of me.",
	}

	listActivityPhrases = []string{
		"My day flowed between %s.",
		"I appreciated how %s each added their own texture to my experience.",
		"I felt grateful for the variety in my day: %s all had their place.",
	}

	manyActivityPhrases = []string{
		"My day flowed between %s, and several other activities.",
		"I moved between %s, and several other activities that filled my day.",
		"There was something special about balancing %s, and several other activities.",
	}
)

// Question insight frames. %s receives the answer snippet.
var (
	insightQuoteFrames = []string{
		"I reflected deeply on this: \"%s\"",
		"An important realization came to me: \"%s\"",
		"I found myself thinking: \"%s\"",
		"Something that stood out to me: \"%s\"",
	}

	genericInsights = []string{
		"My reflections revealed some important insights.",
		"I discovered something meaningful about myself today.",
		"Taking time to answer deep questions helped me understand myself better.",
		"My inner thoughts showed me new perspectives.",
		"I gained clarity through thoughtful self-examination.",
		"These moments of introspection were valuable.",
	}
)

// Weekly summary templates per trend category. The first %s is the trend
// word, %.1f the average mood, {activities} the activity phrase.
var weeklyTemplates = map[string][]string{
	"positive": {
		"This week has been largely %s! I averaged %.1f on my mood scale. I found myself frequently engaged with {activities}. This pattern shows I'm building momentum in positive directions.",
		"What a %s week this has been! My average mood of %.1f reflects the good energy I've been cultivating. {activities} featured prominently in my days, contributing to this upward trend.",
		"Looking back on a %s week with an average mood of %.1f. The activities that stood out most were {activities}. I'm grateful for these consistent good feelings.",
	},
	"steady": {
		"This week felt %s and balanced, with an average mood of %.1f. I consistently engaged with {activities}. Sometimes steady progress is exactly what we need.",
		"A %s week overall, averaging %.1f in mood. {activities} were my go-to activities. There's value in this kind of consistent, grounded approach to life.",
		"This week maintained a %s rhythm with an average mood of %.1f. I found myself drawn to {activities}. Balance and consistency have their own rewards.",
	},
	"challenging": {
		"This week was %s, with an average mood of %.1f. Even during difficult times, I engaged with {activities}. I'm proud of myself for continuing to show up.",
		"A %s week that averaged %.1f in mood. Despite the struggles, I still found time for {activities}. This resilience is something to acknowledge.",
		"This %s week brought an average mood of %.1f. Through it all, {activities} remained part of my routine. I'm learning that difficult weeks teach us about our strength.",
	},
}

var generalEncouragements = []string{
	"Your commitment to self-awareness is already a significant step toward well-being.",
	"Each day of tracking builds a clearer picture of what supports your mental health.",
	"You're developing valuable insights about your emotional patterns.",
	"This mindful approach to tracking your moods shows real self-care.",
}

var generalStarterQuestions = []string{
	"What pattern in your mood tracking surprises you most?",
	"If you could change one thing about your daily routine, what would it be?",
	"What does a perfect day look like for you?",
	"What's something you've learned about yourself recently?",
	"How do you typically recharge when you're feeling drained?",
}

// Fixed fallback sentences for inputs the generator cannot work with.
const (
	fallbackDiaryEntry    = "Today I took time to check in with myself. Every moment of self-awareness is valuable."
	fallbackWeeklySummary = "This week I focused on self-awareness and building healthy habits. Every small step counts."
)
