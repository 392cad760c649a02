// Package catalog holds the static mood, activity, and question tables.
// Everything here is loaded once and never mutated at runtime; accessors
// return copies or read-only views.
package catalog

import "strings"

// Mood is one level of the five-point mood scale.
type Mood struct {
	Value int
	Emoji string
	Label string
	Color string
}

// Activity is a selectable tag for a daily entry.
type Activity struct {
	ID       string
	Label    string
	Emoji    string
	Color    string
	Category string
}

// Moods lists the scale from best (5) to worst (1).
var moods = []Mood{
	{Value: 5, Emoji: "😄", Label: "Amazing", Color: "#10B981"},
	{Value: 4, Emoji: "😊", Label: "Good", Color: "#60A5FA"},
	{Value: 3, Emoji: "😐", Label: "Okay", Color: "#FBBF24"},
	{Value: 2, Emoji: "😔", Label: "Bad", Color: "#FB923C"},
	{Value: 1, Emoji: "😢", Label: "Terrible", Color: "#EF4444"},
}

var activities = []Activity{
	// Emotions
	{ID: "happy", Label: "Happy", Emoji: "😊", Color: "#10B981", Category: "emotions"},
	{ID: "excited", Label: "Excited", Emoji: "🤩", Color: "#FBBF24", Category: "emotions"},
	{ID: "calm", Label: "Calm", Emoji: "😌", Color: "#60A5FA", Category: "emotions"},
	{ID: "stressed", Label: "Stressed", Emoji: "😰", Color: "#FB923C", Category: "emotions"},
	{ID: "tired", Label: "Tired", Emoji: "😴", Color: "#94A3B8", Category: "emotions"},
	{ID: "anxious", Label: "Anxious", Emoji: "😟", Color: "#EF4444", Category: "emotions"},
	{ID: "grateful", Label: "Grateful", Emoji: "🙏", Color: "#10B981", Category: "emotions"},
	{ID: "frustrated", Label: "Frustrated", Emoji: "😤", Color: "#FB923C", Category: "emotions"},

	// Health
	{ID: "exercise", Label: "Exercise", Emoji: "💪", Color: "#10B981", Category: "health"},
	{ID: "walk", Label: "Walk", Emoji: "🚶", Color: "#60A5FA", Category: "health"},
	{ID: "yoga", Label: "Yoga", Emoji: "🧘", Color: "#8B5CF6", Category: "health"},
	{ID: "meditation", Label: "Meditation", Emoji: "🧘‍♂️", Color: "#8B5CF6", Category: "health"},
	{ID: "sleep_well", Label: "Slept Well", Emoji: "😴", Color: "#64748B", Category: "health"},
	{ID: "headache", Label: "Headache", Emoji: "🤕", Color: "#EF4444", Category: "health"},
	{ID: "sick", Label: "Feeling Sick", Emoji: "🤒", Color: "#EF4444", Category: "health"},

	// Hobbies
	{ID: "reading", Label: "Reading", Emoji: "📚", Color: "#8B5CF6", Category: "hobbies"},
	{ID: "music", Label: "Music", Emoji: "🎵", Color: "#EC4899", Category: "hobbies"},
	{ID: "gaming", Label: "Gaming", Emoji: "🎮", Color: "#06B6D4", Category: "hobbies"},
	{ID: "cooking", Label: "Cooking", Emoji: "👨‍🍳", Color: "#F59E0B", Category: "hobbies"},
	{ID: "art", Label: "Art/Drawing", Emoji: "🎨", Color: "#EC4899", Category: "hobbies"},
	{ID: "photography", Label: "Photography", Emoji: "📷", Color: "#64748B", Category: "hobbies"},
	{ID: "gardening", Label: "Gardening", Emoji: "🌱", Color: "#10B981", Category: "hobbies"},

	// Social
	{ID: "friends", Label: "Time with Friends", Emoji: "👥", Color: "#FBBF24", Category: "social"},
	{ID: "family", Label: "Time with Family", Emoji: "👨‍👩‍👧‍👦", Color: "#EC4899", Category: "social"},
	{ID: "partner", Label: "Time with Partner", Emoji: "💕", Color: "#EF4444", Category: "social"},
	{ID: "party", Label: "Party/Event", Emoji: "🎉", Color: "#8B5CF6", Category: "social"},
	{ID: "alone_time", Label: "Alone Time", Emoji: "🧘", Color: "#60A5FA", Category: "social"},
	{ID: "phone_call", Label: "Phone Call", Emoji: "📞", Color: "#06B6D4", Category: "social"},

	// Work
	{ID: "productive", Label: "Productive", Emoji: "💼", Color: "#10B981", Category: "work"},
	{ID: "meeting", Label: "Meetings", Emoji: "👥", Color: "#60A5FA", Category: "work"},
	{ID: "deadline", Label: "Deadline Pressure", Emoji: "⏰", Color: "#FB923C", Category: "work"},
	{ID: "learning", Label: "Learning", Emoji: "📚", Color: "#8B5CF6", Category: "work"},
	{ID: "creative", Label: "Creative Work", Emoji: "💡", Color: "#FBBF24", Category: "work"},
	{ID: "teamwork", Label: "Teamwork", Emoji: "🤝", Color: "#06B6D4", Category: "work"},

	// Lifestyle
	{ID: "travel", Label: "Travel", Emoji: "✈️", Color: "#06B6D4", Category: "lifestyle"},
	{ID: "shopping", Label: "Shopping", Emoji: "🛍️", Color: "#EC4899", Category: "lifestyle"},
	{ID: "cleaning", Label: "Cleaning", Emoji: "🧹", Color: "#64748B", Category: "lifestyle"},
	{ID: "nature", Label: "Time in Nature", Emoji: "🌿", Color: "#10B981", Category: "lifestyle"},
	{ID: "movies", Label: "Movies/TV", Emoji: "🍿", Color: "#F59E0B", Category: "lifestyle"},
	{ID: "restaurant", Label: "Restaurant/Dining", Emoji: "🍽️", Color: "#EF4444", Category: "lifestyle"},
}

var activityCategories = []string{"emotions", "health", "hobbies", "social", "work", "lifestyle"}

var activityByID = func() map[string]Activity {
	m := make(map[string]Activity, len(activities))
	for _, a := range activities {
		m[a.ID] = a
	}
	return m
}()

// Moods returns the mood scale, best first.
func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

// MoodByValue returns the mood level for value, or false if value is off-scale.
func MoodByValue(value int) (Mood, bool) {
	for _, m := range moods {
		if m.Value == value {
			return m, true
		}
	}
	return Mood{}, false
}

// Activities returns the full activity catalog in display order.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// ActivityByID looks up a catalog activity by id.
func ActivityByID(id string) (Activity, bool) {
	a, ok := activityByID[id]
	return a, ok
}

// ActivityLabel returns the lowercase display label for id, falling back to
// the id itself for unknown activities.
func ActivityLabel(id string) string {
	if a, ok := activityByID[id]; ok {
		return strings.ToLower(a.Label)
	}
	return id
}

// ActivityCategories returns the category names in display order.
func ActivityCategories() []string {
	out := make([]string, len(activityCategories))
	copy(out, activityCategories)
	return out
}
