package catalog

import (
	"math/rand/v2"
	"testing"
)

// ============================================================
// Moods
// ============================================================

func TestMoodsOrderedHighToLow(t *testing.T) {
	moods := Moods()
	if len(moods) != 5 {
		t.Fatalf("expected 5 mood levels, got %d", len(moods))
	}
	for i, m := range moods {
		if m.Value != 5-i {
			t.Fatalf("expected value %d at index %d, got %d", 5-i, i, m.Value)
		}
		if m.Emoji == "" || m.Label == "" || m.Color == "" {
			t.Fatalf("incomplete mood: %+v", m)
		}
	}
}

func TestMoodByValue(t *testing.T) {
	m, ok := MoodByValue(5)
	if !ok || m.Label != "Amazing" {
		t.Fatalf("expected Amazing for 5, got %+v (%v)", m, ok)
	}
	if _, ok := MoodByValue(0); ok {
		t.Fatal("0 is not a mood level")
	}
	if _, ok := MoodByValue(6); ok {
		t.Fatal("6 is not a mood level")
	}
}

// ============================================================
// Activities
// ============================================================

func TestActivitiesUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Activities() {
		if a.ID == "" || a.Label == "" || a.Category == "" {
			t.Fatalf("incomplete activity: %+v", a)
		}
		if seen[a.ID] {
			t.Fatalf("duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestActivityByID(t *testing.T) {
	a, ok := ActivityByID("exercise")
	if !ok || a.Label != "Exercise" {
		t.Fatalf("unexpected activity: %+v (%v)", a, ok)
	}
	if _, ok := ActivityByID("nope"); ok {
		t.Fatal("unknown id should not resolve")
	}
}

func TestActivityLabel(t *testing.T) {
	if got := ActivityLabel("exercise"); got != "exercise" {
		t.Fatalf("expected lowercase label, got %q", got)
	}
	// Unknown ids pass through so stored data never renders blank.
	if got := ActivityLabel("custom-thing"); got != "custom-thing" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestActivityCategoriesCoverAll(t *testing.T) {
	known := map[string]bool{}
	for _, c := range ActivityCategories() {
		if known[c] {
			t.Fatalf("duplicate category %q", c)
		}
		known[c] = true
	}
	for _, a := range Activities() {
		if !known[a.Category] {
			t.Fatalf("activity %q has unlisted category %q", a.ID, a.Category)
		}
	}
}

// ============================================================
// Questions
// ============================================================

func TestQuestionsByMood(t *testing.T) {
	cases := []struct {
		mood     int
		category string
		firstID  int
	}{
		{5, "positive", 1},
		{4, "positive", 1},
		{3, "neutral", 21},
		{2, "negative", 11},
		{1, "negative", 11},
		{0, "neutral", 21},
	}
	for _, tc := range cases {
		pool := QuestionsByMood(tc.mood)
		if len(pool) != 10 {
			t.Fatalf("mood %d: expected 10 questions, got %d", tc.mood, len(pool))
		}
		if pool[0].ID != tc.firstID {
			t.Fatalf("mood %d: expected %s pool, got first id %d", tc.mood, tc.category, pool[0].ID)
		}
	}
}

func TestQuestionsByMoodReturnsCopy(t *testing.T) {
	pool := QuestionsByMood(5)
	pool[0].Text = "mutated"
	if QuestionsByMood(5)[0].Text == "mutated" {
		t.Fatal("callers must not be able to mutate the catalog")
	}
}

func TestQuestionIDsUnique(t *testing.T) {
	seen := map[int]bool{}
	pools := [][]Question{
		QuestionsByMood(5), QuestionsByMood(3), QuestionsByMood(1), FollowUpQuestions(),
	}
	for _, pool := range pools {
		for _, q := range pool {
			if seen[q.ID] {
				t.Fatalf("duplicate question id %d", q.ID)
			}
			seen[q.ID] = true
		}
	}
	if len(seen) != 35 {
		t.Fatalf("expected 35 questions across pools, got %d", len(seen))
	}
}

func TestSampleQuestions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	pool := QuestionsByMood(5)

	sampled := SampleQuestions(rng, pool, 3)
	if len(sampled) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(sampled))
	}
	seen := map[int]bool{}
	for _, q := range sampled {
		if seen[q.ID] {
			t.Fatalf("duplicate question %d in sample", q.ID)
		}
		seen[q.ID] = true
	}

	// Asking for more than the pool holds returns the whole pool.
	all := SampleQuestions(rng, pool, 99)
	if len(all) != len(pool) {
		t.Fatalf("expected %d questions, got %d", len(pool), len(all))
	}
}
