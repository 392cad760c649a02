// Package checkin orchestrates the daily check-in flow: mood first, then
// sampled questions, then activities. It is the command/query surface the
// presentation layer talks to; it owns the in-progress draft and the cached
// streak counter, nothing else.
package checkin

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/stats"
	"github.com/AirMile/dailysync/internal/store"
)

// DefaultSaveDelay is the auto-save debounce for in-progress answers. The
// last write before the delay elapses wins.
const DefaultSaveDelay = 1000 * time.Millisecond

// QuestionsPerDay is how many prompts are sampled for one entry.
const QuestionsPerDay = 3

// Session drives one user's check-ins against the store. Only one logical
// writer exists; the mutex guards the debounce timer, not concurrent users.
type Session struct {
	store *store.Store
	gen   *diary.Generator
	rng   *rand.Rand

	mu        sync.Mutex
	current   *store.MoodEntry
	saveTimer *time.Timer
	saveDelay time.Duration
	saveErr   error // failure from a debounced background save
}

func New(st *store.Store, gen *diary.Generator) *Session {
	return &Session{
		store:     st,
		gen:       gen,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		saveDelay: DefaultSaveDelay,
	}
}

// Resume loads an unfinished draft, if any, into the session.
func (s *Session) Resume() (*store.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.store.GetUnfinishedEntry()
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	s.current = entry
	return entry, nil
}

// Current returns the in-progress draft, or nil outside a check-in.
func (s *Session) Current() *store.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SubmitMood starts a new draft (or updates the active one) with the chosen
// mood level and samples the mood-matched questions. The draft is persisted
// immediately.
func (s *Session) SubmitMood(mood int) (*store.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		now := time.Now()
		s.current = &store.MoodEntry{
			ID:        uuid.NewString(),
			Date:      now,
			Timestamp: now.UnixMilli(),
			Answers:   map[int]string{},
		}
	}

	resample := len(s.current.Questions) == 0 || moodPoolChanged(s.current.Mood, mood)
	s.current.Mood = mood
	if resample {
		pool := catalog.QuestionsByMood(mood)
		s.current.Questions = catalog.SampleQuestions(s.rng, pool, QuestionsPerDay)
	}

	saved, err := s.store.SaveEntry(s.current)
	if err != nil {
		return nil, err
	}
	s.current = saved
	return saved, nil
}

// SubmitAnswer records an answer to one of the draft's questions. Length is
// validated up front; persistence is debounced so rapid edits collapse into
// one write.
func (s *Session) SubmitAnswer(questionID int, answer string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return fmt.Errorf("no check-in in progress")
	}
	if n := len([]rune(answer)); n < store.MinAnswerLength {
		return &store.ValidationError{
			Field:  "answers",
			Reason: fmt.Sprintf("answer must be at least %d characters", store.MinAnswerLength),
		}
	} else if n > store.MaxAnswerLength {
		return &store.ValidationError{
			Field:  "answers",
			Reason: fmt.Sprintf("answer must be at most %d characters", store.MaxAnswerLength),
		}
	}

	if s.current.Answers == nil {
		s.current.Answers = map[int]string{}
	}
	s.current.Answers[questionID] = answer
	s.scheduleSaveLocked()
	return nil
}

// SubmitNotes attaches free-text notes to the draft, debounced like answers.
func (s *Session) SubmitNotes(notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return fmt.Errorf("no check-in in progress")
	}
	s.current.Notes = notes
	s.scheduleSaveLocked()
	return nil
}

// FollowUp samples one prompt from the follow-up pool, shown after the
// day's questions for an optional deeper reflection.
func (s *Session) FollowUp() catalog.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.SampleQuestions(s.rng, catalog.FollowUpQuestions(), 1)[0]
}

// AllQuestionsAnswered reports whether every sampled question has a valid
// answer on the draft.
func (s *Session) AllQuestionsAnswered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || len(s.current.Questions) == 0 {
		return false
	}
	for _, q := range s.current.Questions {
		answer, ok := s.current.Answers[q.ID]
		if !ok || len([]rune(answer)) < store.MinAnswerLength {
			return false
		}
	}
	return true
}

// SubmitActivities finalizes the check-in: stores the activity set, marks
// the entry complete, caches the generated diary text, and advances the
// streak counter.
func (s *Session) SubmitActivities(activityIDs []string) (*store.MoodEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, fmt.Errorf("no check-in in progress")
	}

	s.stopTimerLocked()

	// Streak is judged against the previous completed entry, read before
	// this one lands.
	last, err := s.store.GetLastCompletedEntry()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	s.current.Activities = activityIDs
	s.current.Completed = true
	s.current.CompletedAt = &now
	s.current.DiaryText = s.gen.DiaryEntry(s.current)

	saved, err := s.store.SaveEntry(s.current)
	if err != nil {
		return nil, err
	}
	s.current = nil
	// The final write carries everything an earlier failed auto-save held.
	s.saveErr = nil

	s.updateStreak(last, now)
	return saved, nil
}

// updateStreak maintains the cached counter: +1 when the previous completed
// entry was yesterday, unchanged when it was already today, reset to 1
// otherwise. stats.CalculateStreaks stays the recomputable source of truth.
func (s *Session) updateStreak(last *store.MoodEntry, now time.Time) {
	today := now.Local().Format("2006-01-02")
	yesterday := now.Local().AddDate(0, 0, -1).Format("2006-01-02")

	streak := 1
	if last != nil {
		switch last.Day() {
		case today:
			streak = s.store.GetStreak()
			if streak < 1 {
				streak = 1
			}
		case yesterday:
			streak = s.store.GetStreak() + 1
		}
	}
	if err := s.store.SaveStreak(streak); err != nil {
		// A failed counter write is recoverable: the streak is derived
		// state and will be recomputed from entries.
		return
	}
}

// Streak returns the cached consecutive-day counter.
func (s *Session) Streak() int {
	return s.store.GetStreak()
}

// Flush forces any pending debounced save to disk. It also reports a
// failure from an earlier background save that would otherwise go unseen.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	if err := s.saveLocked(); err != nil {
		return err
	}
	err := s.saveErr
	s.saveErr = nil
	return err
}

// StatsReport bundles everything the stats and insights views need.
type StatsReport struct {
	Summary  stats.Summary
	Trends   stats.MoodTrends
	Patterns stats.ActivityPatterns
	Time     stats.TimePatterns
	Streaks  stats.Streaks
}

// RequestStats recomputes all aggregates over the stored entries.
func (s *Session) RequestStats(period stats.Period) StatsReport {
	entries := s.store.GetAllEntries()
	return StatsReport{
		Summary:  stats.SummaryStats(entries),
		Trends:   stats.CalculateMoodTrends(entries, period),
		Patterns: stats.AnalyzeActivityPatterns(entries),
		Time:     stats.TimePatternsOf(entries),
		Streaks:  stats.CalculateStreaks(entries),
	}
}

func (s *Session) scheduleSaveLocked() {
	if s.saveTimer != nil {
		s.saveTimer.Stop()
	}
	s.saveTimer = time.AfterFunc(s.saveDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Nobody is waiting on this write; stash the failure so the
		// next Flush surfaces it.
		if err := s.saveLocked(); err != nil {
			s.saveErr = err
		}
	})
}

func (s *Session) stopTimerLocked() {
	if s.saveTimer != nil {
		s.saveTimer.Stop()
		s.saveTimer = nil
	}
}

func (s *Session) saveLocked() error {
	if s.current == nil {
		return nil
	}
	saved, err := s.store.SaveEntry(s.current)
	if err != nil {
		return err
	}
	s.current = saved
	s.saveErr = nil
	return nil
}

func moodPoolChanged(oldMood, newMood int) bool {
	pool := func(m int) string {
		switch {
		case m >= 4:
			return "positive"
		case m >= 1 && m <= 2:
			return "negative"
		default:
			return "neutral"
		}
	}
	return pool(oldMood) != pool(newMood)
}
