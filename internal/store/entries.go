package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

const entryColumns = `id, date, timestamp_ms, completed_at, mood, activities, questions, answers, notes, diary_text, completed`

// validateEntry enforces the shape invariants: id and date present, mood in
// range when set, every present answer within the length bounds.
func validateEntry(e *MoodEntry) *ValidationError {
	if e == nil {
		return &ValidationError{Field: "entry", Reason: "is nil"}
	}
	if e.ID == "" {
		return &ValidationError{Field: "id", Reason: "is required"}
	}
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "is required"}
	}
	if e.Mood != 0 && !e.HasMood() {
		return &ValidationError{Field: "mood", Reason: "must be between 1 and 5"}
	}
	for qid, answer := range e.Answers {
		n := utf8.RuneCountInString(answer)
		if n < MinAnswerLength {
			return &ValidationError{
				Field:  "answers",
				Reason: fmt.Sprintf("answer to question %d is shorter than %d characters", qid, MinAnswerLength),
			}
		}
		if n > MaxAnswerLength {
			return &ValidationError{
				Field:  "answers",
				Reason: fmt.Sprintf("answer to question %d is longer than %d characters", qid, MaxAnswerLength),
			}
		}
	}
	return nil
}

// SaveEntry validates and upserts an entry by id. If the medium rejects the
// write as full, the oldest entries beyond the retention cap are evicted and
// the write is retried once; a second failure surfaces as ErrStorageFull.
func (s *Store) SaveEntry(e *MoodEntry) (*MoodEntry, error) {
	if verr := validateEntry(e); verr != nil {
		return nil, verr
	}

	err := writeEntry(s.db, e)
	if isFull(err) {
		s.log.Warn("storage full, evicting old entries", "retain", retainOnEvict)
		if evictErr := s.evictOldest(retainOnEvict); evictErr != nil {
			return nil, fmt.Errorf("%w: evict failed: %v", ErrStorageFull, evictErr)
		}
		err = writeEntry(s.db, e)
		if isFull(err) {
			return nil, fmt.Errorf("%w: %v", ErrStorageFull, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	return s.GetEntryByID(e.ID)
}

// execer covers *sql.DB and *sql.Tx so entry writes can run inside the
// import transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func writeEntry(db execer, e *MoodEntry) error {
	activities, err := json.Marshal(sliceOrEmpty(e.Activities))
	if err != nil {
		return fmt.Errorf("marshal activities: %w", err)
	}
	questions, err := json.Marshal(e.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}
	answers, err := json.Marshal(e.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	if e.Questions == nil {
		questions = []byte("[]")
	}
	if e.Answers == nil {
		answers = []byte("{}")
	}

	var mood any
	if e.Mood != 0 {
		mood = e.Mood
	}
	var completedAt any
	if e.CompletedAt != nil {
		completedAt = e.CompletedAt.UTC().Format(time.RFC3339)
	}
	completed := 0
	if e.Completed {
		completed = 1
	}

	_, err = db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			timestamp_ms = excluded.timestamp_ms,
			completed_at = excluded.completed_at,
			mood = excluded.mood,
			activities = excluded.activities,
			questions = excluded.questions,
			answers = excluded.answers,
			notes = excluded.notes,
			diary_text = excluded.diary_text,
			completed = excluded.completed`,
		e.ID, e.Date.UTC().Format(time.RFC3339), e.Timestamp, completedAt, mood,
		string(activities), string(questions), string(answers),
		e.Notes, e.DiaryText, completed,
	)
	return err
}

// evictOldest deletes everything except the newest keep entries.
func (s *Store) evictOldest(keep int) error {
	_, err := s.db.Exec(`
		DELETE FROM entries WHERE id NOT IN (
			SELECT id FROM entries ORDER BY date DESC LIMIT ?
		)`, keep)
	return err
}

// GetAllEntries returns every entry sorted newest-first. Read errors degrade
// to an empty result and are logged; this path never fails the caller.
func (s *Store) GetAllEntries() []MoodEntry {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY date DESC`)
	if err != nil {
		s.log.Warn("list entries failed", "err", err)
		return nil
	}
	defer rows.Close()

	var entries []MoodEntry
	for rows.Next() {
		e, err := s.scanEntry(rows)
		if err != nil {
			s.log.Warn("scan entry failed", "err", err)
			continue
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn("iterate entries failed", "err", err)
	}
	return entries
}

// GetEntryByID returns the entry with the given id, or nil if none exists.
func (s *Store) GetEntryByID(id string) (*MoodEntry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE id = ?`, id)
	e, err := s.scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %q: %w", id, err)
	}
	return e, nil
}

// DeleteEntry removes an entry by id. It is idempotent: deleting a missing
// entry succeeds. False is returned only when the medium itself fails.
func (s *Store) DeleteEntry(id string) bool {
	if _, err := s.db.Exec(`DELETE FROM entries WHERE id = ?`, id); err != nil {
		s.log.Warn("delete entry failed", "id", id, "err", err)
		return false
	}
	return true
}

// GetUnfinishedEntry returns the newest draft (completed=false), or nil.
func (s *Store) GetUnfinishedEntry() (*MoodEntry, error) {
	row := s.db.QueryRow(`SELECT ` + entryColumns + ` FROM entries WHERE completed = 0 ORDER BY date DESC LIMIT 1`)
	e, err := s.scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get unfinished entry: %w", err)
	}
	return e, nil
}

// GetLastCompletedEntry returns the newest completed entry, or nil.
func (s *Store) GetLastCompletedEntry() (*MoodEntry, error) {
	row := s.db.QueryRow(`SELECT ` + entryColumns + ` FROM entries WHERE completed = 1 ORDER BY date DESC LIMIT 1`)
	e, err := s.scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last completed entry: %w", err)
	}
	return e, nil
}

// CountEntries returns the number of stored entries.
func (s *Store) CountEntries() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEntry decodes one row. Corrupt JSON columns degrade to zero values
// rather than failing the read.
func (s *Store) scanEntry(row rowScanner) (*MoodEntry, error) {
	e := &MoodEntry{}
	var dateStr string
	var completedAt sql.NullString
	var mood sql.NullInt64
	var activities, questions, answers string
	var completed int

	err := row.Scan(&e.ID, &dateStr, &e.Timestamp, &completedAt, &mood,
		&activities, &questions, &answers, &e.Notes, &e.DiaryText, &completed)
	if err != nil {
		return nil, err
	}

	e.Date, err = time.Parse(time.RFC3339, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse entry date %q: %w", dateStr, err)
	}
	if completedAt.Valid {
		if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
			e.CompletedAt = &t
		}
	}
	if mood.Valid {
		e.Mood = int(mood.Int64)
	}
	if err := json.Unmarshal([]byte(activities), &e.Activities); err != nil {
		s.log.Warn("corrupt activities column, dropping", "id", e.ID, "err", err)
		e.Activities = nil
	}
	if err := json.Unmarshal([]byte(questions), &e.Questions); err != nil {
		s.log.Warn("corrupt questions column, dropping", "id", e.ID, "err", err)
		e.Questions = nil
	}
	if err := json.Unmarshal([]byte(answers), &e.Answers); err != nil {
		s.log.Warn("corrupt answers column, dropping", "id", e.ID, "err", err)
		e.Answers = nil
	}
	e.Completed = completed == 1
	return e, nil
}

func sliceOrEmpty(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
