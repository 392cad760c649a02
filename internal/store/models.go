package store

import (
	"time"

	"github.com/AirMile/dailysync/internal/catalog"
)

// MoodEntry is one daily check-in. An entry is a mutable draft until
// Completed is set, after which it is append-only history.
type MoodEntry struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	Timestamp   int64              `json:"timestamp"` // epoch ms mirror of Date
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
	Mood        int                `json:"mood,omitempty"` // 1-5, 0 = not yet selected
	Activities  []string           `json:"activities"`
	Questions   []catalog.Question `json:"questions"`
	Answers     map[int]string     `json:"answers"`
	Notes       string             `json:"notes,omitempty"`
	DiaryText   string             `json:"diaryText,omitempty"`
	Completed   bool               `json:"completed"`
}

// HasMood reports whether a mood level has been selected.
func (e *MoodEntry) HasMood() bool {
	return e.Mood >= 1 && e.Mood <= 5
}

// Day returns the calendar-date portion of the entry in its local time.
func (e *MoodEntry) Day() string {
	return e.Date.Local().Format("2006-01-02")
}

// UserProfile is the persisted user settings blob.
type UserProfile struct {
	Name  string `json:"name,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Snapshot is the import/export envelope: the full persisted state plus the
// instant it was taken.
type Snapshot struct {
	Entries    []MoodEntry  `json:"entries"`
	Settings   *UserProfile `json:"settings,omitempty"`
	Streak     int          `json:"streak"`
	ExportDate time.Time    `json:"exportDate"`
}
