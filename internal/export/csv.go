package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AirMile/dailysync/internal/store"
)

// ToCSV writes one row per entry: date, mood, activities, answered question
// count, notes, and the cached diary text.
func ToCSV(entries []store.MoodEntry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Mood", "Activities", "Answers", "Completed", "Notes", "Diary"}); err != nil {
		return err
	}

	for _, e := range entries {
		mood := ""
		if e.HasMood() {
			mood = strconv.Itoa(e.Mood)
		}
		completed := "no"
		if e.Completed {
			completed = "yes"
		}

		row := []string{
			e.ID,
			e.Date.Local().Format(time.RFC3339),
			mood,
			strings.Join(e.Activities, ";"),
			strconv.Itoa(len(e.Answers)),
			completed,
			e.Notes,
			e.DiaryText,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
