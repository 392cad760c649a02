package tui

import (
	"fmt"

	"github.com/AirMile/dailysync/internal/catalog"
	"github.com/AirMile/dailysync/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewCheckin viewState = iota
	viewDiary
	viewStats
	viewInsights
	viewSettings
)

var viewNames = []string{"Check-in", "Diary", "Stats", "Insights", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type entryCompletedMsg struct {
	entry *store.MoodEntry
}

type entryDeletedMsg struct{}

type exportDoneMsg struct {
	path string
}

type dataClearedMsg struct{}

type dataImportedMsg struct{}

// --- Helpers ---

// moodBadge renders "😊 Good" for a mood level, or a placeholder when unset.
func moodBadge(mood int) string {
	m, ok := catalog.MoodByValue(mood)
	if !ok {
		return "· —"
	}
	return fmt.Sprintf("%s %s", m.Emoji, m.Label)
}

// moodColor returns the catalog color for a mood level.
func moodColor(mood int) string {
	if m, ok := catalog.MoodByValue(mood); ok {
		return m.Color
	}
	return "#666666"
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
