package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/store"
)

type diaryModel struct {
	store *store.Store
	gen   *diary.Generator

	width  int
	height int

	entries []store.MoodEntry // completed only, newest first
	cursor  int
	weekly  string
}

func newDiaryModel(st *store.Store, gen *diary.Generator) diaryModel {
	return diaryModel{store: st, gen: gen}
}

func (d *diaryModel) setSize(w, h int) {
	d.width = w
	d.height = h
}

type diaryDataMsg struct {
	entries []store.MoodEntry
	weekly  string
}

func (d diaryModel) refresh() tea.Cmd {
	st, gen := d.store, d.gen
	return func() tea.Msg {
		all := st.GetAllEntries()
		completed := make([]store.MoodEntry, 0, len(all))
		for _, e := range all {
			if e.Completed {
				completed = append(completed, e)
			}
		}
		return diaryDataMsg{entries: completed, weekly: gen.WeeklySummary(completed)}
	}
}

func (d diaryModel) update(msg tea.Msg) (diaryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case diaryDataMsg:
		d.entries = msg.entries
		d.weekly = msg.weekly
		if d.cursor >= len(d.entries) {
			d.cursor = max(0, len(d.entries)-1)
		}
		return d, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if d.cursor > 0 {
				d.cursor--
			}
		case key.Matches(msg, keys.Down):
			if d.cursor < len(d.entries)-1 {
				d.cursor++
			}
		case key.Matches(msg, keys.Delete):
			if len(d.entries) == 0 {
				return d, nil
			}
			id := d.entries[d.cursor].ID
			st := d.store
			return d, func() tea.Msg {
				st.DeleteEntry(id)
				return entryDeletedMsg{}
			}
		}
	}
	return d, nil
}

func (d diaryModel) view() string {
	w := d.width - 4

	if len(d.entries) == 0 {
		empty := panelStyle.Width(w).Render(
			titleStyle.Render("Diary") + "\n\n" +
				mutedStyle.Render("No entries yet. Complete a check-in and your diary writes itself."),
		)
		return empty
	}

	listWidth := w * 2 / 5
	detailWidth := w - listWidth - 2

	list := d.viewList(listWidth)
	detail := d.viewDetail(detailWidth)
	top := lipgloss.JoinHorizontal(lipgloss.Top, list, detail)

	weekly := panelStyle.Width(w).Render(
		titleStyle.Render("This week") + "\n\n" + diaryTextStyle.Width(w-6).Render(d.weekly),
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, weekly)
}

func (d diaryModel) viewList(w int) string {
	maxRows := max(3, d.height-16)
	start := 0
	if d.cursor >= maxRows {
		start = d.cursor - maxRows + 1
	}

	rows := []string{titleStyle.Render(fmt.Sprintf("Entries (%d)", len(d.entries))), ""}
	for i := start; i < len(d.entries) && i < start+maxRows; i++ {
		e := d.entries[i]
		line := fmt.Sprintf("%s  %s", e.Day(), moodBadge(e.Mood))
		if i == d.cursor {
			rows = append(rows, selectedItemStyle.Render("› "+line))
		} else {
			rows = append(rows, normalItemStyle.Render("  "+line))
		}
	}
	rows = append(rows, "", mutedStyle.Render("↑/↓: browse  d: delete"))
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (d diaryModel) viewDetail(w int) string {
	e := d.entries[d.cursor]

	header := titleStyle.Render(e.Day()) + "  " + moodBadge(e.Mood)
	body := diaryTextStyle.Width(w - 6).Render(e.DiaryText)
	if e.DiaryText == "" {
		body = mutedStyle.Render("No diary text for this entry.")
	}

	sections := []string{header, "", body}
	if len(e.Activities) > 0 {
		sections = append(sections, "", mutedStyle.Render(fmt.Sprintf("Activities: %d tagged", len(e.Activities))))
	}
	if e.Notes != "" {
		sections = append(sections, "", mutedStyle.Width(w-6).Render("Notes: "+e.Notes))
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
