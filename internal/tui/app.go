package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/checkin"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/export"
	"github.com/AirMile/dailysync/internal/store"
)

// App is the root Bubble Tea model.
type App struct {
	store   *store.Store
	session *checkin.Session
	width   int
	height  int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	checkinView  checkinModel
	diaryView    diaryModel
	statsView    statsModel
	insightsView insightsModel
	settingsView settingsModel

	help   help.Model
	status string
}

func NewApp(st *store.Store, session *checkin.Session, gen *diary.Generator) App {
	h := help.New()
	h.ShowAll = false

	return App{
		store:        st,
		session:      session,
		activeView:   viewCheckin,
		checkinView:  newCheckinModel(session),
		diaryView:    newDiaryModel(st, gen),
		statsView:    newStatsModel(session),
		insightsView: newInsightsModel(st, gen),
		settingsView: newSettingsModel(st),
		help:         h,
	}
}

func (a App) Init() tea.Cmd {
	return a.checkinView.Init()
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.checkinView.setSize(a.width, contentHeight)
		a.diaryView.setSize(a.width, contentHeight)
		a.statsView.setSize(a.width, contentHeight)
		a.insightsView.setSize(a.width, contentHeight)
		a.settingsView.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// A form owns the keyboard while it is on screen.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			// The draft may still have a debounced write pending.
			_ = a.session.Flush()
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewCheckin
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewDiary
			return a, a.diaryView.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewStats
			return a, a.statsView.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewInsights
			return a, a.insightsView.refresh()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.settingsView.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			return a, a.refreshCurrentView()
		}

	case statusMsg:
		a.status = msg.text
		return a, nil

	case entryCompletedMsg:
		a.status = "Check-in saved"
		// The completed entry feeds every other view.
		return a, tea.Batch(
			a.diaryView.refresh(),
			a.statsView.refresh(),
			a.insightsView.refresh(),
		)

	case entryDeletedMsg:
		a.status = "Entry deleted"
		return a, tea.Batch(a.diaryView.refresh(), a.statsView.refresh())

	case dataClearedMsg:
		a.status = "All data cleared"
		return a, tea.Batch(
			a.diaryView.refresh(),
			a.statsView.refresh(),
			a.insightsView.refresh(),
			a.settingsView.refresh(),
		)

	case dataImportedMsg:
		a.status = "Import complete"
		return a, tea.Batch(
			a.diaryView.refresh(),
			a.statsView.refresh(),
			a.insightsView.refresh(),
			a.settingsView.refresh(),
		)

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewCheckin:
		a.checkinView, cmd = a.checkinView.update(msg)
	case viewDiary:
		a.diaryView, cmd = a.diaryView.update(msg)
	case viewStats:
		a.statsView, cmd = a.statsView.update(msg)
	case viewInsights:
		a.insightsView, cmd = a.insightsView.update(msg)
	case viewSettings:
		a.settingsView, cmd = a.settingsView.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewCheckin:
		return a.checkinView.formActive
	case viewSettings:
		return a.settingsView.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewDiary:
		return a.diaryView.refresh()
	case viewStats:
		return a.statsView.refresh()
	case viewInsights:
		return a.insightsView.refresh()
	case viewSettings:
		return a.settingsView.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewCheckin:
		content = a.checkinView.view()
	case viewDiary:
		content = a.diaryView.view()
	case viewStats:
		content = a.statsView.view()
	case viewInsights:
		content = a.insightsView.view()
	case viewSettings:
		content = a.settingsView.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("dailysync")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	right := status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	st := a.store
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("dailysync-export-%s.csv", dateStr))
			if err := export.ToCSV(st.GetAllEntries(), path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("dailysync-export-%s.json", dateStr))
			if err := export.ToJSON(st.ExportData(), path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
