package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/AirMile/dailysync/internal/store"
)

type settingsModel struct {
	store  *store.Store
	width  int
	height int

	profile    *store.UserProfile
	entryCount int
	streak     int

	formActive bool
	confirming bool
	importing  bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	name       *string
	theme      *string
	clearAll   *bool
	importPath *string
}

func newSettingsModel(st *store.Store) settingsModel {
	n, t, p := "", "", ""
	c := false
	return settingsModel{
		store:      st,
		name:       &n,
		theme:      &t,
		clearAll:   &c,
		importPath: &p,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	profile    *store.UserProfile
	entryCount int
	streak     int
}

func (s settingsModel) refresh() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		count, _ := st.CountEntries()
		return settingsDataMsg{
			profile:    st.LoadUserData(),
			entryCount: count,
			streak:     st.GetStreak(),
		}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.profile = msg.profile
		s.entryCount = msg.entryCount
		s.streak = msg.streak
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showProfileForm()
		case key.Matches(msg, keys.Delete):
			return s.showClearForm()
		case key.Matches(msg, keys.Import):
			return s.showImportForm()
		}
	}
	return s, nil
}

func (s settingsModel) showProfileForm() (settingsModel, tea.Cmd) {
	*s.name = ""
	*s.theme = "default"
	if s.profile != nil {
		*s.name = s.profile.Name
		if s.profile.Theme != "" {
			*s.theme = s.profile.Theme
		}
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your name").Value(s.name),
			huh.NewSelect[string]().Title("Theme").
				Options(
					huh.NewOption("Default", "default"),
					huh.NewOption("Dark", "dark"),
					huh.NewOption("Light", "light"),
				).Value(s.theme),
		).Title("Profile"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	s.confirming = false
	s.importing = false
	return s, s.form.Init()
}

func (s settingsModel) showClearForm() (settingsModel, tea.Cmd) {
	*s.clearAll = false
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all data?").
				Description("Every entry, your profile, and your streak will be erased.").
				Affirmative("Delete everything").
				Negative("Keep my data").
				Value(s.clearAll),
		),
	).WithShowHelp(true)

	s.formActive = true
	s.confirming = true
	s.importing = false
	return s, s.form.Init()
}

func (s settingsModel) showImportForm() (settingsModel, tea.Cmd) {
	*s.importPath = ""
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Snapshot file").
				Description("Path to a JSON export. The current data is replaced.").
				Placeholder("~/dailysync-export-2026-01-01.json").
				Value(s.importPath).
				Validate(func(p string) error {
					if strings.TrimSpace(p) == "" {
						return fmt.Errorf("enter a file path")
					}
					return nil
				}),
		).Title("Import"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	s.confirming = false
	s.importing = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.confirming = false
			s.importing = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State != huh.StateCompleted {
		return s, cmd
	}
	s.formActive = false
	s.form = nil

	if s.confirming {
		if !*s.clearAll {
			return s, nil
		}
		st := s.store
		return s, func() tea.Msg {
			if err := st.ClearAll(); err != nil {
				return statusMsg{text: fmt.Sprintf("Could not clear data: %v", err), isError: true}
			}
			return dataClearedMsg{}
		}
	}

	if s.importing {
		st := s.store
		path := strings.TrimSpace(*s.importPath)
		return s, func() tea.Msg {
			return importSnapshot(st, path)
		}
	}

	profile := &store.UserProfile{Name: *s.name, Theme: *s.theme}
	st := s.store
	return s, tea.Batch(
		func() tea.Msg {
			if err := st.SaveUserData(profile); err != nil {
				return statusMsg{text: fmt.Sprintf("Could not save profile: %v", err), isError: true}
			}
			return statusMsg{text: "Profile saved"}
		},
		s.refresh(),
	)
}

// importSnapshot reads a snapshot file and loads it into the store,
// replacing the data that was there.
func importSnapshot(st *store.Store, path string) tea.Msg {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return statusMsg{text: fmt.Sprintf("Could not read %s: %v", path, err), isError: true}
	}
	if !st.ImportJSON(data) {
		return statusMsg{text: "Import failed: not a valid snapshot", isError: true}
	}
	return dataImportedMsg{}
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	name := mutedStyle.Render("not set")
	theme := "default"
	if s.profile != nil {
		if s.profile.Name != "" {
			name = highlightStyle.Render(s.profile.Name)
		}
		if s.profile.Theme != "" {
			theme = s.profile.Theme
		}
	}

	rows := []string{
		titleStyle.Render("Settings"),
		"",
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(16).Render("Name"), name),
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(16).Render("Theme"), highlightStyle.Render(theme)),
		"",
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(16).Render("Entries"), highlightStyle.Render(fmt.Sprintf("%d", s.entryCount))),
		fmt.Sprintf("  %s %s", lipgloss.NewStyle().Width(16).Render("Streak"), successStyle.Render(fmt.Sprintf("🔥 %d days", s.streak))),
		"",
		mutedStyle.Render("enter: edit profile  d: delete all data  e: export  i: import"),
	}
	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
