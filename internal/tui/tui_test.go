package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AirMile/dailysync/internal/checkin"
	"github.com/AirMile/dailysync/internal/diary"
	"github.com/AirMile/dailysync/internal/export"
	"github.com/AirMile/dailysync/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestApp(t *testing.T) App {
	t.Helper()
	st := newTestStore(t)
	gen := diary.NewSeeded(1)
	return NewApp(st, checkin.New(st, gen), gen)
}

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// ============================================================
// View state
// ============================================================

func TestViewNames(t *testing.T) {
	if len(viewNames) != 5 {
		t.Fatalf("expected 5 view names, got %d", len(viewNames))
	}
	expected := []string{"Check-in", "Diary", "Stats", "Insights", "Settings"}
	for i, name := range expected {
		if viewNames[i] != name {
			t.Fatalf("viewNames[%d] = %q, want %q", i, viewNames[i], name)
		}
	}
}

func TestViewStateConstants(t *testing.T) {
	if viewCheckin != 0 || viewDiary != 1 || viewStats != 2 || viewInsights != 3 || viewSettings != 4 {
		t.Fatal("view state constants out of order")
	}
}

// ============================================================
// Helper functions
// ============================================================

func TestMoodBadge(t *testing.T) {
	if got := moodBadge(5); !strings.Contains(got, "Amazing") {
		t.Fatalf("moodBadge(5) = %q", got)
	}
	if got := moodBadge(0); got != "· —" {
		t.Fatalf("unset mood should render placeholder, got %q", got)
	}
}

func TestMoodColor(t *testing.T) {
	if got := moodColor(5); got != "#10B981" {
		t.Fatalf("moodColor(5) = %q", got)
	}
	if got := moodColor(0); got != "#666666" {
		t.Fatalf("unknown mood should fall back to muted, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is longer", 8, "this is…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestMinMax(t *testing.T) {
	if min(3, 5) != 3 || min(5, 3) != 3 {
		t.Fatal("min broken")
	}
	if max(3, 5) != 5 || max(5, 3) != 5 {
		t.Fatal("max broken")
	}
}

func TestValidateAnswer(t *testing.T) {
	if err := validateAnswer("too short"); err == nil {
		t.Fatal("expected error for short answer")
	}
	if err := validateAnswer("this one is long enough"); err != nil {
		t.Fatalf("valid answer rejected: %v", err)
	}
	if err := validateAnswer(strings.Repeat("a", 501)); err == nil {
		t.Fatal("expected error for overlong answer")
	}
	// Surrounding whitespace does not count toward the minimum.
	if err := validateAnswer("         a         "); err == nil {
		t.Fatal("whitespace padding should not satisfy the minimum")
	}
}

func TestValidateOptionalAnswer(t *testing.T) {
	if err := validateOptionalAnswer(""); err != nil {
		t.Fatalf("empty answer should be allowed: %v", err)
	}
	if err := validateOptionalAnswer("   "); err != nil {
		t.Fatalf("blank answer should be allowed: %v", err)
	}
	if err := validateOptionalAnswer("short"); err == nil {
		t.Fatal("a typed answer must still meet the minimum length")
	}
	if err := validateOptionalAnswer("this one is long enough"); err != nil {
		t.Fatalf("valid answer rejected: %v", err)
	}
}

// ============================================================
// Check-in model
// ============================================================

func TestCheckinMoodNavigation(t *testing.T) {
	st := newTestStore(t)
	c := newCheckinModel(checkin.New(st, diary.NewSeeded(1)))
	c.setSize(120, 40)

	if c.moodCursor != 2 {
		t.Fatalf("cursor should start centered, got %d", c.moodCursor)
	}

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyLeft})
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyLeft})
	if c.moodCursor != 0 {
		t.Fatalf("expected cursor 0, got %d", c.moodCursor)
	}
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyLeft})
	if c.moodCursor != 0 {
		t.Fatal("cursor should clamp at the left edge")
	}

	for i := 0; i < 10; i++ {
		c, _ = c.update(tea.KeyMsg{Type: tea.KeyRight})
	}
	if c.moodCursor != 4 {
		t.Fatalf("cursor should clamp at the right edge, got %d", c.moodCursor)
	}
}

func TestCheckinEnterStartsQuestions(t *testing.T) {
	st := newTestStore(t)
	session := checkin.New(st, diary.NewSeeded(1))
	c := newCheckinModel(session)
	c.setSize(120, 40)

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEnter})
	if c.step != stepQuestions {
		t.Fatalf("expected questions step, got %d", c.step)
	}
	if !c.formActive || c.form == nil {
		t.Fatal("question form should be active")
	}
	if len(c.questions) != checkin.QuestionsPerDay {
		t.Fatalf("expected %d questions, got %d", checkin.QuestionsPerDay, len(c.questions))
	}
	if session.Current() == nil {
		t.Fatal("draft should exist after mood submit")
	}
}

func TestCheckinEscBacksOut(t *testing.T) {
	st := newTestStore(t)
	c := newCheckinModel(checkin.New(st, diary.NewSeeded(1)))
	c.setSize(120, 40)

	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEnter})
	c, _ = c.update(tea.KeyMsg{Type: tea.KeyEsc})
	if c.step != stepMood || c.formActive {
		t.Fatal("esc should return to the mood picker")
	}
}

func TestCheckinResumePicksUpDraft(t *testing.T) {
	st := newTestStore(t)
	session := checkin.New(st, diary.NewSeeded(1))

	// Leave a mood-stage draft behind.
	entry, err := session.SubmitMood(4)
	if err != nil {
		t.Fatal(err)
	}

	c := newCheckinModel(session)
	c.setSize(120, 40)
	c, _ = c.update(checkinResumeMsg{entry: entry})
	if c.step != stepQuestions {
		t.Fatalf("resume with mood should land on questions, got step %d", c.step)
	}
}

func TestCheckinFollowUpStep(t *testing.T) {
	st := newTestStore(t)
	session := checkin.New(st, diary.NewSeeded(1))
	c := newCheckinModel(session)
	c.setSize(120, 40)

	if _, err := session.SubmitMood(4); err != nil {
		t.Fatal(err)
	}

	c, _ = c.startFollowUp()
	if c.step != stepFollowUp {
		t.Fatalf("expected follow-up step, got %d", c.step)
	}
	if !c.formActive || c.form == nil {
		t.Fatal("follow-up form should be active")
	}
	if c.followUp.ID < 31 || c.followUp.ID > 35 {
		t.Fatalf("follow-up question outside the pool: %+v", c.followUp)
	}
	if !strings.Contains(c.view(), c.followUp.Text) {
		t.Fatal("follow-up prompt should render")
	}
}

func TestCheckinViewRenders(t *testing.T) {
	st := newTestStore(t)
	c := newCheckinModel(checkin.New(st, diary.NewSeeded(1)))
	c.setSize(120, 40)

	view := c.view()
	if !strings.Contains(view, "How do you feel today?") {
		t.Fatal("mood picker should show the prompt")
	}
}

// ============================================================
// Diary model
// ============================================================

func TestDiaryViewEmpty(t *testing.T) {
	st := newTestStore(t)
	d := newDiaryModel(st, diary.NewSeeded(1))
	d.setSize(120, 40)

	if !strings.Contains(d.view(), "No entries yet") {
		t.Fatal("empty diary should show the placeholder")
	}
}

func TestDiaryDataClampsCursor(t *testing.T) {
	st := newTestStore(t)
	d := newDiaryModel(st, diary.NewSeeded(1))
	d.setSize(120, 40)
	d.cursor = 7

	at := time.Now()
	entry := store.MoodEntry{ID: "x", Date: at, Timestamp: at.UnixMilli(), Mood: 3, Completed: true}
	d, _ = d.update(diaryDataMsg{entries: []store.MoodEntry{entry}, weekly: "a summary"})
	if d.cursor != 0 {
		t.Fatalf("cursor should clamp to the list, got %d", d.cursor)
	}
	if !strings.Contains(d.view(), "a summary") {
		t.Fatal("weekly summary should render")
	}
}

// ============================================================
// Stats model
// ============================================================

func TestPeriodCycle(t *testing.T) {
	p := nextPeriod(nextPeriod(nextPeriod("week")))
	if p != "week" {
		t.Fatalf("three steps should wrap around, got %q", p)
	}
	if prevPeriod("week") != "year" {
		t.Fatal("prev from week should wrap to year")
	}
}

func TestStatsViewEmpty(t *testing.T) {
	st := newTestStore(t)
	s := newStatsModel(checkin.New(st, diary.NewSeeded(1)))
	s.setSize(120, 40)

	if !strings.Contains(s.view(), "No data yet") {
		t.Fatal("empty stats should show the placeholder")
	}
}

// ============================================================
// Settings model
// ============================================================

func TestSettingsImportFormOpens(t *testing.T) {
	st := newTestStore(t)
	s := newSettingsModel(st)
	s.setSize(120, 40)

	s, _ = s.update(keyMsg('i'))
	if !s.formActive || !s.importing {
		t.Fatal("i should open the import form")
	}
	if !strings.Contains(s.view(), "Snapshot file") {
		t.Fatal("import form should render its prompt")
	}

	s, _ = s.update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.formActive || s.importing {
		t.Fatal("esc should close the import form")
	}
}

func TestImportSnapshotLoadsFile(t *testing.T) {
	src := newTestStore(t)
	if _, err := src.SaveEntry(&store.MoodEntry{
		ID:        "a",
		Date:      time.Now(),
		Timestamp: time.Now().UnixMilli(),
		Mood:      4,
		Completed: true,
	}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "snap.json")
	if err := export.ToJSON(src.ExportData(), path); err != nil {
		t.Fatal(err)
	}

	dst := newTestStore(t)
	if _, err := dst.SaveEntry(&store.MoodEntry{
		ID:        "stale",
		Date:      time.Now(),
		Timestamp: time.Now().UnixMilli(),
		Mood:      2,
		Completed: true,
	}); err != nil {
		t.Fatal(err)
	}

	if msg := importSnapshot(dst, path); msg != (dataImportedMsg{}) {
		t.Fatalf("expected import to succeed, got %+v", msg)
	}
	entries := dst.GetAllEntries()
	if len(entries) != 1 || entries[0].ID != "a" {
		t.Fatalf("import should replace the stored entries: %+v", entries)
	}
}

func TestImportSnapshotBadFile(t *testing.T) {
	st := newTestStore(t)

	msg := importSnapshot(st, filepath.Join(t.TempDir(), "missing.json"))
	if sm, ok := msg.(statusMsg); !ok || !sm.isError {
		t.Fatalf("missing file should report an error, got %+v", msg)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	msg = importSnapshot(st, path)
	if sm, ok := msg.(statusMsg); !ok || !sm.isError {
		t.Fatalf("corrupt file should report an error, got %+v", msg)
	}
}

// ============================================================
// App model
// ============================================================

func TestNewApp(t *testing.T) {
	app := newTestApp(t)
	if app.activeView != viewCheckin {
		t.Fatal("default view should be check-in")
	}
	if app.showHelp || app.exportPicking {
		t.Fatal("overlays should be hidden by default")
	}
	if app.isFormActive() {
		t.Fatal("no forms should be active initially")
	}
}

func TestAppLoadingState(t *testing.T) {
	app := newTestApp(t)
	if app.View() != "Loading..." {
		t.Fatalf("unsized app should show loading, got %q", app.View())
	}
}

func TestAppViewStates(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	for _, v := range []viewState{viewCheckin, viewDiary, viewStats, viewInsights, viewSettings} {
		app.activeView = v
		if app.View() == "" {
			t.Fatalf("view %d rendered empty", v)
		}
	}
}

func TestAppHeaderContainsAllTabs(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	header := app.renderHeader()
	for _, name := range viewNames {
		if !strings.Contains(header, name) {
			t.Fatalf("header missing tab %q", name)
		}
	}
}

func TestAppStatusInFooter(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40
	app.status = "test status"

	if !strings.Contains(app.renderFooter(), "test status") {
		t.Fatal("footer should contain the status message")
	}
}

func TestAppTabSwitching(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	m, _ := app.Update(keyMsg('3'))
	app = m.(App)
	if app.activeView != viewStats {
		t.Fatalf("expected stats view, got %d", app.activeView)
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = m.(App)
	if app.activeView != viewInsights {
		t.Fatalf("tab should advance to insights, got %d", app.activeView)
	}
}

func TestAppExportPicker(t *testing.T) {
	app := newTestApp(t)
	app.width = 120
	app.height = 40

	m, _ := app.Update(keyMsg('e'))
	app = m.(App)
	if !app.exportPicking {
		t.Fatal("e should open the export picker")
	}
	if !strings.Contains(app.View(), "Export Format") {
		t.Fatal("picker overlay should render")
	}

	m, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = m.(App)
	if app.exportPicking {
		t.Fatal("esc should close the export picker")
	}
}

// ============================================================
// Key bindings and styles
// ============================================================

func TestKeyMapHelp(t *testing.T) {
	if len(keys.ShortHelp()) == 0 {
		t.Fatal("short help should have bindings")
	}
	for i, g := range keys.FullHelp() {
		if len(g) == 0 {
			t.Fatalf("full help group %d is empty", i)
		}
	}
}

func TestStylesRender(t *testing.T) {
	styles := []struct {
		name string
		fn   func() string
	}{
		{"activeTab", func() string { return activeTabStyle.Render("test") }},
		{"inactiveTab", func() string { return inactiveTabStyle.Render("test") }},
		{"panel", func() string { return panelStyle.Render("test") }},
		{"activePanel", func() string { return activePanelStyle.Render("test") }},
		{"title", func() string { return titleStyle.Render("test") }},
		{"success", func() string { return successStyle.Render("test") }},
		{"warning", func() string { return warningStyle.Render("test") }},
		{"error", func() string { return errorStyle.Render("test") }},
		{"muted", func() string { return mutedStyle.Render("test") }},
		{"highlight", func() string { return highlightStyle.Render("test") }},
		{"moodRow", func() string { return moodRowStyle.Render("test") }},
		{"diaryText", func() string { return diaryTextStyle.Render("test") }},
		{"header", func() string { return headerStyle.Render("test") }},
		{"footer", func() string { return footerStyle.Render("test") }},
		{"selectedItem", func() string { return selectedItemStyle.Render("test") }},
		{"normalItem", func() string { return normalItemStyle.Render("test") }},
	}
	for _, s := range styles {
		if s.fn() == "" {
			t.Fatalf("style %q rendered empty", s.name)
		}
	}
}
