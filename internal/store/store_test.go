package store

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// makeEntry builds a valid entry dated daysAgo days in the past.
func makeEntry(id string, daysAgo, mood int, completed bool) *MoodEntry {
	at := time.Now().Add(time.Duration(-daysAgo) * 24 * time.Hour)
	e := &MoodEntry{
		ID:        id,
		Date:      at,
		Timestamp: at.UnixMilli(),
		Mood:      mood,
		Completed: completed,
	}
	if completed {
		e.CompletedAt = &at
	}
	return e
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/dailysync.db"
	s, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: should succeed and not re-migrate
	s2, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	s2.Close()
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

func TestDefaultDBPath(t *testing.T) {
	path, err := DefaultDBPath()
	if err != nil {
		t.Fatal(err)
	}
	if path == "" {
		t.Fatal("empty path")
	}
}

// ============================================================
// Entry validation
// ============================================================

func TestSaveEntryValidation(t *testing.T) {
	s := newTestStore(t)

	cases := []struct {
		name  string
		entry *MoodEntry
		field string
	}{
		{"missing id", &MoodEntry{Date: time.Now()}, "id"},
		{"missing date", &MoodEntry{ID: "x"}, "date"},
		{"mood too high", makeEntry("x", 0, 6, false), "mood"},
		{"mood too low", &MoodEntry{ID: "x", Date: time.Now(), Mood: -1}, "mood"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.SaveEntry(tc.entry)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestAnswerLengthBounds(t *testing.T) {
	s := newTestStore(t)

	save := func(answer string) error {
		e := makeEntry("bounds", 0, 3, false)
		e.Answers = map[int]string{1: answer}
		_, err := s.SaveEntry(e)
		return err
	}

	if err := save(strings.Repeat("a", MinAnswerLength-1)); err == nil {
		t.Fatal("expected error for answer below minimum length")
	}
	if err := save(strings.Repeat("a", MinAnswerLength)); err != nil {
		t.Fatalf("minimum-length answer rejected: %v", err)
	}
	if err := save(strings.Repeat("a", MaxAnswerLength)); err != nil {
		t.Fatalf("maximum-length answer rejected: %v", err)
	}
	if err := save(strings.Repeat("a", MaxAnswerLength+1)); err == nil {
		t.Fatal("expected error for answer above maximum length")
	}

	// Bounds count runes, not bytes.
	if err := save(strings.Repeat("é", MinAnswerLength)); err != nil {
		t.Fatalf("multibyte minimum-length answer rejected: %v", err)
	}
}

// ============================================================
// Entry persistence
// ============================================================

func TestSaveEntryUpsert(t *testing.T) {
	s := newTestStore(t)

	e := makeEntry("a", 0, 3, false)
	e.Notes = "first"
	if _, err := s.SaveEntry(e); err != nil {
		t.Fatal(err)
	}

	e.Notes = "second"
	e.Mood = 5
	saved, err := s.SaveEntry(e)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Notes != "second" || saved.Mood != 5 {
		t.Fatalf("upsert did not apply: %+v", saved)
	}

	n, err := s.CountEntries()
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 entry after upsert, got %d", n)
	}
}

func TestSaveEntryRoundTrip(t *testing.T) {
	s := newTestStore(t)

	e := makeEntry("round", 0, 4, true)
	e.Activities = []string{"exercise", "reading"}
	e.Answers = map[int]string{3: "a long enough answer here"}
	e.Notes = "some notes"
	e.DiaryText = "generated text"

	saved, err := s.SaveEntry(e)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Mood != 4 || !saved.Completed || saved.CompletedAt == nil {
		t.Fatalf("unexpected entry: %+v", saved)
	}
	if len(saved.Activities) != 2 || saved.Activities[0] != "exercise" {
		t.Fatalf("activities not preserved: %v", saved.Activities)
	}
	if saved.Answers[3] != "a long enough answer here" {
		t.Fatalf("answers not preserved: %v", saved.Answers)
	}
	if saved.Notes != "some notes" || saved.DiaryText != "generated text" {
		t.Fatalf("text fields not preserved: %+v", saved)
	}
}

func TestGetAllEntriesNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i, id := range []string{"old", "mid", "new"} {
		if _, err := s.SaveEntry(makeEntry(id, 2-i, 3, true)); err != nil {
			t.Fatal(err)
		}
	}

	entries := s.GetAllEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "new" || entries[2].ID != "old" {
		t.Fatalf("wrong order: %s, %s, %s", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

func TestGetEntryByIDMissing(t *testing.T) {
	s := newTestStore(t)
	e, err := s.GetEntryByID("nope")
	if err != nil {
		t.Fatal(err)
	}
	if e != nil {
		t.Fatalf("expected nil for missing entry, got %+v", e)
	}
}

func TestDeleteEntryIdempotent(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("x", 0, 3, false)); err != nil {
		t.Fatal(err)
	}
	if !s.DeleteEntry("x") {
		t.Fatal("delete of existing entry failed")
	}
	if !s.DeleteEntry("x") {
		t.Fatal("repeated delete should succeed")
	}
	if !s.DeleteEntry("never-existed") {
		t.Fatal("delete of missing entry should succeed")
	}
}

func TestUnfinishedAndLastCompleted(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("done-old", 2, 3, true)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveEntry(makeEntry("done-new", 1, 4, true)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveEntry(makeEntry("draft", 0, 2, false)); err != nil {
		t.Fatal(err)
	}

	draft, err := s.GetUnfinishedEntry()
	if err != nil {
		t.Fatal(err)
	}
	if draft == nil || draft.ID != "draft" {
		t.Fatalf("expected draft, got %+v", draft)
	}

	last, err := s.GetLastCompletedEntry()
	if err != nil {
		t.Fatal(err)
	}
	if last == nil || last.ID != "done-new" {
		t.Fatalf("expected newest completed entry, got %+v", last)
	}
}

func TestCorruptColumnDegrades(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("c", 0, 3, true)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.db.Exec(`UPDATE entries SET activities = 'not json' WHERE id = 'c'`); err != nil {
		t.Fatal(err)
	}

	entries := s.GetAllEntries()
	if len(entries) != 1 {
		t.Fatalf("corrupt column should not drop the row, got %d entries", len(entries))
	}
	if entries[0].Activities != nil {
		t.Fatalf("expected activities dropped, got %v", entries[0].Activities)
	}
}

// ============================================================
// Eviction
// ============================================================

func TestEvictOldestKeepsNewest(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 10; i++ {
		id := string(rune('a' + i))
		if _, err := s.SaveEntry(makeEntry(id, 9-i, 3, true)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.evictOldest(3); err != nil {
		t.Fatal(err)
	}

	entries := s.GetAllEntries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries after eviction, got %d", len(entries))
	}
	if entries[0].ID != "j" || entries[2].ID != "h" {
		t.Fatalf("wrong survivors: %s, %s, %s", entries[0].ID, entries[1].ID, entries[2].ID)
	}
}

// ============================================================
// User data
// ============================================================

func TestStreakDefaultsToZero(t *testing.T) {
	s := newTestStore(t)
	if n := s.GetStreak(); n != 0 {
		t.Fatalf("expected 0, got %d", n)
	}
}

func TestStreakRoundTrip(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveStreak(7); err != nil {
		t.Fatal(err)
	}
	if n := s.GetStreak(); n != 7 {
		t.Fatalf("expected 7, got %d", n)
	}
}

func TestStreakCorruptValue(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.db.Exec(`INSERT INTO user_data (key, value) VALUES ('streak', 'banana')`); err != nil {
		t.Fatal(err)
	}
	if n := s.GetStreak(); n != 0 {
		t.Fatalf("corrupt streak should read as 0, got %d", n)
	}
}

func TestUserProfileRoundTrip(t *testing.T) {
	s := newTestStore(t)

	if p := s.LoadUserData(); p != nil {
		t.Fatalf("expected nil profile on fresh store, got %+v", p)
	}

	if err := s.SaveUserData(&UserProfile{Name: "Milo", Theme: "dark"}); err != nil {
		t.Fatal(err)
	}
	p := s.LoadUserData()
	if p == nil || p.Name != "Milo" || p.Theme != "dark" {
		t.Fatalf("unexpected profile: %+v", p)
	}
}

// ============================================================
// Snapshots
// ============================================================

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore(t)

	if _, err := src.SaveEntry(makeEntry("a", 1, 4, true)); err != nil {
		t.Fatal(err)
	}
	if _, err := src.SaveEntry(makeEntry("b", 0, 2, true)); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveUserData(&UserProfile{Name: "Milo"}); err != nil {
		t.Fatal(err)
	}
	if err := src.SaveStreak(2); err != nil {
		t.Fatal(err)
	}

	snap := src.ExportData()
	if len(snap.Entries) != 2 || snap.Streak != 2 || snap.Settings == nil {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.ExportDate.IsZero() {
		t.Fatal("export date not set")
	}

	dst := newTestStore(t)
	if err := dst.ImportData(snap); err != nil {
		t.Fatal(err)
	}
	if n, _ := dst.CountEntries(); n != 2 {
		t.Fatalf("expected 2 imported entries, got %d", n)
	}
	if dst.GetStreak() != 2 {
		t.Fatalf("streak not imported, got %d", dst.GetStreak())
	}
	if p := dst.LoadUserData(); p == nil || p.Name != "Milo" {
		t.Fatalf("profile not imported: %+v", p)
	}
}

func TestImportReplacesExistingEntries(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("local", 2, 3, true)); err != nil {
		t.Fatal(err)
	}

	snap := &Snapshot{
		Entries: []MoodEntry{*makeEntry("imported", 0, 5, true)},
		Streak:  1,
	}
	if err := s.ImportData(snap); err != nil {
		t.Fatal(err)
	}

	entries := s.GetAllEntries()
	if len(entries) != 1 {
		t.Fatalf("import should replace the collection, got %d entries", len(entries))
	}
	if entries[0].ID != "imported" {
		t.Fatalf("expected only the imported entry, got %q", entries[0].ID)
	}
}

func TestImportInvalidSnapshotKeepsData(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("local", 0, 3, true)); err != nil {
		t.Fatal(err)
	}

	bad := makeEntry("bad", 0, 9, true)
	snap := &Snapshot{Entries: []MoodEntry{*bad}}

	var verr *ValidationError
	if err := s.ImportData(snap); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	entries := s.GetAllEntries()
	if len(entries) != 1 || entries[0].ID != "local" {
		t.Fatalf("failed import must not touch existing data: %+v", entries)
	}
}

func TestImportJSONCorrupt(t *testing.T) {
	s := newTestStore(t)
	if s.ImportJSON([]byte("{not json")) {
		t.Fatal("corrupt snapshot should report failure")
	}
	if n, _ := s.CountEntries(); n != 0 {
		t.Fatalf("corrupt import should not write, got %d entries", n)
	}
}

func TestClearAll(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.SaveEntry(makeEntry("a", 0, 3, true)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveStreak(4); err != nil {
		t.Fatal(err)
	}
	if err := s.ClearAll(); err != nil {
		t.Fatal(err)
	}

	if n, _ := s.CountEntries(); n != 0 {
		t.Fatalf("expected 0 entries, got %d", n)
	}
	if s.GetStreak() != 0 {
		t.Fatalf("expected streak reset, got %d", s.GetStreak())
	}
}
