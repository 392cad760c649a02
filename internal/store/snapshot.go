package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// ExportData takes a snapshot of everything the store manages.
func (s *Store) ExportData() *Snapshot {
	return &Snapshot{
		Entries:    s.GetAllEntries(),
		Settings:   s.LoadUserData(),
		Streak:     s.GetStreak(),
		ExportDate: time.Now().UTC(),
	}
}

// ImportData replaces the managed keys with the snapshot's contents. The
// existing entry collection is dropped and rewritten in one transaction, so
// entries absent from the snapshot do not survive the import.
func (s *Store) ImportData(snap *Snapshot) error {
	for i := range snap.Entries {
		if verr := validateEntry(&snap.Entries[i]); verr != nil {
			return verr
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return fmt.Errorf("import: clear entries: %w", err)
	}
	for i := range snap.Entries {
		if err := writeEntry(tx, &snap.Entries[i]); err != nil {
			return fmt.Errorf("import entry %q: %w", snap.Entries[i].ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	if snap.Settings != nil {
		if err := s.SaveUserData(snap.Settings); err != nil {
			return err
		}
	}
	return s.SaveStreak(snap.Streak)
}

// ImportJSON parses a snapshot envelope and imports it. It fails silently on
// a parse error, reporting success as a bool so a corrupt file can never
// crash the import path.
func (s *Store) ImportJSON(data []byte) bool {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("import: corrupt snapshot", "err", err)
		return false
	}
	if err := s.ImportData(&snap); err != nil {
		s.log.Warn("import failed", "err", err)
		return false
	}
	return true
}

// ClearAll removes every managed key: all entries, the profile, the streak.
func (s *Store) ClearAll() error {
	if _, err := s.db.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM user_data`)
	return err
}
