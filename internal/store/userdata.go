package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
)

// Keys in the user_data table.
const (
	keyStreak  = "streak"
	keyProfile = "profile"
)

func (s *Store) getValue(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM user_data WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *Store) setValue(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO user_data (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// GetStreak returns the cached streak counter, defaulting to 0. The counter
// is a materialized view; stats.CalculateStreaks recomputes the truth.
func (s *Store) GetStreak() int {
	value, ok, err := s.getValue(keyStreak)
	if err != nil {
		s.log.Warn("read streak failed", "err", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		s.log.Warn("corrupt streak value, resetting", "value", value)
		return 0
	}
	return n
}

// SaveStreak persists the streak counter.
func (s *Store) SaveStreak(n int) error {
	return s.setValue(keyStreak, strconv.Itoa(n))
}

// LoadUserData returns the stored profile, or nil when none has been saved.
// A corrupt blob is treated as no data.
func (s *Store) LoadUserData() *UserProfile {
	value, ok, err := s.getValue(keyProfile)
	if err != nil {
		s.log.Warn("read profile failed", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	var p UserProfile
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		s.log.Warn("corrupt profile, dropping", "err", err)
		return nil
	}
	return &p
}

// SaveUserData persists the profile blob.
func (s *Store) SaveUserData(p *UserProfile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.setValue(keyProfile, string(data))
}
