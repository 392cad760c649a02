package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AirMile/dailysync/internal/store"
)

// ToJSON writes a full snapshot envelope to path. The envelope is the same
// shape ImportJSON accepts, so a written file round-trips.
func ToJSON(snap *store.Snapshot, path string) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

// ReadSnapshot parses a snapshot file previously written by ToJSON.
func ReadSnapshot(path string) (*store.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap store.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}
