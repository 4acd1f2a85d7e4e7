// Package store persists the adjustable layout offsets.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ukaji3/dutysheet-go/pkg/dutysheet/profile"
)

// OffsetStore keeps the configurable profile's offsets in a JSON file.
// Saves are not locked against each other; the last writer wins.
type OffsetStore struct {
	path string
	log  *slog.Logger
}

// NewOffsetStore creates a store backed by the file at path.
func NewOffsetStore(path string, log *slog.Logger) *OffsetStore {
	if log == nil {
		log = slog.Default()
	}
	return &OffsetStore{path: path, log: log}
}

// Path returns the backing file path.
func (s *OffsetStore) Path() string {
	return s.path
}

// Load reads the stored offsets. A missing or unreadable file yields the
// defaults, and keys absent from the file keep their default value.
func (s *OffsetStore) Load() profile.Offsets {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return profile.DefaultOffsets()
	}
	if err != nil {
		s.log.Warn("failed to read offsets, using defaults", "path", s.path, "error", err)
		return profile.DefaultOffsets()
	}

	offsets := profile.DefaultOffsets()
	if err := json.Unmarshal(data, &offsets); err != nil {
		s.log.Warn("corrupt offsets file, using defaults", "path", s.path, "error", err)
		return profile.DefaultOffsets()
	}
	if err := offsets.Validate(); err != nil {
		s.log.Warn("stored offsets invalid, using defaults", "path", s.path, "error", err)
		return profile.DefaultOffsets()
	}
	return offsets
}

// Save validates and writes the offsets.
func (s *OffsetStore) Save(o profile.Offsets) error {
	if err := o.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Errorf("encode offsets: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write offsets: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write offsets: %w", err)
	}
	return nil
}
