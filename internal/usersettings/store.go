package usersettings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
)

// Store reads and writes the settings file.
type Store struct {
	path string
	lock *flock.Flock
}

// NewStore returns a store for the given settings file path.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads settings from disk. A missing file yields the defaults.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	settings := Default()
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	settings.normalize()
	if err := settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings file %s: %w", s.path, err)
	}
	return settings, nil
}

// Save validates and persists settings. The write is guarded by a sibling
// lock file because several tool instances may share one settings file.
func (s *Store) Save(settings Settings) error {
	settings.normalize()
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	locked, err := s.lock.TryLock()
	if err != nil {
		return fmt.Errorf("lock settings file: %w", err)
	}
	if !locked {
		return fmt.Errorf("settings file %s is locked by another process", s.path)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	encoded, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(s.path, encoded, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// Reset restores the defaults on disk and returns them.
func (s *Store) Reset() (Settings, error) {
	defaults := Default()
	if err := s.Save(defaults); err != nil {
		return Settings{}, err
	}
	return defaults, nil
}

// Clear removes the settings file; the next Load yields the defaults.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove settings: %w", err)
	}
	return nil
}
