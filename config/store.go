package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/gofrs/flock"

	"QuickExplorer/Cache"
)

const (
	lockTimeout       = 2 * time.Second
	shortPollInterval = 10 * time.Millisecond
)

// ErrLockTimeout is returned when another process holds the settings file lock too long.
var ErrLockTimeout = errors.New("timeout acquiring settings lock")

// FileStore keeps user settings in a YAML file. Reads are served from memory;
// writes merge into the file under an OS-level lock so two panels do not lose
// each other's changes.
type FileStore struct {
	path  string
	cache *Cache.SettingsCache
}

// OpenFileStore loads settings from path. A missing file is an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, cache: Cache.NewSettingsCache()}
	values, err := readSettings(path)
	if err != nil {
		return nil, err
	}
	s.cache.Replace(values)
	return s, nil
}

// NewMemoryStore returns a store that never touches the disk.
func NewMemoryStore(values map[string]string) *FileStore {
	s := &FileStore{cache: Cache.NewSettingsCache()}
	s.cache.Replace(values)
	return s
}

// Path is the backing file, or "" for a memory store.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key, defaultValue string) string {
	if value, found := s.cache.Get(key); found {
		return value
	}
	return defaultValue
}

// Set stores value under key and writes it through to the settings file.
func (s *FileStore) Set(key, value string) error {
	s.cache.Set(key, value)
	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()

	fileLock := flock.New(s.path + ".lock")
	locked, err := fileLock.TryLockContext(ctx, shortPollInterval)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrLockTimeout
		}
		return fmt.Errorf("error acquiring settings lock for %s: %w", s.path, err)
	}
	if !locked {
		return ErrLockTimeout
	}
	defer func() { _ = fileLock.Unlock() }()

	// another process may have written since we loaded
	values, err := readSettings(s.path)
	if err != nil {
		return err
	}
	values[key] = value

	if err := writeSettings(s.path, values); err != nil {
		return err
	}
	s.cache.Replace(values)
	return nil
}

// All returns every setting currently known.
func (s *FileStore) All() map[string]string {
	return s.cache.Snapshot()
}

func readSettings(path string) (map[string]string, error) {
	values := make(map[string]string)
	if path == "" {
		return values, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", path, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// writeSettings replaces the file atomically through a temp file in the same directory.
func writeSettings(path string, values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
