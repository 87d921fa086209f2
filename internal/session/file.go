package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage persists session entries as one file per key inside a
// directory, created with owner-only permissions.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the session directory if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, errors.New("session directory is required")
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// DefaultDir is the session directory used when none is configured:
// $XDG_DATA_HOME/buddy/session or ~/.local/share/buddy/session.
func DefaultDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "buddy", "session"), nil
}

func (f *FileStorage) path(key string) (string, error) {
	// Keys are fixed constants; anything path-like is a caller bug.
	if strings.ContainsAny(key, "/\\") || key == "" {
		return "", fmt.Errorf("invalid session key %q", key)
	}
	return filepath.Join(f.dir, key), nil
}

// Get reads a session entry.
func (f *FileStorage) Get(key string) (string, error) {
	p, err := f.path(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to read session entry %s: %w", key, err)
	}
	return string(data), nil
}

// Set writes a session entry through a temp file and rename so a
// crashed write never leaves a truncated entry behind.
func (f *FileStorage) Set(key, value string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, []byte(value), 0600); err != nil {
		return fmt.Errorf("failed to write session entry %s: %w", key, err)
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to finalize session entry %s: %w", key, err)
	}
	return nil
}

// Delete removes a session entry.
func (f *FileStorage) Delete(key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}
		return fmt.Errorf("failed to delete session entry %s: %w", key, err)
	}
	return nil
}
