// Package storage keeps browser sessions and console history between runs
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultStateDir = ".masquerade"
	stateFile       = "state.json"
	historyFile     = "history.json"
	profileDir      = "chrome_profile"
)

// BrowserState locates the persisted session files below one directory
type BrowserState struct {
	dir string
}

// NewBrowserState creates the state directory. An empty dir means
// ~/.masquerade.
func NewBrowserState(dir string) (*BrowserState, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = "."
		}
		dir = filepath.Join(homeDir, defaultStateDir)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &BrowserState{dir: dir}, nil
}

// Dir returns the state directory
func (s *BrowserState) Dir() string {
	return s.dir
}

// StatePath returns the playwright storage state file
func (s *BrowserState) StatePath() string {
	return filepath.Join(s.dir, stateFile)
}

// HasState reports whether a storage state was saved before
func (s *BrowserState) HasState() bool {
	_, err := os.Stat(s.StatePath())
	return err == nil
}

// ProfileDir returns the chrome user data directory, creating it
func (s *BrowserState) ProfileDir() (string, error) {
	dir := filepath.Join(s.dir, profileDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create user data directory: %w", err)
	}
	return dir, nil
}

// SaveHistory saves console command history
func (s *BrowserState) SaveHistory(history []string) error {
	data, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, historyFile), data, 0644)
}

// LoadHistory loads console command history. A missing file is empty history.
func (s *BrowserState) LoadHistory() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	var history []string
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return history, nil
}
