// Package session manages the ~/.compass/ directory of saved wizard
// sessions.
//
// Directory layout:
//
//	~/.compass/
//	    <session-id>.yaml        # one State snapshot per session
//
// Sessions are ephemeral working state, not a system of record: the engine
// never reads them; only the CLI does, to resume or export a session
// (INV-17).
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"compass/internal/wizard"
)

// Store is a directory of session snapshots.
type Store struct {
	Dir string
}

// defaultDir returns the base ~/.compass directory.
func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".compass"), nil
}

// Open opens the default store, creating the directory if needed.
func Open() (*Store, error) {
	dir, err := defaultDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens a store at an explicit directory, creating it if needed.
func OpenAt(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &Store{Dir: dir}, nil
}

// path returns the snapshot path for a session ID.
func (s *Store) path(id string) string {
	return filepath.Join(s.Dir, id+".yaml")
}

// Save writes a session snapshot, overwriting any previous snapshot of the
// same session.
func (s *Store) Save(state *wizard.State) error {
	if state.SessionID == "" {
		return fmt.Errorf("session has no ID")
	}
	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path(state.SessionID), data, 0o644); err != nil {
		return fmt.Errorf("write session %s: %w", state.SessionID, err)
	}
	return nil
}

// Load reads and parses a session snapshot by ID (INV-17).
func (s *Store) Load(id string) (*wizard.State, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, fmt.Errorf("read session %q: %w", id, err)
	}
	var state wizard.State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse session %q: %w", id, err)
	}
	return &state, nil
}

// List returns the IDs of all saved sessions, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("read session dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".yaml") {
			ids = append(ids, strings.TrimSuffix(e.Name(), ".yaml"))
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// Remove deletes a session snapshot.
func (s *Store) Remove(id string) error {
	path := s.path(id)
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("session %q not found", id)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove session %q: %w", id, err)
	}
	return nil
}
