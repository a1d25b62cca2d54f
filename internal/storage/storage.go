/*
Package storage persists Tripcheck state as local JSON snapshots.

Two independent snapshots live under the data directory: state.json
(trips, categories, settings, wrapped in a versioned envelope reserved
for future schema changes) and achievements.json (the unlocked award
set). Loads fall back to defaults on missing or corrupt files; saves
are whole-file atomic replacements whose failures are logged and
swallowed. The tool is offline and the snapshots are non-critical, so
nothing here returns an error to the caller.
*/
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/tripcheck/tripcheck/internal/model"
)

const (
	stateFile        = "state.json"
	achievementsFile = "achievements.json"

	// snapshotVersion is bumped when the envelope layout changes
	snapshotVersion = 1
)

// State is the primary snapshot: everything the store owns
type State struct {
	Trips      []model.Trip     `json:"trips"`
	Categories []model.Category `json:"categories"`
	Settings   model.Settings   `json:"settings"`
}

// DefaultState returns the state used before any snapshot exists:
// no trips, the four system categories, default settings.
func DefaultState() State {
	return State{
		Trips:      []model.Trip{},
		Categories: model.SystemCategories(),
		Settings:   model.DefaultSettings(),
	}
}

// envelope wraps the persisted state for future migrations
type envelope struct {
	Version    int              `json:"version"`
	Trips      []model.Trip     `json:"trips"`
	Categories []model.Category `json:"categories"`
	Settings   model.Settings   `json:"settings"`
}

type achievementSnapshot struct {
	Unlocked []int `json:"unlocked"`
}

// Store reads and writes snapshots under a data directory
type Store struct {
	dir string
}

// DefaultDir returns the default data directory
func DefaultDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".local", "share", "tripcheck")
}

// New creates a snapshot store rooted at dir, creating it if needed
func New(dir string) (*Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory
func (s *Store) Dir() string { return s.dir }

// StateExists reports whether a primary snapshot has been written yet
func (s *Store) StateExists() bool {
	_, err := os.Stat(filepath.Join(s.dir, stateFile))
	return err == nil
}

// LoadState loads the primary snapshot, falling back to DefaultState on
// a missing or unreadable file
func (s *Store) LoadState() State {
	data, err := os.ReadFile(filepath.Join(s.dir, stateFile))
	if err != nil {
		return DefaultState()
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Warn("state snapshot unreadable, starting fresh", "error", err)
		return DefaultState()
	}
	st := State{Trips: env.Trips, Categories: env.Categories, Settings: env.Settings}
	if st.Trips == nil {
		st.Trips = []model.Trip{}
	}
	if len(st.Categories) == 0 {
		st.Categories = model.SystemCategories()
	}
	return st
}

// SaveState writes the primary snapshot, atomically replacing the
// previous one. Best effort: failures are logged and swallowed.
func (s *Store) SaveState(st State) {
	env := envelope{
		Version:    snapshotVersion,
		Trips:      st.Trips,
		Categories: st.Categories,
		Settings:   st.Settings,
	}
	s.writeSnapshot(stateFile, env)
}

// LoadUnlocked loads the unlocked achievement set, defaulting to empty
func (s *Store) LoadUnlocked() map[int]bool {
	unlocked := make(map[int]bool)
	data, err := os.ReadFile(filepath.Join(s.dir, achievementsFile))
	if err != nil {
		return unlocked
	}
	var snap achievementSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Warn("achievement snapshot unreadable, starting fresh", "error", err)
		return unlocked
	}
	for _, id := range snap.Unlocked {
		unlocked[id] = true
	}
	return unlocked
}

// SaveUnlocked writes the unlocked achievement set, same contract as
// SaveState
func (s *Store) SaveUnlocked(unlocked map[int]bool) {
	ids := make([]int, 0, len(unlocked))
	for id := range unlocked {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	s.writeSnapshot(achievementsFile, achievementSnapshot{Unlocked: ids})
}

func (s *Store) writeSnapshot(name string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Warn("failed to encode snapshot", "file", name, "error", err)
		return
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Warn("failed to write snapshot", "file", name, "error", err)
		return
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		log.Warn("failed to replace snapshot", "file", name, "error", err)
	}
}
