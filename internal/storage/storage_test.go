package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/tripcheck/tripcheck/internal/model"
)

func TestStateRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	state := DefaultState()
	cat := state.Categories[0]
	trip := model.NewTrip("Paris", "airplane", nil, nil)
	item := model.NewItem("Passport", cat, model.ImportanceHigh, 1)
	item.Note = "renew first"
	item.WeightKg = 0.2
	item.Checked = true
	trip.Items = append(trip.Items, item)
	trip.UpdateStatus()
	state.Trips = append(state.Trips, trip)
	state.Settings.DisplayName = "Roma"
	state.Settings.Language = model.LanguageEnglish

	s.SaveState(state)
	loaded := s.LoadState()

	if len(loaded.Trips) != 1 {
		t.Fatalf("expected 1 trip, got %d", len(loaded.Trips))
	}
	got := loaded.Trips[0]
	if got.ID != trip.ID || got.Title != "Paris" || got.Icon != "airplane" {
		t.Errorf("trip fields lost: %+v", got)
	}
	if got.Status != model.StatusReady {
		t.Errorf("status = %q, want %q", got.Status, model.StatusReady)
	}
	it := got.Items[0]
	if it.ID != item.ID || it.Note != "renew first" || it.WeightKg != 0.2 || !it.Checked || it.Quantity != 1 {
		t.Errorf("item fields lost: %+v", it)
	}
	if it.Category.ID != cat.ID || it.Category.Name != cat.Name {
		t.Errorf("category snapshot lost: %+v", it.Category)
	}
	if loaded.Settings.DisplayName != "Roma" || loaded.Settings.Language != model.LanguageEnglish {
		t.Errorf("settings lost: %+v", loaded.Settings)
	}
	if len(loaded.Categories) != len(state.Categories) {
		t.Errorf("categories lost: %d != %d", len(loaded.Categories), len(state.Categories))
	}
}

func TestLoadMissingFallsBackToDefault(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.StateExists() {
		t.Fatal("StateExists should be false before first save")
	}

	state := s.LoadState()
	if len(state.Trips) != 0 {
		t.Errorf("default state should have no trips, got %d", len(state.Trips))
	}
	if len(state.Categories) != 4 {
		t.Errorf("default state should have 4 system categories, got %d", len(state.Categories))
	}
	if state.Settings.TextScale != 1.0 {
		t.Errorf("default text scale = %v, want 1.0", state.Settings.TextScale)
	}
}

func TestLoadCorruptFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "achievements.json"), []byte("]["), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	state := s.LoadState()
	if len(state.Trips) != 0 || len(state.Categories) != 4 {
		t.Errorf("corrupt snapshot should yield defaults, got %+v", state)
	}
	if unlocked := s.LoadUnlocked(); len(unlocked) != 0 {
		t.Errorf("corrupt achievement snapshot should yield empty set, got %v", unlocked)
	}
}

func TestSaveReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.SaveState(DefaultState())
	second := DefaultState()
	second.Settings.DisplayName = "second"
	s.SaveState(second)

	if s.LoadState().Settings.DisplayName != "second" {
		t.Error("second save did not replace the first")
	}
	if _, err := os.Stat(filepath.Join(dir, "state.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file left behind after save")
	}
}

func TestEnvelopeVersion(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.SaveState(DefaultState())

	data, err := os.ReadFile(filepath.Join(dir, "state.json"))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if v, ok := raw["version"].(float64); !ok || v != 1 {
		t.Errorf("envelope version = %v, want 1", raw["version"])
	}
}

func TestUnlockedRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if got := s.LoadUnlocked(); len(got) != 0 {
		t.Fatalf("expected empty set before first save, got %v", got)
	}

	s.SaveUnlocked(map[int]bool{3: true, 1: true, 13: true})
	got := s.LoadUnlocked()
	for _, id := range []int{1, 3, 13} {
		if !got[id] {
			t.Errorf("id %d missing after round trip: %v", id, got)
		}
	}
	if len(got) != 3 {
		t.Errorf("expected 3 ids, got %v", got)
	}
}

func TestSnapshotsIndependent(t *testing.T) {
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Corrupting one snapshot must not affect the other
	s.SaveUnlocked(map[int]bool{1: true})
	if err := os.WriteFile(filepath.Join(dir, "state.json"), []byte("junk"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := s.LoadUnlocked(); !got[1] {
		t.Errorf("achievement snapshot affected by state corruption: %v", got)
	}
}
