package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tripcheck/tripcheck/internal/achievement"
	"github.com/tripcheck/tripcheck/internal/config"
	"github.com/tripcheck/tripcheck/internal/model"
	"github.com/tripcheck/tripcheck/internal/storage"
	"github.com/tripcheck/tripcheck/internal/store"
)

// app is the composition root: it wires the store to snapshot
// persistence and achievement evaluation. Every store mutation saves
// the state snapshot and re-evaluates achievements exactly once.
type app struct {
	cfg      *config.Config
	snaps    *storage.Store
	store    *store.Store
	unlocked map[int]bool

	// ids unlocked during this invocation, in evaluation order
	newlyUnlocked []int
}

func loadApp() (*app, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, err
	}
	levelFromConfig(cfg)

	dir := dataDir
	if dir == "" {
		dir = cfg.DataDir
	}
	snaps, err := storage.New(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	log.Debug("using data directory", "dir", snaps.Dir())

	firstRun := !snaps.StateExists()
	state := snaps.LoadState()
	if firstRun {
		applyConfigDefaults(&state.Settings, cfg.Defaults)
	}

	a := &app{
		cfg:      cfg,
		snaps:    snaps,
		store:    store.New(state),
		unlocked: snaps.LoadUnlocked(),
	}
	a.store.Subscribe(a.onChange)

	// Startup evaluation, mirroring the mutation path
	a.evaluate()
	return a, nil
}

// onChange runs once per logical store mutation
func (a *app) onChange() {
	a.snaps.SaveState(a.store.Snapshot())
	a.evaluate()
}

func (a *app) evaluate() {
	fired := achievement.Evaluate(a.store.Trips(), a.unlocked)
	if len(fired) == 0 {
		return
	}
	for _, id := range fired {
		a.unlocked[id] = true
	}
	a.newlyUnlocked = append(a.newlyUnlocked, fired...)
	a.snaps.SaveUnlocked(a.unlocked)
}

// reportAchievements prints awards unlocked during this invocation
func (a *app) reportAchievements() {
	for _, id := range a.newlyUnlocked {
		if def, ok := achievement.Lookup(id); ok {
			fmt.Printf("🏆 Achievement unlocked: %s — %s\n", def.Title, def.Description)
		}
	}
	a.newlyUnlocked = nil
}

func applyConfigDefaults(s *model.Settings, d config.Defaults) {
	if d.DisplayName != "" {
		s.DisplayName = d.DisplayName
	}
	switch d.Language {
	case "en":
		s.Language = model.LanguageEnglish
	case "ru":
		s.Language = model.LanguageRussian
	case "es":
		s.Language = model.LanguageSpanish
	}
	switch d.Theme {
	case "system":
		s.Theme = model.ThemeSystem
	case "light":
		s.Theme = model.ThemeLight
	case "dark":
		s.Theme = model.ThemeDark
	}
	if d.TextScale != 0 {
		s.TextScale = model.ClampTextScale(d.TextScale)
	}
}

// shortID returns the 8-character id prefix shown in listings
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// resolveTrip finds a trip by id prefix or exact title
func (a *app) resolveTrip(ref string) (model.Trip, error) {
	var matches []model.Trip
	for _, t := range a.store.Trips() {
		if t.Title == ref || strings.HasPrefix(t.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return model.Trip{}, fmt.Errorf("no trip matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return model.Trip{}, fmt.Errorf("%q is ambiguous, use a longer id prefix", ref)
	}
}

// resolveItem finds an item within a trip by id prefix or exact title
func (a *app) resolveItem(trip model.Trip, ref string) (model.Item, error) {
	var matches []model.Item
	for _, it := range trip.Items {
		if it.Title == ref || strings.HasPrefix(it.ID.String(), strings.ToLower(ref)) {
			matches = append(matches, it)
		}
	}
	switch len(matches) {
	case 0:
		return model.Item{}, fmt.Errorf("no item matches %q in trip %q", ref, trip.Title)
	case 1:
		return matches[0], nil
	default:
		return model.Item{}, fmt.Errorf("%q is ambiguous, use a longer id prefix", ref)
	}
}
