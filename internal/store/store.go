/*
Package store holds the authoritative in-memory application state and
the mutation operations over it.

The store is single-actor: one CLI invocation mutates it synchronously
and every mutating operation re-establishes the model invariants (trip
status, quantity clamp) before notifying subscribers exactly once. The
composition root subscribes snapshot persistence and achievement
re-evaluation, so both run once per logical mutation.
*/
package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/tripcheck/tripcheck/internal/model"
	"github.com/tripcheck/tripcheck/internal/storage"
)

// Store owns the trips list, category list, and user settings
type Store struct {
	trips      []model.Trip
	categories []model.Category
	settings   model.Settings

	subscribers []func()
}

// New creates a store from a loaded snapshot
func New(st storage.State) *Store {
	return &Store{
		trips:      st.Trips,
		categories: st.Categories,
		settings:   st.Settings,
	}
}

// Snapshot returns the state to persist
func (s *Store) Snapshot() storage.State {
	return storage.State{
		Trips:      s.trips,
		Categories: s.categories,
		Settings:   s.settings,
	}
}

// Subscribe registers a change listener. Listeners run synchronously,
// once per logical mutation, after invariants are re-established.
func (s *Store) Subscribe(fn func()) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn()
	}
}

// Trips returns all trips, active and archived
func (s *Store) Trips() []model.Trip { return s.trips }

// ActiveTrips returns trips not yet moved to history
func (s *Store) ActiveTrips() []model.Trip {
	var out []model.Trip
	for _, t := range s.trips {
		if !t.Archived {
			out = append(out, t)
		}
	}
	return out
}

// ArchivedTrips returns the trip history
func (s *Store) ArchivedTrips() []model.Trip {
	var out []model.Trip
	for _, t := range s.trips {
		if t.Archived {
			out = append(out, t)
		}
	}
	return out
}

// FindTrip returns the trip with the given id
func (s *Store) FindTrip(id uuid.UUID) (model.Trip, bool) {
	for _, t := range s.trips {
		if t.ID == id {
			return t, true
		}
	}
	return model.Trip{}, false
}

// AddTrip appends a new empty trip and returns it
func (s *Store) AddTrip(title, icon string, start, end *time.Time) model.Trip {
	trip := model.NewTrip(title, icon, start, end)
	s.trips = append(s.trips, trip)
	s.notify()
	return trip
}

// AddTripWithItems appends a pre-filled trip (used by presets and tests)
func (s *Store) AddTripWithItems(title, icon string, items []model.Item) model.Trip {
	trip := model.NewTrip(title, icon, nil, nil)
	for i := range items {
		items[i].Quantity = model.ClampQuantity(items[i].Quantity)
	}
	trip.Items = items
	trip.UpdateStatus()
	s.trips = append(s.trips, trip)
	s.notify()
	return trip
}

// DeleteTrip removes a trip by id. No-op if absent.
func (s *Store) DeleteTrip(id uuid.UUID) {
	for i, t := range s.trips {
		if t.ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			s.notify()
			return
		}
	}
}

// ArchiveTrip moves a trip to history. No-op if absent.
func (s *Store) ArchiveTrip(id uuid.UUID) {
	for i := range s.trips {
		if s.trips[i].ID == id {
			s.trips[i].Archived = true
			s.notify()
			return
		}
	}
}

// DuplicateTrip clones a trip under a fresh id with the archive flag
// cleared and appends it. Items are copied as-is, checked state
// included, matching the "duplicate from history" flow.
func (s *Store) DuplicateTrip(id uuid.UUID) (model.Trip, bool) {
	src, ok := s.FindTrip(id)
	if !ok {
		return model.Trip{}, false
	}
	dup := src
	dup.ID = uuid.New()
	dup.Archived = false
	dup.Items = make([]model.Item, len(src.Items))
	copy(dup.Items, src.Items)
	s.trips = append(s.trips, dup)
	s.notify()
	return dup, true
}

// AddItem appends an item to a trip and recomputes its status.
// No-op if the trip is absent.
func (s *Store) AddItem(tripID uuid.UUID, item model.Item) {
	for i := range s.trips {
		if s.trips[i].ID == tripID {
			item.Quantity = model.ClampQuantity(item.Quantity)
			s.trips[i].Items = append(s.trips[i].Items, item)
			s.trips[i].UpdateStatus()
			s.notify()
			return
		}
	}
}

// UpdateItem applies a mutator to one item and recomputes the trip
// status. No-op if the trip or item is absent.
func (s *Store) UpdateItem(tripID, itemID uuid.UUID, mutate func(*model.Item)) {
	for i := range s.trips {
		if s.trips[i].ID != tripID {
			continue
		}
		for j := range s.trips[i].Items {
			if s.trips[i].Items[j].ID == itemID {
				mutate(&s.trips[i].Items[j])
				s.trips[i].Items[j].Quantity = model.ClampQuantity(s.trips[i].Items[j].Quantity)
				s.trips[i].UpdateStatus()
				s.notify()
				return
			}
		}
		return
	}
}

// RemoveItem deletes an item from a trip and recomputes its status.
// No-op if the trip or item is absent.
func (s *Store) RemoveItem(tripID, itemID uuid.UUID) {
	for i := range s.trips {
		if s.trips[i].ID != tripID {
			continue
		}
		for j, it := range s.trips[i].Items {
			if it.ID == itemID {
				s.trips[i].Items = append(s.trips[i].Items[:j], s.trips[i].Items[j+1:]...)
				s.trips[i].UpdateStatus()
				s.notify()
				return
			}
		}
		return
	}
}

// Categories returns all categories, system and custom
func (s *Store) Categories() []model.Category { return s.categories }

// FindCategoryByName returns the first category with the given name
func (s *Store) FindCategoryByName(name string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.Name == name {
			return c, true
		}
	}
	return model.Category{}, false
}

// AddCategory appends a category unless one with the same id exists
func (s *Store) AddCategory(cat model.Category) {
	for _, c := range s.categories {
		if c.ID == cat.ID {
			return
		}
	}
	s.categories = append(s.categories, cat)
	s.notify()
}

// DeleteCategory removes a custom category by id. System categories are
// never deleted; items already holding a copy keep their snapshot.
func (s *Store) DeleteCategory(id uuid.UUID) {
	for i, c := range s.categories {
		if c.ID == id {
			if c.System {
				return
			}
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			s.notify()
			return
		}
	}
}

// Settings returns the current user settings
func (s *Store) Settings() model.Settings { return s.settings }

// UpdateSettings applies a mutator to the settings, clamping text scale
func (s *Store) UpdateSettings(mutate func(*model.Settings)) {
	mutate(&s.settings)
	s.settings.TextScale = model.ClampTextScale(s.settings.TextScale)
	s.notify()
}
