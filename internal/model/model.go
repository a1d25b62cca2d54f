/*
Package model defines the entities tracked by Tripcheck: trips, checklist
items, item categories, and user settings.
*/
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status describes how far along a trip's checklist is
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "inProgress"
	StatusReady      Status = "ready"
)

// DisplayName returns the human-readable form of the status
func (s Status) DisplayName() string {
	switch s {
	case StatusInProgress:
		return "In progress"
	case StatusReady:
		return "Ready"
	default:
		return "New"
	}
}

// Importance ranks how critical an item is to pack
type Importance string

const (
	ImportanceLow    Importance = "low"
	ImportanceMedium Importance = "medium"
	ImportanceHigh   Importance = "high"
)

// Rank returns the sort rank of the importance, low < medium < high
func (i Importance) Rank() int {
	switch i {
	case ImportanceMedium:
		return 1
	case ImportanceHigh:
		return 2
	default:
		return 0
	}
}

// ParseImportance maps a user-supplied string to an Importance,
// defaulting to medium
func ParseImportance(s string) Importance {
	switch s {
	case "low":
		return ImportanceLow
	case "high":
		return ImportanceHigh
	default:
		return ImportanceMedium
	}
}

// Category is a named grouping tag for items. System categories are
// created once at first launch and cannot be deleted.
type Category struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	System bool      `json:"system"`
	Icon   string    `json:"icon"`
}

// NewCategory creates a custom category
func NewCategory(name, icon string) Category {
	return Category{ID: uuid.New(), Name: name, Icon: icon}
}

// SystemCategories returns the four built-in categories with fresh ids.
// Called once when a default state is created; the ids persist in the
// snapshot from then on.
func SystemCategories() []Category {
	return []Category{
		{ID: uuid.New(), Name: "Documents", System: true, Icon: "doc"},
		{ID: uuid.New(), Name: "Clothes", System: true, Icon: "tshirt"},
		{ID: uuid.New(), Name: "Hygiene", System: true, Icon: "sparkles"},
		{ID: uuid.New(), Name: "Electronics", System: true, Icon: "bolt"},
	}
}

// Item is a single packable entry within a trip. The Category field holds
// a value copy taken when the item is added; later edits to the category
// definition do not propagate into existing items. That snapshot behavior
// is intentional.
type Item struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Note       string     `json:"note,omitempty"`
	Category   Category   `json:"category"`
	Importance Importance `json:"importance"`
	WeightKg   float64    `json:"weight_kg,omitempty"`
	Quantity   int        `json:"quantity"`
	Checked    bool       `json:"checked"`
}

// NewItem creates an item with quantity clamped to at least 1
func NewItem(title string, category Category, importance Importance, quantity int) Item {
	return Item{
		ID:         uuid.New(),
		Title:      title,
		Category:   category,
		Importance: importance,
		Quantity:   ClampQuantity(quantity),
	}
}

// ClampQuantity enforces the minimum quantity of 1
func ClampQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// Trip is a packing checklist for one journey
type Trip struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Items     []Item     `json:"items"`
	Archived  bool       `json:"archived"`
	Status    Status     `json:"status"`
	Icon      string     `json:"icon,omitempty"`
}

// NewTrip creates an empty trip with status new
func NewTrip(title, icon string, start, end *time.Time) Trip {
	return Trip{
		ID:        uuid.New(),
		Title:     title,
		StartDate: start,
		EndDate:   end,
		Items:     []Item{},
		Status:    StatusNew,
		Icon:      icon,
	}
}

// CompletedItemCount returns the number of checked items
func (t *Trip) CompletedItemCount() int {
	n := 0
	for _, it := range t.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// TotalItemCount returns the number of items on the checklist
func (t *Trip) TotalItemCount() int { return len(t.Items) }

// TotalWeightKg sums item weights times quantity across the checklist
func (t *Trip) TotalWeightKg() float64 {
	var sum float64
	for _, it := range t.Items {
		sum += it.WeightKg * float64(ClampQuantity(it.Quantity))
	}
	return sum
}

// PackedWeightKg sums weights of checked items only
func (t *Trip) PackedWeightKg() float64 {
	var sum float64
	for _, it := range t.Items {
		if it.Checked {
			sum += it.WeightKg * float64(ClampQuantity(it.Quantity))
		}
	}
	return sum
}

// CategoryCount returns the number of distinct categories among items
func (t *Trip) CategoryCount() int {
	seen := make(map[uuid.UUID]bool, len(t.Items))
	for _, it := range t.Items {
		seen[it.Category.ID] = true
	}
	return len(seen)
}

// Completed reports whether every item on a non-empty checklist is checked
func (t *Trip) Completed() bool {
	return t.TotalItemCount() > 0 && t.CompletedItemCount() == t.TotalItemCount()
}

// UpdateStatus recomputes the trip status from its items. Must be called
// after every item mutation; status is never set directly.
func (t *Trip) UpdateStatus() {
	switch {
	case t.Completed():
		t.Status = StatusReady
	case t.CompletedItemCount() > 0:
		t.Status = StatusInProgress
	default:
		t.Status = StatusNew
	}
}
