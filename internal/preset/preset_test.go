package preset

import (
	"testing"

	"github.com/tripcheck/tripcheck/internal/model"
	"github.com/tripcheck/tripcheck/internal/storage"
	"github.com/tripcheck/tripcheck/internal/store"
)

func TestLookup(t *testing.T) {
	for _, key := range []string{"beach", "ski", "city"} {
		if _, ok := Lookup(key); !ok {
			t.Errorf("preset %q missing", key)
		}
	}
	if _, ok := Lookup("space"); ok {
		t.Error("unknown preset key should not resolve")
	}
}

func TestApply(t *testing.T) {
	s := store.New(storage.DefaultState())

	p, _ := Lookup("beach")
	trip, err := Apply(p, s, "Summer")
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if trip.Title != "Summer" {
		t.Errorf("title = %q, want %q", trip.Title, "Summer")
	}
	if trip.Status != model.StatusNew {
		t.Errorf("status = %q, want %q", trip.Status, model.StatusNew)
	}
	if trip.TotalItemCount() == 0 {
		t.Fatal("preset trip should come pre-filled")
	}

	// Every item is bound to one of the store's categories
	byID := map[string]bool{}
	for _, c := range s.Categories() {
		byID[c.ID.String()] = true
	}
	for _, it := range trip.Items {
		if !byID[it.Category.ID.String()] {
			t.Errorf("item %q bound to unknown category %q", it.Title, it.Category.Name)
		}
		if it.Quantity < 1 {
			t.Errorf("item %q quantity = %d", it.Title, it.Quantity)
		}
	}

	if len(s.Trips()) != 1 {
		t.Errorf("trip not appended to store")
	}
}

func TestPresetSizes(t *testing.T) {
	// Beach and city stay under the 30-item "packed the whole house"
	// threshold; ski reaches it exactly.
	sizes := map[string]int{}
	s := store.New(storage.DefaultState())
	for _, p := range All() {
		trip, err := Apply(p, s, p.Name)
		if err != nil {
			t.Fatalf("Apply(%s): %v", p.Key, err)
		}
		sizes[p.Key] = trip.TotalItemCount()
	}
	for key, n := range sizes {
		if n > 30 {
			t.Errorf("preset %q has %d items, must not exceed 30", key, n)
		}
	}
	if sizes["beach"] < 20 || sizes["ski"] < 25 || sizes["city"] < 15 {
		t.Errorf("preset sizes look wrong: %v", sizes)
	}
}
