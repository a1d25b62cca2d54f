/*
Package preset ships the built-in starter checklists offered when
creating a trip: beach vacation, ski resort, and city tour.
*/
package preset

import (
	"fmt"

	"github.com/tripcheck/tripcheck/internal/model"
	"github.com/tripcheck/tripcheck/internal/store"
)

// Preset is one starter checklist
type Preset struct {
	Key         string
	Name        string
	Description string
	Icon        string
	items       []entry
}

type entry struct {
	title      string
	category   string // system category name
	importance model.Importance
	quantity   int
}

// All returns the available presets in display order
func All() []Preset {
	return []Preset{beach, ski, city}
}

// Lookup returns the preset with the given key
func Lookup(key string) (Preset, bool) {
	for _, p := range All() {
		if p.Key == key {
			return p, true
		}
	}
	return Preset{}, false
}

// Apply creates a trip pre-filled with the preset's items, binding each
// item to the store's category of the matching name. Items whose
// category is missing fall back to the first category in the store.
func Apply(p Preset, s *store.Store, title string) (model.Trip, error) {
	cats := s.Categories()
	if len(cats) == 0 {
		return model.Trip{}, fmt.Errorf("no categories available")
	}
	items := make([]model.Item, 0, len(p.items))
	for _, e := range p.items {
		cat, ok := s.FindCategoryByName(e.category)
		if !ok {
			cat = cats[0]
		}
		items = append(items, model.NewItem(e.title, cat, e.importance, e.quantity))
	}
	return s.AddTripWithItems(title, p.Icon, items), nil
}

var beach = Preset{
	Key:         "beach",
	Name:        "Beach Vacation",
	Description: "Swimsuit, towel, sunscreen and the rest of a seaside kit",
	Icon:        "umbrella",
	items: []entry{
		{"Passport", "Documents", model.ImportanceHigh, 1},
		{"Tickets", "Documents", model.ImportanceHigh, 1},
		{"Travel insurance", "Documents", model.ImportanceMedium, 1},
		{"Swimsuit", "Clothes", model.ImportanceHigh, 2},
		{"Beach towel", "Clothes", model.ImportanceMedium, 1},
		{"T-shirts", "Clothes", model.ImportanceMedium, 5},
		{"Shorts", "Clothes", model.ImportanceMedium, 3},
		{"Flip-flops", "Clothes", model.ImportanceMedium, 1},
		{"Hat", "Clothes", model.ImportanceMedium, 1},
		{"Sunglasses", "Clothes", model.ImportanceMedium, 1},
		{"Evening outfit", "Clothes", model.ImportanceLow, 1},
		{"Sunscreen", "Hygiene", model.ImportanceHigh, 1},
		{"After-sun lotion", "Hygiene", model.ImportanceLow, 1},
		{"Toothbrush", "Hygiene", model.ImportanceHigh, 1},
		{"Toothpaste", "Hygiene", model.ImportanceMedium, 1},
		{"Shampoo", "Hygiene", model.ImportanceLow, 1},
		{"Razor", "Hygiene", model.ImportanceLow, 1},
		{"Phone charger", "Electronics", model.ImportanceHigh, 1},
		{"Power bank", "Electronics", model.ImportanceMedium, 1},
		{"Headphones", "Electronics", model.ImportanceLow, 1},
		{"Camera", "Electronics", model.ImportanceLow, 1},
		{"Waterproof phone case", "Electronics", model.ImportanceLow, 1},
		{"Adapter plug", "Electronics", model.ImportanceMedium, 1},
		{"Book", "Electronics", model.ImportanceLow, 1},
		{"First-aid kit", "Hygiene", model.ImportanceMedium, 1},
	},
}

var ski = Preset{
	Key:         "ski",
	Name:        "Ski Resort",
	Description: "Skis, jacket, thermal wear and everything for the slopes",
	Icon:        "snowflake",
	items: []entry{
		{"Passport", "Documents", model.ImportanceHigh, 1},
		{"Tickets", "Documents", model.ImportanceHigh, 1},
		{"Ski pass reservation", "Documents", model.ImportanceMedium, 1},
		{"Travel insurance", "Documents", model.ImportanceHigh, 1},
		{"Ski jacket", "Clothes", model.ImportanceHigh, 1},
		{"Ski pants", "Clothes", model.ImportanceHigh, 1},
		{"Thermal underwear", "Clothes", model.ImportanceHigh, 2},
		{"Fleece mid-layer", "Clothes", model.ImportanceMedium, 2},
		{"Ski socks", "Clothes", model.ImportanceMedium, 4},
		{"Gloves", "Clothes", model.ImportanceHigh, 1},
		{"Beanie", "Clothes", model.ImportanceMedium, 1},
		{"Neck gaiter", "Clothes", model.ImportanceLow, 1},
		{"Goggles", "Clothes", model.ImportanceHigh, 1},
		{"Helmet", "Clothes", model.ImportanceHigh, 1},
		{"Ski boots", "Clothes", model.ImportanceHigh, 1},
		{"Skis", "Clothes", model.ImportanceHigh, 1},
		{"Poles", "Clothes", model.ImportanceMedium, 1},
		{"Apres-ski shoes", "Clothes", model.ImportanceLow, 1},
		{"Lip balm", "Hygiene", model.ImportanceMedium, 1},
		{"Sunscreen", "Hygiene", model.ImportanceHigh, 1},
		{"Toothbrush", "Hygiene", model.ImportanceHigh, 1},
		{"Toothpaste", "Hygiene", model.ImportanceMedium, 1},
		{"Hand warmers", "Hygiene", model.ImportanceLow, 4},
		{"Phone charger", "Electronics", model.ImportanceHigh, 1},
		{"Power bank", "Electronics", model.ImportanceMedium, 1},
		{"Action camera", "Electronics", model.ImportanceLow, 1},
		{"Headphones", "Electronics", model.ImportanceLow, 1},
		{"Adapter plug", "Electronics", model.ImportanceMedium, 1},
		{"First-aid kit", "Hygiene", model.ImportanceMedium, 1},
		{"Muscle rub", "Hygiene", model.ImportanceLow, 1},
	},
}

var city = Preset{
	Key:         "city",
	Name:        "City Tour",
	Description: "Camera, maps, comfy shoes for a sightseeing weekend",
	Icon:        "building",
	items: []entry{
		{"Passport", "Documents", model.ImportanceHigh, 1},
		{"Tickets", "Documents", model.ImportanceHigh, 1},
		{"Hotel reservation", "Documents", model.ImportanceMedium, 1},
		{"City map", "Documents", model.ImportanceLow, 1},
		{"Museum passes", "Documents", model.ImportanceLow, 1},
		{"Comfortable shoes", "Clothes", model.ImportanceHigh, 1},
		{"T-shirts", "Clothes", model.ImportanceMedium, 3},
		{"Jeans", "Clothes", model.ImportanceMedium, 2},
		{"Light jacket", "Clothes", model.ImportanceMedium, 1},
		{"Umbrella", "Clothes", model.ImportanceLow, 1},
		{"Day backpack", "Clothes", model.ImportanceMedium, 1},
		{"Toothbrush", "Hygiene", model.ImportanceHigh, 1},
		{"Toothpaste", "Hygiene", model.ImportanceMedium, 1},
		{"Deodorant", "Hygiene", model.ImportanceMedium, 1},
		{"Hand sanitizer", "Hygiene", model.ImportanceLow, 1},
		{"Camera", "Electronics", model.ImportanceMedium, 1},
		{"Phone charger", "Electronics", model.ImportanceHigh, 1},
		{"Power bank", "Electronics", model.ImportanceMedium, 1},
		{"Headphones", "Electronics", model.ImportanceLow, 1},
		{"Adapter plug", "Electronics", model.ImportanceMedium, 1},
	},
}
