package model

import (
	"math"
	"testing"
)

func TestUpdateStatus(t *testing.T) {
	cat := NewCategory("Misc", "tag")

	tests := []struct {
		name    string
		checked []bool
		want    Status
	}{
		{"no items", nil, StatusNew},
		{"none checked", []bool{false, false, false}, StatusNew},
		{"some checked", []bool{true, false, false}, StatusInProgress},
		{"all but one", []bool{true, true, false}, StatusInProgress},
		{"all checked", []bool{true, true, true}, StatusReady},
		{"single checked", []bool{true}, StatusReady},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := NewTrip("Test", "", nil, nil)
			for _, c := range tt.checked {
				it := NewItem("x", cat, ImportanceMedium, 1)
				it.Checked = c
				trip.Items = append(trip.Items, it)
			}
			trip.UpdateStatus()
			if trip.Status != tt.want {
				t.Errorf("status = %q, want %q", trip.Status, tt.want)
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	cat := NewCategory("Misc", "tag")
	trip := NewTrip("Paris", "airplane", nil, nil)
	for i := 0; i < 4; i++ {
		trip.Items = append(trip.Items, NewItem("x", cat, ImportanceMedium, 1))
	}
	trip.UpdateStatus()
	if trip.Status != StatusNew {
		t.Fatalf("status = %q, want %q", trip.Status, StatusNew)
	}

	trip.Items[0].Checked = true
	trip.UpdateStatus()
	if trip.Status != StatusInProgress {
		t.Fatalf("status = %q, want %q", trip.Status, StatusInProgress)
	}

	for i := range trip.Items {
		trip.Items[i].Checked = true
	}
	trip.UpdateStatus()
	if trip.Status != StatusReady {
		t.Fatalf("status = %q, want %q", trip.Status, StatusReady)
	}
}

func TestQuantityClamp(t *testing.T) {
	cat := NewCategory("Misc", "tag")
	for _, q := range []int{-5, 0, 1, 3} {
		it := NewItem("Socks", cat, ImportanceLow, q)
		want := q
		if want < 1 {
			want = 1
		}
		if it.Quantity != want {
			t.Errorf("NewItem(qty=%d).Quantity = %d, want %d", q, it.Quantity, want)
		}
	}
}

func TestWeightSums(t *testing.T) {
	cat := NewCategory("Misc", "tag")
	trip := NewTrip("Hike", "", nil, nil)

	tent := NewItem("Tent", cat, ImportanceHigh, 1)
	tent.WeightKg = 2.5
	socks := NewItem("Socks", cat, ImportanceLow, 4)
	socks.WeightKg = 0.1
	socks.Checked = true
	nowt := NewItem("Map", cat, ImportanceMedium, 1) // no weight
	trip.Items = []Item{tent, socks, nowt}

	if got, want := trip.TotalWeightKg(), 2.5+0.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalWeightKg = %v, want %v", got, want)
	}
	if got, want := trip.PackedWeightKg(), 0.4; math.Abs(got-want) > 1e-9 {
		t.Errorf("PackedWeightKg = %v, want %v", got, want)
	}
}

func TestCategoryCount(t *testing.T) {
	docs := NewCategory("Documents", "doc")
	tech := NewCategory("Electronics", "bolt")
	trip := NewTrip("Trip", "", nil, nil)
	trip.Items = []Item{
		NewItem("Passport", docs, ImportanceHigh, 1),
		NewItem("Visa", docs, ImportanceHigh, 1),
		NewItem("Charger", tech, ImportanceMedium, 1),
	}
	if got := trip.CategoryCount(); got != 2 {
		t.Errorf("CategoryCount = %d, want 2", got)
	}
}

func TestClampTextScale(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0.5, 0.9},
		{0.9, 0.9},
		{1.0, 1.0},
		{1.3, 1.3},
		{2.0, 1.3},
	}
	for _, tt := range tests {
		if got := ClampTextScale(tt.in); got != tt.want {
			t.Errorf("ClampTextScale(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestImportanceRank(t *testing.T) {
	if !(ImportanceLow.Rank() < ImportanceMedium.Rank() && ImportanceMedium.Rank() < ImportanceHigh.Rank()) {
		t.Error("importance ranks must order low < medium < high")
	}
}

func TestSystemCategories(t *testing.T) {
	cats := SystemCategories()
	if len(cats) != 4 {
		t.Fatalf("expected 4 system categories, got %d", len(cats))
	}
	names := map[string]bool{}
	for _, c := range cats {
		if !c.System {
			t.Errorf("category %q should be marked system", c.Name)
		}
		names[c.Name] = true
	}
	for _, want := range []string{"Documents", "Clothes", "Hygiene", "Electronics"} {
		if !names[want] {
			t.Errorf("missing system category %q", want)
		}
	}
}
