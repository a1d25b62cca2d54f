/*
Package achievement holds the static award catalog and the evaluation
rules that unlock awards from accumulated trip state.
*/
package achievement

import (
	"sort"

	"github.com/tripcheck/tripcheck/internal/model"
)

// Definition describes one entry in the award catalog
type Definition struct {
	ID          int
	Title       string
	Description string
	Icon        string
	Color       string
}

// Catalog is the fixed award catalog. Ids 9-12 are listed for display but
// have no evaluation rule yet; they stay locked until the trigger
// conditions are settled.
var Catalog = []Definition{
	{ID: 1, Title: "First Suitcase", Description: "Create your first trip checklist", Icon: "suitcase", Color: "blue"},
	{ID: 2, Title: "Nothing Forgotten", Description: "Check off all items in one trip", Icon: "checkmark", Color: "green"},
	{ID: 3, Title: "Light Backpack", Description: "Create a checklist with < 5 items", Icon: "backpack", Color: "yellow"},
	{ID: 4, Title: "Packed the Whole House", Description: "Create a checklist with > 30 items", Icon: "house", Color: "purple"},
	{ID: 5, Title: "Weekend Traveler", Description: "Complete a trip checklist", Icon: "calendar", Color: "orange"},
	{ID: 6, Title: "Packing Master", Description: "Complete 5 different trips", Icon: "star", Color: "red"},
	{ID: 7, Title: "Experienced Tourist", Description: "Complete 10 different trips", Icon: "globe", Color: "indigo"},
	{ID: 8, Title: "Baggage Organizer", Description: "Add notes to 10 items", Icon: "note", Color: "pink"},
	{ID: 9, Title: "Seasonal Traveler", Description: "Create checklists for 4 seasons", Icon: "leaf", Color: "mint"},
	{ID: 10, Title: "No Panic", Description: "Complete on the day of departure", Icon: "clock", Color: "red"},
	{ID: 11, Title: "Everything Under Control", Description: "Complete a week before departure", Icon: "calendar-check", Color: "green"},
	{ID: 12, Title: "Global Tourist", Description: "Use the app in two languages", Icon: "cursor", Color: "blue"},
	{ID: 13, Title: "Note Master", Description: "Add your first note", Icon: "pencil", Color: "orange"},
	{ID: 14, Title: "Checklist Pro", Description: "Create 20 trip checklists", Icon: "trophy", Color: "yellow"},
	{ID: 15, Title: "Road Legend", Description: "Complete 50 checklists", Icon: "crown", Color: "purple"},
}

// Lookup returns the catalog entry for an id
func Lookup(id int) (Definition, bool) {
	for _, d := range Catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Definition{}, false
}

// Evaluate scans the current trips and returns the ids newly unlocked
// relative to the previously unlocked set, sorted ascending. Pure: no
// I/O, no mutation of inputs. Merging and persisting the result is the
// caller's job.
func Evaluate(trips []model.Trip, unlocked map[int]bool) []int {
	completed := 0
	notes := 0
	anyCompleted := false
	anySmall := false
	anyLarge := false
	for i := range trips {
		t := &trips[i]
		total := t.TotalItemCount()
		if t.Completed() {
			completed++
			anyCompleted = true
		}
		if total > 0 && total < 5 {
			anySmall = true
		}
		if total > 30 {
			anyLarge = true
		}
		for _, it := range t.Items {
			if it.Note != "" {
				notes++
			}
		}
	}

	var fired []int
	unlock := func(id int, cond bool) {
		if cond && !unlocked[id] {
			fired = append(fired, id)
		}
	}

	unlock(1, len(trips) >= 1)
	unlock(2, anyCompleted)
	unlock(3, anySmall)
	unlock(4, anyLarge)
	unlock(5, completed >= 1)
	unlock(6, completed >= 5)
	unlock(7, completed >= 10)
	unlock(8, notes >= 10)
	unlock(13, notes >= 1)
	unlock(14, len(trips) >= 20)
	unlock(15, completed >= 50)

	sort.Ints(fired)
	return fired
}
