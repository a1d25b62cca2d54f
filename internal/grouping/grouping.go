/*
Package grouping orders a trip's items for checklist display: unchecked
items first, then by importance, then by title, partitioned into
name-sorted category groups.
*/
package grouping

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/tripcheck/tripcheck/internal/model"
)

// Group is one category section of the displayed checklist
type Group struct {
	Category model.Category
	Items    []model.Item
}

// CheckedCount returns how many items in the group are checked
func (g Group) CheckedCount() int {
	n := 0
	for _, it := range g.Items {
		if it.Checked {
			n++
		}
	}
	return n
}

// GroupItems partitions items by category for display. With onlyRemaining
// set, checked items are dropped first. Within a group, unchecked items
// sort before checked ones, then by importance low < medium < high, then
// by case-insensitive title. Groups sort by category name. Deterministic
// for identical input.
//
// The importance order surfaces low-importance items above high ones;
// that matches the shipped behavior and is kept as-is.
func GroupItems(items []model.Item, onlyRemaining bool) []Group {
	filtered := make([]model.Item, 0, len(items))
	for _, it := range items {
		if onlyRemaining && it.Checked {
			continue
		}
		filtered = append(filtered, it)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		if a.Checked != b.Checked {
			return !a.Checked
		}
		if a.Importance != b.Importance {
			return a.Importance.Rank() < b.Importance.Rank()
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})

	byCategory := make(map[uuid.UUID]*Group)
	var groups []*Group
	for _, it := range filtered {
		g, ok := byCategory[it.Category.ID]
		if !ok {
			g = &Group{Category: it.Category}
			byCategory[it.Category.ID] = g
			groups = append(groups, g)
		}
		g.Items = append(g.Items, it)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category.Name < groups[j].Category.Name
	})

	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = *g
	}
	return out
}
