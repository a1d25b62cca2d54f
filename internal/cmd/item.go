package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/grouping"
	"github.com/tripcheck/tripcheck/internal/model"
)

var (
	itemCategory   string
	itemImportance string
	itemWeight     float64
	itemQuantity   int
	itemNote       string
	itemsRemaining bool
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage checklist items",
	Long: `Add, check off, edit, and remove items on a trip checklist.

Items are addressed by id prefix or exact title within their trip.`,
}

var itemAddCmd = &cobra.Command{
	Use:   "add <trip> <title>",
	Short: "Add an item to a trip",
	Long: `Add an item to a trip checklist.

Example:
  tripcheck item add Paris "Passport" --category Documents --importance high --weight 0.2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		trip, err := a.resolveTrip(args[0])
		if err != nil {
			return err
		}

		if itemCategory == "" {
			return fmt.Errorf("--category is required, see 'tripcheck category list'")
		}
		cat, ok := a.store.FindCategoryByName(itemCategory)
		if !ok {
			return fmt.Errorf("unknown category %q, see 'tripcheck category list'", itemCategory)
		}

		item := model.NewItem(args[1], cat, model.ParseImportance(itemImportance), itemQuantity)
		item.Note = itemNote
		item.WeightKg = itemWeight
		a.store.AddItem(trip.ID, item)

		fmt.Printf("Added %q to %q (%s)\n", item.Title, trip.Title, shortID(item.ID))
		a.reportAchievements()
		return nil
	},
}

var itemCheckCmd = &cobra.Command{
	Use:   "check <trip> <item>",
	Short: "Mark an item as packed",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return setChecked(args[0], args[1], true) },
}

var itemUncheckCmd = &cobra.Command{
	Use:   "uncheck <trip> <item>",
	Short: "Mark an item as not packed",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return setChecked(args[0], args[1], false) },
}

func setChecked(tripRef, itemRef string, checked bool) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	trip, err := a.resolveTrip(tripRef)
	if err != nil {
		return err
	}
	item, err := a.resolveItem(trip, itemRef)
	if err != nil {
		return err
	}
	a.store.UpdateItem(trip.ID, item.ID, func(it *model.Item) {
		it.Checked = checked
	})

	updated, _ := a.store.FindTrip(trip.ID)
	mark := "☐"
	if checked {
		mark = "✓"
	}
	fmt.Printf("%s %s  (%d/%d packed, %s)\n", mark, item.Title,
		updated.CompletedItemCount(), updated.TotalItemCount(), updated.Status.DisplayName())
	a.reportAchievements()
	return nil
}

var itemRemoveCmd = &cobra.Command{
	Use:   "remove <trip> <item>",
	Short: "Remove an item from a trip",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		trip, err := a.resolveTrip(args[0])
		if err != nil {
			return err
		}
		item, err := a.resolveItem(trip, args[1])
		if err != nil {
			return err
		}
		a.store.RemoveItem(trip.ID, item.ID)
		fmt.Printf("Removed %q from %q\n", item.Title, trip.Title)
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list <trip>",
	Short: "Show a trip checklist grouped by category",
	Long: `Show a trip's items grouped by category. Unchecked items come first
within each group; --remaining hides items already packed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		trip, err := a.resolveTrip(args[0])
		if err != nil {
			return err
		}

		groups := grouping.GroupItems(trip.Items, itemsRemaining)
		if len(groups) == 0 {
			fmt.Println("Nothing to show")
			return nil
		}

		fmt.Printf("%s — %d/%d packed, %s\n", trip.Title,
			trip.CompletedItemCount(), trip.TotalItemCount(), trip.Status.DisplayName())
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, g := range groups {
			fmt.Fprintf(w, "\n%s (%d/%d)\n", g.Category.Name, g.CheckedCount(), len(g.Items))
			for _, it := range g.Items {
				mark := "☐"
				if it.Checked {
					mark = "✓"
				}
				line := fmt.Sprintf("  %s %s\t%s\tx%d", mark, it.Title, it.Importance, it.Quantity)
				if it.WeightKg > 0 {
					line += fmt.Sprintf("\t%.2f kg", it.WeightKg)
				}
				if it.Note != "" {
					line += fmt.Sprintf("\t# %s", it.Note)
				}
				fmt.Fprintln(w, line)
			}
		}
		return w.Flush()
	},
}

func init() {
	itemAddCmd.Flags().StringVar(&itemCategory, "category", "", "category name (required)")
	itemAddCmd.Flags().StringVar(&itemImportance, "importance", "medium", "importance (low, medium, high)")
	itemAddCmd.Flags().Float64Var(&itemWeight, "weight", 0, "weight per unit in kg")
	itemAddCmd.Flags().IntVar(&itemQuantity, "qty", 1, "quantity to pack")
	itemAddCmd.Flags().StringVar(&itemNote, "note", "", "free-form note")
	itemListCmd.Flags().BoolVar(&itemsRemaining, "remaining", false, "show only unpacked items")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemCheckCmd)
	itemCmd.AddCommand(itemUncheckCmd)
	itemCmd.AddCommand(itemRemoveCmd)
	itemCmd.AddCommand(itemListCmd)
}
