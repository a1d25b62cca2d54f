package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/model"
)

var categoryIcon string

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Manage item categories",
	Long: `Manage the categories items are grouped under.

The four built-in categories (Documents, Clothes, Hygiene, Electronics)
cannot be deleted. Items keep the category snapshot taken when they were
added, so deleting a custom category does not touch existing items.`,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		if _, exists := a.store.FindCategoryByName(args[0]); exists {
			return fmt.Errorf("category %q already exists", args[0])
		}
		cat := model.NewCategory(args[0], categoryIcon)
		a.store.AddCategory(cat)
		fmt.Printf("Added category %q\n", cat.Name)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tICON\tKIND")
		for _, c := range a.store.Categories() {
			kind := "custom"
			if c.System {
				kind = "built-in"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Icon, kind)
		}
		return w.Flush()
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a custom category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		cat, ok := a.store.FindCategoryByName(args[0])
		if !ok {
			// Deleting an absent category is a no-op
			fmt.Printf("No category named %q\n", args[0])
			return nil
		}
		if cat.System {
			return fmt.Errorf("%q is a built-in category and cannot be deleted", cat.Name)
		}
		a.store.DeleteCategory(cat.ID)
		fmt.Printf("Deleted category %q\n", cat.Name)
		return nil
	},
}

func init() {
	categoryAddCmd.Flags().StringVar(&categoryIcon, "icon", "tag", "icon name for the category")

	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryDeleteCmd)
}
