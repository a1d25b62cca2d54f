package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/achievement"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the award catalog",
	Long:  `Show all awards with their unlock state and overall progress.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		fmt.Printf("Collected %d of %d awards\n\n", len(a.unlocked), len(achievement.Catalog))
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		for _, def := range achievement.Catalog {
			mark := "  "
			if a.unlocked[def.ID] {
				mark = "🏆"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", mark, def.Title, def.Description)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		a.reportAchievements()
		return nil
	},
}
