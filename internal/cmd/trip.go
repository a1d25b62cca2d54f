package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/preset"
)

var (
	tripIcon      string
	tripStart     string
	tripEnd       string
	tripPreset    string
	tripsArchived bool
)

var tripCmd = &cobra.Command{
	Use:   "trip",
	Short: "Manage trip checklists",
	Long: `Create, list, archive, duplicate, and delete trip checklists.

Trips are addressed by id prefix or exact title.`,
}

var tripAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new trip checklist",
	Long: `Create a new trip checklist, optionally pre-filled from a preset.

Example:
  tripcheck trip add "Paris" --icon airplane --start 2026-09-10 --end 2026-09-14
  tripcheck trip add "Summer" --preset beach`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		if tripPreset != "" {
			p, ok := preset.Lookup(tripPreset)
			if !ok {
				return fmt.Errorf("unknown preset %q, see 'tripcheck preset list'", tripPreset)
			}
			trip, err := preset.Apply(p, a.store, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Created trip %q with %d items (%s)\n", trip.Title, trip.TotalItemCount(), shortID(trip.ID))
			a.reportAchievements()
			return nil
		}

		start, err := parseDateFlag(tripStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag(tripEnd)
		if err != nil {
			return err
		}

		trip := a.store.AddTrip(args[0], tripIcon, start, end)
		fmt.Printf("Created trip %q (%s)\n", trip.Title, shortID(trip.ID))
		a.reportAchievements()
		return nil
	},
}

var tripListCmd = &cobra.Command{
	Use:   "list",
	Short: "List trip checklists",
	Long:  `List active trips, or the archived history with --archived.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		trips := a.store.ActiveTrips()
		if tripsArchived {
			trips = a.store.ArchivedTrips()
		}
		if len(trips) == 0 {
			if tripsArchived {
				fmt.Println("No archived trips yet")
			} else {
				fmt.Println("No trips yet. Create one with 'tripcheck trip add'")
			}
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPACKED\tWEIGHT")
		for _, t := range trips {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d/%d\t%.1f/%.1f kg\n",
				shortID(t.ID), t.Title, t.Status.DisplayName(),
				t.CompletedItemCount(), t.TotalItemCount(),
				t.PackedWeightKg(), t.TotalWeightKg())
		}
		return w.Flush()
	},
}

var tripDeleteCmd = &cobra.Command{
	Use:   "delete <trip>",
	Short: "Delete a trip checklist",
	Long:  `Remove a trip and its items permanently.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		trip, err := a.resolveTrip(args[0])
		if err != nil {
			return err
		}
		a.store.DeleteTrip(trip.ID)
		log.Info("deleted trip", "title", trip.Title)
		fmt.Printf("Deleted trip %q\n", trip.Title)
		return nil
	},
}

var tripArchiveCmd = &cobra.Command{
	Use:   "archive <trip>",
	Short: "Move a trip to history",
	Long:  `Archive a trip. Archived trips keep their data and can be duplicated.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		trip, err := a.resolveTrip(args[0])
		if err != nil {
			return err
		}
		a.store.ArchiveTrip(trip.ID)
		fmt.Printf("Archived trip %q\n", trip.Title)
		return nil
	},
}

var tripDuplicateCmd = &cobra.Command{
	Use:   "duplicate <trip>",
	Short: "Duplicate a trip",
	Long: `Clone a trip under a fresh id. Useful for repeating a trip from
history; the copy starts unarchived.`,
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
		dup, ok := a.store.DuplicateTrip(trip.ID)
		if !ok {
			return fmt.Errorf("no trip matches %q", args[0])
		}
		fmt.Printf("Duplicated %q (%s)\n", dup.Title, shortID(dup.ID))
		a.reportAchievements()
		return nil
	},
}

func init() {
	tripAddCmd.Flags().StringVar(&tripIcon, "icon", "", "icon name for the trip")
	tripAddCmd.Flags().StringVar(&tripStart, "start", "", "start date (YYYY-MM-DD)")
	tripAddCmd.Flags().StringVar(&tripEnd, "end", "", "end date (YYYY-MM-DD)")
	tripAddCmd.Flags().StringVar(&tripPreset, "preset", "", "pre-fill from a preset (beach, ski, city)")
	tripListCmd.Flags().BoolVar(&tripsArchived, "archived", false, "list archived trips")

	tripCmd.AddCommand(tripAddCmd)
	tripCmd.AddCommand(tripListCmd)
	tripCmd.AddCommand(tripDeleteCmd)
	tripCmd.AddCommand(tripArchiveCmd)
	tripCmd.AddCommand(tripDuplicateCmd)
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return &t, nil
}
