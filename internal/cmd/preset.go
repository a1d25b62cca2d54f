package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck/internal/preset"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Show starter checklists",
	Long: `Starter checklists usable with 'tripcheck trip add --preset <key>'.
Each preset creates a trip pre-filled with a typical packing list.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "KEY\tNAME\tDESCRIPTION")
		for _, p := range preset.All() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", p.Key, p.Name, p.Description)
		}
		return w.Flush()
	},
}

func init() {
	presetCmd.AddCommand(presetListCmd)
}
