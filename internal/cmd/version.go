package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tripcheck/tripcheck"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tripcheck %s\n", tripcheck.Version)
		if tripcheck.GitCommit != "" {
			fmt.Printf("  commit: %s\n", tripcheck.GitCommit)
		}
		if tripcheck.BuildDate != "" {
			fmt.Printf("  built:  %s\n", tripcheck.BuildDate)
		}
	},
}
